package ds

import (
	"encoding/json"
	"fmt"
	"time"
)

// ShipType - класс корабля
type ShipType string

const (
	ShipTypeTransport ShipType = "TRANSPORT"
	ShipTypeMilitary  ShipType = "MILITARY"
	ShipTypeMerchant  ShipType = "MERCHANT"
)

// ParseShipType returns an error for anything outside the closed set of ship types.
func ParseShipType(s string) (ShipType, error) {
	switch t := ShipType(s); t {
	case ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant:
		return t, nil
	}
	return "", fmt.Errorf("unknown ship type %q", s)
}

func (t *ShipType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseShipType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// @Schema(description="Ship model representing a space ship")
type Ship struct {
	ID       int64     `gorm:"primaryKey;column:id"`
	Name     string    `gorm:"column:name;type:text;not null"`
	Planet   string    `gorm:"column:planet;type:text;not null"`
	ShipType ShipType  `gorm:"column:ship_type;type:varchar(16);not null"`
	ProdDate time.Time `gorm:"column:prod_date;not null"`
	IsUsed   bool      `gorm:"column:is_used;not null"`
	Speed    float64   `gorm:"column:speed;not null"`
	CrewSize int       `gorm:"column:crew_size;not null"`
	Rating   float64   `gorm:"column:rating;not null"`
}

func (Ship) TableName() string {
	return "ships"
}

// shipJSON - представление корабля в API, дата производства в миллисекундах
type shipJSON struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Planet   string   `json:"planet"`
	ShipType ShipType `json:"shipType"`
	ProdDate int64    `json:"prodDate"`
	IsUsed   bool     `json:"isUsed"`
	Speed    float64  `json:"speed"`
	CrewSize int      `json:"crewSize"`
	Rating   float64  `json:"rating"`
}

func (s Ship) MarshalJSON() ([]byte, error) {
	return json.Marshal(shipJSON{
		ID:       s.ID,
		Name:     s.Name,
		Planet:   s.Planet,
		ShipType: s.ShipType,
		ProdDate: s.ProdDate.UnixMilli(),
		IsUsed:   s.IsUsed,
		Speed:    s.Speed,
		CrewSize: s.CrewSize,
		Rating:   s.Rating,
	})
}

// UnmarshalJSON decodes a ship as the API returns it. Request bodies bind
// ShipInput and ShipPatch instead; this side is for API clients and tests.
func (s *Ship) UnmarshalJSON(data []byte) error {
	var v shipJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Ship{
		ID:       v.ID,
		Name:     v.Name,
		Planet:   v.Planet,
		ShipType: v.ShipType,
		ProdDate: time.UnixMilli(v.ProdDate).UTC(),
		IsUsed:   v.IsUsed,
		Speed:    v.Speed,
		CrewSize: v.CrewSize,
		Rating:   v.Rating,
	}
	return nil
}

// ProdYear - год производства, только он влияет на рейтинг
func (s Ship) ProdYear() int {
	return s.ProdDate.UTC().Year()
}
