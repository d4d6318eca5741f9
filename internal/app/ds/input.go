package ds

import (
	"bytes"
	"encoding/json"
)

// ShipInput - тело запроса на создание корабля, nil означает "не передано"
type ShipInput struct {
	Name     *string   `json:"name"`
	Planet   *string   `json:"planet"`
	ShipType *ShipType `json:"shipType"`
	ProdDate *int64    `json:"prodDate"`
	IsUsed   *bool     `json:"isUsed"`
	Speed    *float64  `json:"speed"`
	CrewSize *int      `json:"crewSize"`
}

// Optional holds a field of a partial update. Set is false when the key was
// absent from the body or explicitly null.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Optional[T]{Value: v, Set: true}
	return nil
}

// ShipPatch - частичное обновление корабля
type ShipPatch struct {
	Name     Optional[string]   `json:"name" swaggertype:"string"`
	Planet   Optional[string]   `json:"planet" swaggertype:"string"`
	ShipType Optional[ShipType] `json:"shipType" swaggertype:"string"`
	ProdDate Optional[int64]    `json:"prodDate" swaggertype:"integer"`
	IsUsed   Optional[bool]     `json:"isUsed" swaggertype:"boolean"`
	Speed    Optional[float64]  `json:"speed" swaggertype:"number"`
	CrewSize Optional[int]      `json:"crewSize" swaggertype:"integer"`
}

// Empty reports whether no field of the patch is present.
func (p ShipPatch) Empty() bool {
	return !p.Name.Set && !p.Planet.Set && !p.ShipType.Set && !p.ProdDate.Set &&
		!p.IsUsed.Set && !p.Speed.Set && !p.CrewSize.Set
}
