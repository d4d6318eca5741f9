package ds

import "fmt"

// ShipOrder - поле сортировки списка кораблей
type ShipOrder string

const (
	OrderID     ShipOrder = "ID"
	OrderSpeed  ShipOrder = "SPEED"
	OrderDate   ShipOrder = "DATE"
	OrderRating ShipOrder = "RATING"
)

func ParseShipOrder(s string) (ShipOrder, error) {
	switch o := ShipOrder(s); o {
	case OrderID, OrderSpeed, OrderDate, OrderRating:
		return o, nil
	}
	return "", fmt.Errorf("unknown order %q", s)
}

// Column returns the ships table column the order sorts by.
func (o ShipOrder) Column() string {
	switch o {
	case OrderSpeed:
		return "speed"
	case OrderDate:
		return "prod_date"
	case OrderRating:
		return "rating"
	default:
		return "id"
	}
}

// Page selects one page of a sorted listing. Number starts at zero.
type Page struct {
	Number int
	Size   int
	Order  ShipOrder
}

// Offset wraps for pages past math.MaxInt/Size; callers bound Number first.
func (p Page) Offset() int {
	return p.Number * p.Size
}
