package filter

import (
	"strings"
	"time"

	"space_ships/internal/app/ds"
)

// Params holds the optional filter parameters of a ship listing.
// Nil means the parameter was not supplied.
type Params struct {
	Name        *string
	Planet      *string
	ShipType    *ds.ShipType
	After       *int64 // epoch millis
	Before      *int64 // epoch millis
	IsUsed      *bool
	MinSpeed    *float64
	MaxSpeed    *float64
	MinCrewSize *int
	MaxCrewSize *int
	MinRating   *float64
	MaxRating   *float64
}

// Predicate ANDs the predicate of every supplied parameter.
func (p Params) Predicate() Predicate {
	return And(
		ByName(p.Name),
		ByPlanet(p.Planet),
		ByShipType(p.ShipType),
		ByProdDate(p.After, p.Before),
		ByUsed(p.IsUsed),
		BySpeed(p.MinSpeed, p.MaxSpeed),
		ByCrewSize(p.MinCrewSize, p.MaxCrewSize),
		ByRating(p.MinRating, p.MaxRating),
	)
}

func ByName(name *string) *Predicate {
	if name == nil {
		return nil
	}
	sub := *name
	return newPredicate(`name LIKE ?`, func(s *ds.Ship) bool {
		return strings.Contains(s.Name, sub)
	}, containsPattern(sub))
}

func ByPlanet(planet *string) *Predicate {
	if planet == nil {
		return nil
	}
	sub := *planet
	return newPredicate(`planet LIKE ?`, func(s *ds.Ship) bool {
		return strings.Contains(s.Planet, sub)
	}, containsPattern(sub))
}

func ByShipType(t *ds.ShipType) *Predicate {
	if t == nil {
		return nil
	}
	want := *t
	return newPredicate("ship_type = ?", func(s *ds.Ship) bool {
		return s.ShipType == want
	}, string(want))
}

// ByProdDate bounds the production date, both ends inclusive.
func ByProdDate(after, before *int64) *Predicate {
	switch {
	case after == nil && before == nil:
		return nil
	case after == nil:
		hi := time.UnixMilli(*before).UTC()
		return newPredicate("prod_date <= ?", func(s *ds.Ship) bool {
			return !s.ProdDate.After(hi)
		}, hi)
	case before == nil:
		lo := time.UnixMilli(*after).UTC()
		return newPredicate("prod_date >= ?", func(s *ds.Ship) bool {
			return !s.ProdDate.Before(lo)
		}, lo)
	default:
		lo, hi := time.UnixMilli(*after).UTC(), time.UnixMilli(*before).UTC()
		return newPredicate("prod_date BETWEEN ? AND ?", func(s *ds.Ship) bool {
			return !s.ProdDate.Before(lo) && !s.ProdDate.After(hi)
		}, lo, hi)
	}
}

func ByUsed(isUsed *bool) *Predicate {
	if isUsed == nil {
		return nil
	}
	want := *isUsed
	return newPredicate("is_used = ?", func(s *ds.Ship) bool {
		return s.IsUsed == want
	}, want)
}

func BySpeed(min, max *float64) *Predicate {
	return between("speed", min, max, func(s *ds.Ship) float64 { return s.Speed })
}

func ByCrewSize(min, max *int) *Predicate {
	return between("crew_size", min, max, func(s *ds.Ship) int { return s.CrewSize })
}

func ByRating(min, max *float64) *Predicate {
	return between("rating", min, max, func(s *ds.Ship) float64 { return s.Rating })
}
