package service

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"space_ships/internal/app/ds"
)

var (
	// ErrInvalidArgument - некорректный id или поле при создании
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrBadRequest - некорректное поле при обновлении
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("ship not found")
)

const maxTextLen = 50

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

func validText(s *string) bool {
	if s == nil || *s == "" {
		return false
	}
	return utf8.RuneCountInString(*s) <= maxTextLen
}

func prodYear(millis int64) int {
	return time.UnixMilli(millis).UTC().Year()
}

func validYear(year int) bool {
	return year >= minProdYear && year <= maxProdYear
}

func validCrewSize(n int) bool {
	return n > 0 && n <= 9999
}

func validID(id int64) error {
	if id <= 0 {
		return invalid("wrong id %d", id)
	}
	return nil
}

// newShip validates a create request and derives the stored record.
// Nothing is written when it fails.
func newShip(in ds.ShipInput) (*ds.Ship, error) {
	if !validText(in.Name) {
		return nil, invalid("wrong format of the ship name")
	}
	if !validText(in.Planet) {
		return nil, invalid("wrong format of the planet")
	}
	if in.ShipType == nil {
		return nil, invalid("ship type is required")
	}
	if in.ProdDate == nil || *in.ProdDate < 0 {
		return nil, invalid("production date is missing or negative")
	}
	year := prodYear(*in.ProdDate)
	if !validYear(year) {
		return nil, invalid("production year %d is out of range [%d, %d]", year, minProdYear, maxProdYear)
	}
	if in.Speed == nil || *in.Speed < 0.01 || *in.Speed > 0.99 {
		return nil, invalid("wrong speed")
	}
	if in.CrewSize == nil || !validCrewSize(*in.CrewSize) {
		return nil, invalid("wrong crew size")
	}

	ship := &ds.Ship{
		Name:     *in.Name,
		Planet:   *in.Planet,
		ShipType: *in.ShipType,
		ProdDate: time.UnixMilli(*in.ProdDate).UTC(),
		Speed:    round2(*in.Speed),
		CrewSize: *in.CrewSize,
	}
	if in.IsUsed != nil {
		ship.IsUsed = *in.IsUsed
	}
	ship.Rating = Rating(ship.IsUsed, ship.Speed, year)
	return ship, nil
}

// applyPatch merges the present fields of p into a copy of s. Only name,
// prodDate and crewSize are range checked; planet, shipType, isUsed and speed
// are taken as given.
func applyPatch(s ds.Ship, p ds.ShipPatch) (*ds.Ship, error) {
	if p.Name.Set {
		if p.Name.Value == "" {
			return nil, badRequest("name must not be empty")
		}
		s.Name = p.Name.Value
	}
	if p.Planet.Set {
		s.Planet = p.Planet.Value
	}
	if p.ShipType.Set {
		s.ShipType = p.ShipType.Value
	}
	if p.ProdDate.Set {
		year := prodYear(p.ProdDate.Value)
		if !validYear(year) {
			return nil, badRequest("production year %d is out of range [%d, %d]", year, minProdYear, maxProdYear)
		}
		s.ProdDate = time.UnixMilli(p.ProdDate.Value).UTC()
	}
	if p.IsUsed.Set {
		s.IsUsed = p.IsUsed.Value
	}
	if p.Speed.Set {
		s.Speed = p.Speed.Value
	}
	if p.CrewSize.Set {
		if !validCrewSize(p.CrewSize.Value) {
			return nil, badRequest("crew size %d is out of range", p.CrewSize.Value)
		}
		s.CrewSize = p.CrewSize.Value
	}
	s.Rating = Rating(s.IsUsed, s.Speed, s.ProdYear())
	return &s, nil
}
