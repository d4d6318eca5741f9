package service

import (
	"errors"
	"math"

	"space_ships/internal/app/ds"
	"space_ships/internal/app/filter"
	"space_ships/internal/app/repository"

	"github.com/sirupsen/logrus"
)

// ShipStore is the storage the service works against. Repository and
// MemoryRepository both satisfy it.
type ShipStore interface {
	CreateShip(ship *ds.Ship) error
	GetShip(id int64) (*ds.Ship, error)
	ShipExists(id int64) (bool, error)
	SaveShip(ship *ds.Ship) error
	DeleteShip(ship *ds.Ship) error
	FindShips(p filter.Predicate, page ds.Page) ([]ds.Ship, error)
	CountShips(p filter.Predicate) (int64, error)
}

type ShipService struct {
	store ShipStore
}

func NewShipService(store ShipStore) *ShipService {
	return &ShipService{store: store}
}

// Create validates the input, derives speed and rating and stores the ship.
func (s *ShipService) Create(in ds.ShipInput) (*ds.Ship, error) {
	ship, err := newShip(in)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateShip(ship); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"id": ship.ID, "rating": ship.Rating}).Info("ship created")
	return ship, nil
}

func (s *ShipService) GetByID(id int64) (*ds.Ship, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	exists, err := s.store.ShipExists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	ship, err := s.store.GetShip(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return ship, err
}

// Update applies a partial update. An empty patch returns the stored ship
// untouched and writes nothing.
func (s *ShipService) Update(id int64, patch ds.ShipPatch) (*ds.Ship, error) {
	current, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return current, nil
	}
	updated, err := applyPatch(*current, patch)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveShip(updated); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"id": updated.ID, "rating": updated.Rating}).Info("ship updated")
	return updated, nil
}

func (s *ShipService) DeleteByID(id int64) error {
	ship, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteShip(ship); err != nil {
		return err
	}
	logrus.WithField("id", id).Info("ship deleted")
	return nil
}

func (s *ShipService) List(p filter.Predicate, page ds.Page) ([]ds.Ship, error) {
	if page.Size <= 0 || page.Number < 0 || page.Number > math.MaxInt/page.Size {
		return nil, invalid("wrong page %d of size %d", page.Number, page.Size)
	}
	return s.store.FindShips(p, page)
}

func (s *ShipService) Count(p filter.Predicate) (int64, error) {
	return s.store.CountShips(p)
}
