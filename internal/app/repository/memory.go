package repository

import (
	"sort"
	"sync"

	"space_ships/internal/app/ds"
	"space_ships/internal/app/filter"
)

// MemoryRepository keeps ships in process memory. It has the same semantics
// as Repository and is used for local runs without PostgreSQL.
type MemoryRepository struct {
	mu     sync.RWMutex
	ships  map[int64]ds.Ship
	nextID int64
}

func NewMemory() *MemoryRepository {
	return &MemoryRepository{ships: make(map[int64]ds.Ship)}
}

func (m *MemoryRepository) CreateShip(ship *ds.Ship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	ship.ID = m.nextID
	m.ships[ship.ID] = *ship
	return nil
}

func (m *MemoryRepository) GetShip(id int64) (*ds.Ship, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ship, ok := m.ships[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &ship, nil
}

func (m *MemoryRepository) ShipExists(id int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.ships[id]
	return ok, nil
}

func (m *MemoryRepository) SaveShip(ship *ds.Ship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ships[ship.ID] = *ship
	return nil
}

func (m *MemoryRepository) DeleteShip(ship *ds.Ship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.ships, ship.ID)
	return nil
}

func (m *MemoryRepository) FindShips(p filter.Predicate, page ds.Page) ([]ds.Ship, error) {
	matched := m.match(p)
	less := orderLess(page.Order)
	sort.Slice(matched, func(i, j int) bool {
		a, b := &matched[i], &matched[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.ID < b.ID
	})

	from := page.Offset()
	if from < 0 || from >= len(matched) {
		return []ds.Ship{}, nil
	}
	to := from + page.Size
	if to < from || to > len(matched) {
		to = len(matched)
	}
	return matched[from:to], nil
}

func (m *MemoryRepository) CountShips(p filter.Predicate) (int64, error) {
	return int64(len(m.match(p))), nil
}

func (m *MemoryRepository) match(p filter.Predicate) []ds.Ship {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ds.Ship, 0, len(m.ships))
	for _, s := range m.ships {
		if p.Match(&s) {
			out = append(out, s)
		}
	}
	return out
}

func orderLess(o ds.ShipOrder) func(a, b *ds.Ship) bool {
	switch o {
	case ds.OrderSpeed:
		return func(a, b *ds.Ship) bool { return a.Speed < b.Speed }
	case ds.OrderDate:
		return func(a, b *ds.Ship) bool { return a.ProdDate.Before(b.ProdDate) }
	case ds.OrderRating:
		return func(a, b *ds.Ship) bool { return a.Rating < b.Rating }
	default:
		return func(a, b *ds.Ship) bool { return a.ID < b.ID }
	}
}
