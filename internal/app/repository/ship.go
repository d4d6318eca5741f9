package repository

import (
	"errors"

	"space_ships/internal/app/ds"
	"space_ships/internal/app/filter"

	"gorm.io/gorm"
)

// CreateShip - создание корабля, id назначает база
func (r *Repository) CreateShip(ship *ds.Ship) error {
	return r.db.Create(ship).Error
}

func (r *Repository) GetShip(id int64) (*ds.Ship, error) {
	ship := ds.Ship{}
	err := r.db.Where("id = ?", id).First(&ship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ship, nil
}

func (r *Repository) ShipExists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Ship{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveShip - сохраняет все поля корабля
func (r *Repository) SaveShip(ship *ds.Ship) error {
	return r.db.Save(ship).Error
}

// DeleteShip - физическое удаление корабля
func (r *Repository) DeleteShip(ship *ds.Ship) error {
	return r.db.Delete(&ds.Ship{}, ship.ID).Error
}

// pageScope - сортировка по возрастанию, затем по id, и окно страницы
func pageScope(page ds.Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if col := page.Order.Column(); col != "id" {
			db = db.Order(col)
		}
		return db.Order("id").Offset(page.Offset()).Limit(page.Size)
	}
}

// shipsQuery - запрос к ships, WHERE только при непустом фильтре
func shipsQuery(db *gorm.DB, p filter.Predicate) *gorm.DB {
	q := db.Model(&ds.Ship{})
	if p.Empty() {
		return q
	}
	return q.Scopes(p.Scope())
}

// FindShips - страница кораблей по фильтру
func (r *Repository) FindShips(p filter.Predicate, page ds.Page) ([]ds.Ship, error) {
	ships := []ds.Ship{}
	err := shipsQuery(r.db, p).Scopes(pageScope(page)).Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

func (r *Repository) CountShips(p filter.Predicate) (int64, error) {
	var count int64
	err := shipsQuery(r.db, p).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
