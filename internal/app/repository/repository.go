package repository

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNotFound - запись с таким id отсутствует
var ErrNotFound = errors.New("record not found")

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB wraps an already opened connection.
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Ping проверяет соединение с базой
func (r *Repository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
