package repository

import (
	"fmt"
	"time"

	"catering/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return NewWithDB(db)
}

// NewWithDB создает репозиторий поверх готового подключения (используется в тестах)
func NewWithDB(db *gorm.DB) (*Repository, error) {
	// Автоматическая миграция всех таблиц
	err := db.AutoMigrate(
		&ds.User{},
		&ds.Profile{},
		&ds.Province{},
		&ds.Barrio{},
		&ds.Client{},
		&ds.Responsible{},
		&ds.ProductType{},
		&ds.Product{},
		&ds.Invoice{},
		&ds.Event{},
		&ds.MenuLine{},
		&ds.StaffMember{},
		&ds.StaffService{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

// dateOnly нормализует дату до полуночи UTC, чтобы сравнение по дате было точным
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
