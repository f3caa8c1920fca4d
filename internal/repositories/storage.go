package repositories

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// CatalogRepository groups the read-mostly catalog entities.
type CatalogRepository interface {
	CategoryRepository
	ProductRepository
	ArtisanRepository
	TestimonialRepository
}

// Storage is the full data-access surface of the storefront. MemoryStorage
// and GORMStorage satisfy the same contract.
type Storage interface {
	CatalogRepository
	CartRepository
	SubscriberRepository
	UserRepository

	// Name identifies the backend ("memory", "sqlite" or "postgres").
	Name() string
	Close() error
}

const sqlitePrefix = "sqlite:"

// Open selects a backend from the connection string. An empty string is a
// supported configuration and yields an empty MemoryStorage; a "sqlite:"
// prefix opens the remainder as a SQLite DSN; anything else is handed to
// the PostgreSQL driver. Relational backends are migrated before returning.
func Open(databaseURL string) (Storage, error) {
	if databaseURL == "" {
		return NewMemoryStorage(), nil
	}

	var (
		dialector gorm.Dialector
		name      string
	)
	if strings.HasPrefix(databaseURL, sqlitePrefix) {
		dialector = sqlite.Open(strings.TrimPrefix(databaseURL, sqlitePrefix))
		name = "sqlite"
	} else {
		dialector = postgres.Open(databaseURL)
		name = "postgres"
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", name, err)
	}

	store := NewGORMStorage(db, name)
	if err := store.Migrate(); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
