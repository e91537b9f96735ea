package storage

import (
	"fmt"
	"time"

	"orders/internal/adapters/out/storage/customerrepo"
	"orders/internal/adapters/out/storage/orderrepo"
	"orders/internal/adapters/out/storage/productrepo"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config selects the database engine. DSN is passed to the driver unchanged.
type Config struct {
	Driver string
	DSN    string

	// LogLevel controls gorm's own statement logger; zero means Warn.
	LogLevel logger.LogLevel
}

// Open connects to the configured engine with duplicate-key errors translated to
// gorm.ErrDuplicatedKey.
//
// SQLite connections are capped at one: an in-memory database lives only as long as
// its connection, and SQLite serializes writers anyway.
func Open(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q, expected %q or %q",
			cfg.Driver, DriverPostgres, DriverSQLite)
	}

	level := cfg.LogLevel
	if level == 0 {
		level = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == DriverSQLite {
		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return nil, dbErr
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	return db, nil
}

// Migrate creates or updates the products, customers and orders tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
	)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
