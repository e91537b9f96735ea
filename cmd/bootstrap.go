package cmd

import (
	"context"
	"fmt"

	"orders/internal/adapters/out/storage"
	"orders/internal/core/application/usecases/commands"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OpenDatabase connects to the configured store and brings its schema up to date.
func OpenDatabase(config Config) (*gorm.DB, error) {
	db, err := storage.Open(config.StorageConfig())
	if err != nil {
		return nil, err
	}

	if err := storage.Migrate(db); err != nil {
		_ = storage.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedCatalog inserts the sample products into an empty catalog. A failure is logged
// and does not stop the service.
func (c *CompositionRoot) SeedCatalog(ctx context.Context) {
	inserted, err := c.CreateSeedProductsCommandHandler().Handle(ctx, commands.NewSeedProductsCommand())
	if err != nil {
		c.logger.Warn("failed to seed product catalog", zap.Error(err))
		return
	}

	if inserted > 0 {
		c.logger.Info("product catalog seeded", zap.Int("products", inserted))
	}
}
