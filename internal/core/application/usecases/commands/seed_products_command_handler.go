package commands

import (
	"context"

	"orders/internal/core/domain/model/product"
)

// SeedProductsCommandHandler inserts the sample catalog when, and only when, the
// products table is empty. Running it again is a no-op.
type SeedProductsCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSeedProductsCommandHandler(uowFactory CatalogUoWFactory) SeedProductsCommandHandler {
	return SeedProductsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of products inserted.
func (h SeedProductsCommandHandler) Handle(ctx context.Context, cmd SeedProductsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	catalog, err := product.SampleCatalog()
	if err != nil {
		return 0, err
	}

	saved, err := repo.AddAll(ctx, catalog)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(saved), nil
}
