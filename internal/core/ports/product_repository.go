// Package ports defines the persistence contracts of the order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Get retrieves a product by ID.
	// Returns errs.ObjectNotFoundError when no product has that ID.
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)

	// List returns every product in insertion order.
	List(ctx context.Context) ([]*product.Product, error)

	// Count returns the number of stored products.
	Count(ctx context.Context) (int64, error)

	// AddAll inserts unsaved products and returns them with their generated IDs,
	// in input order.
	AddAll(ctx context.Context, products []*product.Product) ([]*product.Product, error)
}
