package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add inserts an unsaved order and returns it with its generated ID.
	Add(ctx context.Context, draft *order.Order) (*order.Order, error)

	// AddAll inserts unsaved orders in one statement and returns them with their
	// generated IDs, in input order. Atomicity across the batch comes from the
	// surrounding unit of work.
	AddAll(ctx context.Context, drafts []*order.Order) ([]*order.Order, error)

	// Get retrieves an order by ID.
	// Returns errs.ObjectNotFoundError when no order has that ID.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// List returns every order in insertion order.
	List(ctx context.Context) ([]*order.Order, error)

	// ListByCustomer returns the orders placed by a customer, in insertion order.
	ListByCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error)

	// ListByProduct returns the orders referencing a product, in insertion order.
	ListByProduct(ctx context.Context, productID kernel.ID) ([]*order.Order, error)

	// UpdateStatus overwrites the status column of an existing order and returns the
	// stored aggregate. Returns errs.ObjectNotFoundError for unknown IDs.
	UpdateStatus(ctx context.Context, id kernel.ID, status order.Status) (*order.Order, error)
}
