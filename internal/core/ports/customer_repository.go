package ports

import (
	"context"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
// Find-or-create semantics live in the domain (services.CustomerResolver), not here.
type CustomerRepository interface {
	// Get retrieves a customer by ID.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)

	// GetByName retrieves a customer by its unique name.
	// Returns errs.ObjectNotFoundError when the name is unknown.
	GetByName(ctx context.Context, name string) (*customer.Customer, error)

	// Add inserts an unsaved customer and returns it with its generated ID.
	// Returns errs.ObjectAlreadyExistsError when the name is taken.
	Add(ctx context.Context, c *customer.Customer) (*customer.Customer, error)
}
