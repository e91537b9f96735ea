package services

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// ValidationRules are consulted before any mutating repository call. They never write.
//
// Example:
//
//	rules := services.NewValidationRules()
//	p, err := rules.RequireProduct(ctx, uow.ProductRepository(), productID)
//	if errors.Is(err, errs.ErrReferenceNotFound) {
//	    // reject the whole batch
//	}
type ValidationRules struct{}

func NewValidationRules() ValidationRules {
	return ValidationRules{}
}

// ProductExists reports whether a product with the given ID is stored.
func (r ValidationRules) ProductExists(ctx context.Context, products ports.ProductRepository, id kernel.ID) (bool, error) {
	_, err := r.RequireProduct(ctx, products, id)
	if errors.Is(err, errs.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RequireProduct loads a referenced product, turning a miss into a ReferenceNotFoundError
// naming the offending ID.
func (r ValidationRules) RequireProduct(
	ctx context.Context,
	products ports.ProductRepository,
	id kernel.ID,
) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewReferenceNotFoundErrorWithCause("product_id", id.Int64(), err)
	}

	p, err := products.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewReferenceNotFoundError("product_id", id.Int64())
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CustomerExistsByName reports whether a customer with the given name is stored.
func (r ValidationRules) CustomerExistsByName(
	ctx context.Context,
	customers ports.CustomerRepository,
	name string,
) (bool, error) {
	_, err := customers.GetByName(ctx, name)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsValidStatus checks value against the fixed status enumeration.
func (r ValidationRules) IsValidStatus(value string) bool {
	return order.IsValidStatus(value)
}
