package services

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// CustomerResolver implements find-or-create by name. Resolving the same name twice
// yields the same customer; the store never holds two customers with one name.
type CustomerResolver struct{}

func NewCustomerResolver() CustomerResolver {
	return CustomerResolver{}
}

// Resolve returns the customer named name, creating it when absent. created reports
// whether a new row was inserted.
func (r CustomerResolver) Resolve(
	ctx context.Context,
	customers ports.CustomerRepository,
	name string,
) (c *customer.Customer, created bool, err error) {
	draft, err := customer.NewCustomer(name)
	if err != nil {
		return nil, false, err
	}

	c, err = customers.GetByName(ctx, draft.Name())
	if err == nil {
		return c, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	c, err = customers.Add(ctx, draft)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}
