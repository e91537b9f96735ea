package queries

import (
	"errors"

	"orders/internal/core/domain/model/customer"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery lists the order history of a customer identified by name.
type GetCustomerOrdersQuery struct {
	customerName string

	guard guard.ConstructorGuard
}

func NewGetCustomerOrdersQuery(customerName string) (GetCustomerOrdersQuery, error) {
	customerName = customer.NormalizeName(customerName)
	if customerName == "" {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredError("customer name")
	}

	return GetCustomerOrdersQuery{
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerName() string {
	return q.customerName
}
