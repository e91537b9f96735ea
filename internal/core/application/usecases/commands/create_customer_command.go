package commands

import (
	"errors"

	"orders/internal/core/domain/model/customer"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer by name. Creating a name that already
// exists returns the stored customer instead of failing.
type CreateCustomerCommand struct {
	name string

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(name string) (CreateCustomerCommand, error) {
	name = customer.NormalizeName(name)
	if name == "" {
		return CreateCustomerCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateCustomerCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}
