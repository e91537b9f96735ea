package commands

import (
	"context"

	"orders/internal/core/application/readmodel"
	"orders/internal/core/domain/services"
)

// CreateCustomerCommandHandler performs find-or-create by name.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	resolver   services.CustomerResolver
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewCustomerResolver(),
	}
}

// Handle returns the customer with cmd.Name(), inserting it first when absent.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (readmodel.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return readmodel.Customer{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return readmodel.Customer{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, _, err := h.resolver.Resolve(ctx, uow.CustomerRepository(), cmd.Name())
	if err != nil {
		return readmodel.Customer{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return readmodel.Customer{}, err
	}

	return readmodel.NewCustomer(c), nil
}
