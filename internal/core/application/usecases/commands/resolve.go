package commands

import (
	"context"

	"orders/internal/core/application/readmodel"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/order"
)

// resolveOrder loads the product and optional customer of o inside the caller's transaction.
func resolveOrder(ctx context.Context, uow UoW, o *order.Order) (readmodel.Order, error) {
	p, err := uow.ProductRepository().Get(ctx, o.ProductID())
	if err != nil {
		return readmodel.Order{}, err
	}

	var c *customer.Customer
	if customerID := o.CustomerID(); customerID != nil {
		c, err = uow.CustomerRepository().Get(ctx, *customerID)
		if err != nil {
			return readmodel.Order{}, err
		}
	}

	return readmodel.NewOrder(o, p, c)
}
