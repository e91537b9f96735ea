package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrdersCommandIsNotConstructed = errors.New(
		"CreateOrdersCommand must be created via NewCreateOrdersCommand constructor",
	)
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")
)

// OrderItem is one line of a batch: a product reference, a quantity and the requested
// initial status. The product reference and the status are checked by the handler,
// against the store and the transition policy respectively.
type OrderItem struct {
	productID int64
	quantity  int
	status    string

	guard guard.ConstructorGuard
}

// NewOrderItem validates the quantity. An empty status selects order.Pending.
func NewOrderItem(productID int64, quantity int, status string) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if status == "" {
		status = order.Pending.String()
	}

	return OrderItem{
		productID: productID,
		quantity:  quantity,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (i OrderItem) ProductID() int64 {
	return i.productID
}

func (i OrderItem) Quantity() int {
	return i.quantity
}

// Status returns the requested status as supplied by the caller.
func (i OrderItem) Status() string {
	return i.status
}

// CreateOrdersCommand represents a request to place one or more orders atomically,
// optionally on behalf of a named customer.
//
// Example:
//
//	item, _ := commands.NewOrderItem(2, 3, "")
//	cmd, err := commands.NewCreateOrdersCommand([]commands.OrderItem{item}, "Ana")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrdersCommand struct { //nolint:recvcheck //using for validation
	items        []OrderItem
	customerName string

	guard guard.ConstructorGuard
}

// NewCreateOrdersCommand requires at least one item. A blank customer name places
// anonymous orders.
func NewCreateOrdersCommand(items []OrderItem, customerName string) (CreateOrdersCommand, error) {
	cmd := CreateOrdersCommand{
		customerName: customer.NormalizeName(customerName),
		guard:        guard.NewConstructorGuard(),
	}

	if err := cmd.setItems(items); err != nil {
		return CreateOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrdersCommandIsNotConstructed)
}

// Items returns the batch in caller order.
func (c CreateOrdersCommand) Items() []OrderItem {
	return c.items
}

// CustomerName returns the normalized customer name, or "" for anonymous orders.
func (c CreateOrdersCommand) CustomerName() string {
	return c.customerName
}

func (c *CreateOrdersCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}
