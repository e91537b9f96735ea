package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests moving an order to a new status. Both values are
// kept as supplied: an unknown order must be reported before an invalid status.
type ChangeOrderStatusCommand struct {
	orderID int64
	status  string

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID int64, status string) ChangeOrderStatusCommand {
	return ChangeOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() string {
	return c.status
}
