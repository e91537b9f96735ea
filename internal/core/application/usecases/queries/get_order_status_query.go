package queries

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery inspects the status of an order without changing it.
// Status changes go through commands.ChangeOrderStatusCommand.
type GetOrderStatusQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderStatusQuery(orderID int64) GetOrderStatusQuery {
	return GetOrderStatusQuery{orderID: orderID, guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

func (q GetOrderStatusQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderStatusQueryResponse carries the current status and the statuses the order
// may move to under the configured transition policy.
type GetOrderStatusQueryResponse struct {
	OrderID int64
	Status  order.Status
	Next    []order.Status
}
