package queries

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrGetOrderStatusSummaryQueryIsNotConstructed = errors.New(
	"GetOrderStatusSummaryQuery must be created via NewGetOrderStatusSummaryQuery constructor",
)

// GetOrderStatusSummaryQuery counts orders per status.
type GetOrderStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatusSummaryQuery() GetOrderStatusSummaryQuery {
	return GetOrderStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusSummaryQueryIsNotConstructed)
}

// StatusCount is one line of the summary.
type StatusCount struct {
	Status order.Status
	Count  int64
}
