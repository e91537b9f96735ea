package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler is the read-only counterpart of the status transition.
type GetOrderStatusQueryHandler struct {
	db     *gorm.DB
	policy order.TransitionPolicy
}

func NewGetOrderStatusQueryHandler(db *gorm.DB, policy order.TransitionPolicy) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db, policy: policy}
}

func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	var statuses []string
	err := h.db.WithContext(ctx).
		Raw(`SELECT status FROM orders WHERE id = ?`, query.OrderID()).
		Scan(&statuses).Error
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}
	if len(statuses) == 0 {
		return GetOrderStatusQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	current, err := order.ParseStatus(statuses[0])
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	next := make([]order.Status, 0, len(order.Statuses()))
	for _, candidate := range order.Statuses() {
		if candidate != current && h.policy.Check(current, candidate) == nil {
			next = append(next, candidate)
		}
	}

	return GetOrderStatusQueryResponse{
		OrderID: query.OrderID(),
		Status:  current,
		Next:    next,
	}, nil
}
