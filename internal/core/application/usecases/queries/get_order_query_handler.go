package queries

import (
	"context"

	"orders/internal/core/application/readmodel"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no order has the requested ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (readmodel.Order, error) {
	if err := query.Validate(); err != nil {
		return readmodel.Order{}, err
	}

	return findOrder(ctx, h.db, query.OrderID())
}

func findOrder(ctx context.Context, db *gorm.DB, id int64) (readmodel.Order, error) {
	orders, err := selectOrders(ctx, db, "o.id = ?", id)
	if err != nil {
		return readmodel.Order{}, err
	}
	if len(orders) == 0 {
		return readmodel.Order{}, errs.NewObjectNotFoundError("order", id)
	}
	return orders[0], nil
}
