package queries

import (
	"context"

	"orders/internal/core/application/readmodel"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for unknown names. A known customer without
// orders yields an empty slice.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]readmodel.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var ids []int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT id FROM customers WHERE name = ?`, query.CustomerName()).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, errs.NewObjectNotFoundError("customer", query.CustomerName())
	}

	return selectOrders(ctx, h.db, "o.customer_id = ?", ids[0])
}
