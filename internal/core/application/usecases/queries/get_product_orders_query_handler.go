package queries

import (
	"context"

	"orders/internal/core/application/readmodel"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetProductOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetProductOrdersQueryHandler(db *gorm.DB) GetProductOrdersQueryHandler {
	return GetProductOrdersQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the product does not exist.
func (h GetProductOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetProductOrdersQuery,
) ([]readmodel.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var count int64
	err := h.db.WithContext(ctx).
		Table("products").
		Where("id = ?", query.ProductID()).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("product", query.ProductID())
	}

	return selectOrders(ctx, h.db, "o.product_id = ?", query.ProductID())
}
