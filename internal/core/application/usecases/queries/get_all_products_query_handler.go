package queries

import (
	"context"

	"orders/internal/core/application/readmodel"

	"gorm.io/gorm"
)

type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle returns the products ordered by ID.
func (h GetAllProductsQueryHandler) Handle(ctx context.Context, query GetAllProductsQuery) ([]readmodel.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]readmodel.Product, 0)
	err := h.db.WithContext(ctx).
		Raw(`SELECT id, name FROM products ORDER BY id`).
		Scan(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}
