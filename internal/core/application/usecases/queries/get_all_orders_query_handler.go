package queries

import (
	"context"

	"orders/internal/core/application/readmodel"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler returns all orders in insertion order. There is no
// filtering or pagination.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetAllOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	for _, o := range orders {
//	    fmt.Printf("#%d %s x%d (%s)\n", o.ID, o.Product.Name, o.Quantity, o.Status)
//	}
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]readmodel.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return selectOrders(ctx, h.db, "")
}
