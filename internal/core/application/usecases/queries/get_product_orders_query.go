package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrGetProductOrdersQueryIsNotConstructed = errors.New(
	"GetProductOrdersQuery must be created via NewGetProductOrdersQuery constructor",
)

// GetProductOrdersQuery lists every order placed for one product.
type GetProductOrdersQuery struct {
	productID int64

	guard guard.ConstructorGuard
}

func NewGetProductOrdersQuery(productID int64) GetProductOrdersQuery {
	return GetProductOrdersQuery{productID: productID, guard: guard.NewConstructorGuard()}
}

func (q GetProductOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetProductOrdersQueryIsNotConstructed)
}

func (q GetProductOrdersQuery) ProductID() int64 {
	return q.productID
}
