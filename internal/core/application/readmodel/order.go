// Package readmodel holds the resolved views returned by commands and queries:
// an order with its product and optional customer embedded.
package readmodel

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
)

var ErrMismatchedReference = errors.New("referenced entity does not match the order")

type Product struct {
	ID   int64
	Name string
}

type Customer struct {
	ID   int64
	Name string
}

// Order is an order resolved against its product and customer.
// Customer is nil for anonymous orders.
type Order struct {
	ID        int64
	Product   Product
	Customer  *Customer
	Quantity  int
	Status    order.Status
	CreatedAt time.Time
}

// ProductID mirrors the order's foreign key.
func (o Order) ProductID() int64 {
	return o.Product.ID
}

func NewProduct(p *product.Product) Product {
	return Product{ID: p.ID().Int64(), Name: p.Name()}
}

func NewCustomer(c *customer.Customer) Customer {
	return Customer{ID: c.ID().Int64(), Name: c.Name()}
}

// NewOrder resolves o against p and c. c must be nil exactly when o has no customer.
func NewOrder(o *order.Order, p *product.Product, c *customer.Customer) (Order, error) {
	if !o.ProductID().IsEqual(p.ID()) {
		return Order{}, ErrMismatchedReference
	}

	view := Order{
		ID:        o.ID().Int64(),
		Product:   NewProduct(p),
		Quantity:  o.Quantity(),
		Status:    o.Status(),
		CreatedAt: o.CreatedAt(),
	}

	switch customerID := o.CustomerID(); {
	case customerID == nil && c == nil:
	case customerID != nil && c != nil && customerID.IsEqual(c.ID()):
		resolved := NewCustomer(c)
		view.Customer = &resolved
	default:
		return Order{}, ErrMismatchedReference
	}

	return view, nil
}
