// Package queries contains read-only operations. Handlers query the database directly
// and return resolved read models; they never go through a unit of work.
package queries

import (
	"context"
	"time"

	"orders/internal/core/application/readmodel"
	"orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// orderSelect joins every order with its product and, when present, its customer.
// Callers append a WHERE clause and must keep ORDER BY o.id last.
const orderSelect = `
	SELECT
		o.id,
		o.product_id,
		p.name AS product_name,
		o.customer_id,
		c.name AS customer_name,
		o.quantity,
		o.status,
		o.created_at
	FROM orders o
	JOIN products p ON p.id = o.product_id
	LEFT JOIN customers c ON c.id = o.customer_id
`

type orderRow struct {
	ID           int64
	ProductID    int64
	ProductName  string
	CustomerID   *int64
	CustomerName *string
	Quantity     int
	Status       string
	CreatedAt    time.Time
}

func (r orderRow) toReadModel() (readmodel.Order, error) {
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return readmodel.Order{}, err
	}

	view := readmodel.Order{
		ID:        r.ID,
		Product:   readmodel.Product{ID: r.ProductID, Name: r.ProductName},
		Quantity:  r.Quantity,
		Status:    status,
		CreatedAt: r.CreatedAt.UTC(),
	}

	if r.CustomerID != nil && r.CustomerName != nil {
		view.Customer = &readmodel.Customer{ID: *r.CustomerID, Name: *r.CustomerName}
	}

	return view, nil
}

// selectOrders runs orderSelect with an optional filter and returns the rows in ID order.
func selectOrders(ctx context.Context, db *gorm.DB, where string, args ...any) ([]readmodel.Order, error) {
	sql := orderSelect
	if where != "" {
		sql += " WHERE " + where
	}
	sql += " ORDER BY o.id"

	var rows []orderRow
	if err := db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]readmodel.Order, 0, len(rows))
	for _, row := range rows {
		view, err := row.toReadModel()
		if err != nil {
			return nil, err
		}
		orders = append(orders, view)
	}

	return orders, nil
}
