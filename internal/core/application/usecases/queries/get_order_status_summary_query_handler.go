package queries

import (
	"context"

	"orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOrderStatusSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusSummaryQueryHandler(db *gorm.DB) GetOrderStatusSummaryQueryHandler {
	return GetOrderStatusSummaryQueryHandler{db: db}
}

// Handle returns one StatusCount per status in lifecycle order, zero counts included.
func (h GetOrderStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusSummaryQuery,
) ([]StatusCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		Status string
		Count  int64
	}
	err := h.db.WithContext(ctx).
		Raw(`SELECT status, COUNT(*) AS count FROM orders GROUP BY status`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	summary := make([]StatusCount, 0, len(order.Statuses()))
	for _, status := range order.Statuses() {
		summary = append(summary, StatusCount{Status: status, Count: counts[status.String()]})
	}

	return summary, nil
}
