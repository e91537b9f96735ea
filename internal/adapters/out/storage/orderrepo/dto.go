// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Orders reference products (required) and customers (optional) through foreign keys.
package orderrepo

import (
	"time"

	"orders/internal/adapters/out/storage/customerrepo"
	"orders/internal/adapters/out/storage/productrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderDTO is the row of the orders table. The Product and Customer fields exist only
// so that migrations emit the foreign key constraints; they are never loaded or saved.
type OrderDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ProductID  int64  `gorm:"not null;index"`
	CustomerID *int64 `gorm:"index"`
	Quantity   int    `gorm:"not null"`
	Status     string `gorm:"type:varchar(20);not null;index"`
	CreatedAt  time.Time

	Product  productrepo.ProductDTO   `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Customer *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var customerID *int64
	if id := o.CustomerID(); id != nil {
		raw := id.Int64()
		customerID = &raw
	}

	return OrderDTO{
		ID:         o.ID().Int64(),
		ProductID:  o.ProductID().Int64(),
		CustomerID: customerID,
		Quantity:   o.Quantity(),
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt(),
	}
}

// toDomain rebuilds the aggregate using RestoreOrder, so a row with an unknown status
// token surfaces as an error instead of a silently invalid order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	productID, err := kernel.NewID(dto.ProductID)
	if err != nil {
		return nil, err
	}

	var customerID *kernel.ID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.NewID(*dto.CustomerID)
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	return order.RestoreOrder(id, productID, customerID, dto.Quantity, order.Status(dto.Status), dto.CreatedAt)
}
