// Package customerrepo persists customers. Names are unique at the database level.
package customerrepo

import (
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
)

// CustomerDTO is the row of the customers table.
type CustomerDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null;uniqueIndex"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:   c.ID().Int64(),
		Name: c.Name(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name)
}
