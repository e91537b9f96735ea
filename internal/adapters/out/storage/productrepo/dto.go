// Package productrepo persists the product catalog.
package productrepo

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"
)

// ProductDTO is the row of the products table.
type ProductDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:   p.ID().Int64(),
		Name: p.Name(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(id, dto.Name)
}
