package productrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns every product ordered by ID.
func (r *GormProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AddAll inserts unsaved products in a single statement and returns them with their
// generated IDs.
func (r *GormProductRepository) AddAll(ctx context.Context, products []*product.Product) ([]*product.Product, error) {
	if len(products) == 0 {
		return []*product.Product{}, nil
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if p.IsPersisted() {
			return nil, errs.NewValueIsInvalidErrorWithCause("product",
				errors.New("product "+p.ID().String()+" is already persisted"))
		}
		dtos = append(dtos, fromDomain(p))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return nil, err
	}

	saved := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		saved = append(saved, p)
	}
	return saved, nil
}
