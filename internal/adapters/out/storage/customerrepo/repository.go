package customerrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a customer by exact name after trimming surrounding whitespace.
func (r *GormCustomerRepository) GetByName(ctx context.Context, name string) (*customer.Customer, error) {
	name = customer.NormalizeName(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("customer name")
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Add inserts an unsaved customer. A taken name yields ObjectAlreadyExistsError.
func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsPersisted() {
		return nil, errs.NewValueIsInvalidErrorWithCause("customer",
			errors.New("customer "+c.ID().String()+" is already persisted"))
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewObjectAlreadyExistsErrorWithCause("customer", c.Name(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}
