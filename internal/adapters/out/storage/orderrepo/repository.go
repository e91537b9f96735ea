package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and returns it with its generated ID.
func (r *GormOrderRepository) Add(ctx context.Context, draft *order.Order) (*order.Order, error) {
	saved, err := r.AddAll(ctx, []*order.Order{draft})
	if err != nil {
		return nil, err
	}
	return saved[0], nil
}

// AddAll saves new orders in one INSERT statement. IDs are assigned in input order.
func (r *GormOrderRepository) AddAll(ctx context.Context, drafts []*order.Order) ([]*order.Order, error) {
	if len(drafts) == 0 {
		return []*order.Order{}, nil
	}

	dtos := make([]OrderDTO, 0, len(drafts))
	for _, draft := range drafts {
		if err := draft.Validate(); err != nil {
			return nil, err
		}
		if draft.IsPersisted() {
			return nil, errs.NewValueIsInvalidErrorWithCause("order",
				errors.New("order "+draft.ID().String()+" is already persisted"))
		}
		dtos = append(dtos, fromDomain(draft))
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns every order ordered by ID.
func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// ListByCustomer returns a customer's orders ordered by ID.
func (r *GormOrderRepository) ListByCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "customer_id = ?", customerID.Int64()).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// ListByProduct returns the orders of a product ordered by ID.
func (r *GormOrderRepository) ListByProduct(ctx context.Context, productID kernel.ID) ([]*order.Order, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "product_id = ?", productID.Int64()).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// UpdateStatus writes the status column only and returns the stored order.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id kernel.ID, status order.Status) (*order.Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Int64()).
		Update("status", status.String())
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", id.Int64())
	}

	return r.Get(ctx, id)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
