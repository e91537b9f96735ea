package services_test

import (
	"context"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}
func (m *MockProductRepository) List(_ context.Context) ([]*product.Product, error) { return nil, nil }
func (m *MockProductRepository) Count(_ context.Context) (int64, error)             { return 0, nil }
func (m *MockProductRepository) AddAll(_ context.Context, p []*product.Product) ([]*product.Product, error) {
	return p, nil
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerRepository) GetByName(ctx context.Context, name string) (*customer.Customer, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	args := m.Called(ctx, c)
	saved, _ := args.Get(0).(*customer.Customer)
	return saved, args.Error(1)
}
