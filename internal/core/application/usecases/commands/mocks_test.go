package commands_test

import (
	"context"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}
func (m *MockProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]*product.Product)
	return p, args.Error(1)
}
func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockProductRepository) AddAll(ctx context.Context, products []*product.Product) ([]*product.Product, error) {
	args := m.Called(ctx, products)
	p, _ := args.Get(0).([]*product.Product)
	return p, args.Error(1)
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

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, draft *order.Order) (*order.Order, error) {
	args := m.Called(ctx, draft)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) AddAll(ctx context.Context, drafts []*order.Order) ([]*order.Order, error) {
	args := m.Called(ctx, drafts)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) List(_ context.Context) ([]*order.Order, error) { return nil, nil }
func (m *MockOrderRepository) ListByCustomer(_ context.Context, _ kernel.ID) ([]*order.Order, error) {
	return nil, nil
}
func (m *MockOrderRepository) ListByProduct(_ context.Context, _ kernel.ID) ([]*order.Order, error) {
	return nil, nil
}
func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id kernel.ID, status order.Status) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

func mustID(value int64) kernel.ID {
	id, err := kernel.NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func mustProduct(id int64, name string) *product.Product {
	p, err := product.RestoreProduct(mustID(id), name)
	if err != nil {
		panic(err)
	}
	return p
}

func mustCustomer(id int64, name string) *customer.Customer {
	c, err := customer.RestoreCustomer(mustID(id), name)
	if err != nil {
		panic(err)
	}
	return c
}
