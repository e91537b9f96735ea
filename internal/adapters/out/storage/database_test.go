package storage_test

import (
	"context"
	"testing"

	"orders/internal/adapters/out/storage"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *storage.GormUnitOfWorkFactory {
	t.Helper()

	db, err := storage.Open(storage.Config{
		Driver: storage.DriverSQLite,
		DSN:    "file::memory:?_pragma=foreign_keys(1)",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = storage.Close(db)
	})

	require.NoError(t, storage.Migrate(db))
	return storage.NewGormUnitOfWorkFactory(db)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := storage.Open(storage.Config{Driver: "mysql", DSN: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported database driver "mysql"`)
}

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	factory := openSQLite(t)

	catalog, err := product.SampleCatalog()
	require.NoError(t, err)
	products, err := factory.Create().ProductRepository().AddAll(ctx, catalog)
	require.NoError(t, err)
	require.Len(t, products, 5)
	assert.Equal(t, int64(2), products[1].ID().Int64())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	draft, _ := customer.NewCustomer("Ana")
	ana, err := uow.CustomerRepository().Add(ctx, draft)
	require.NoError(t, err)

	customerID := ana.ID()
	o, err := order.NewOrder(products[1].ID(), &customerID, 3)
	require.NoError(t, err)
	saved, err := uow.OrderRepository().Add(ctx, o)
	require.NoError(t, err)
	require.NoError(t, uow.Commit(ctx))

	stored, err := factory.Create().OrderRepository().Get(ctx, saved.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Pending, stored.Status())
	assert.Equal(t, 3, stored.Quantity())
	assert.True(t, o.CreatedAt().Equal(stored.CreatedAt()))
	require.NotNil(t, stored.CustomerID())
	assert.Equal(t, customerID, *stored.CustomerID())
}

func TestSQLite_ForeignKeyRejectsUnknownProduct(t *testing.T) {
	ctx := context.Background()
	factory := openSQLite(t)

	unknown, _ := kernel.NewID(99)
	o, err := order.NewOrder(unknown, nil, 1)
	require.NoError(t, err)

	_, err = factory.Create().OrderRepository().Add(ctx, o)
	require.Error(t, err)

	orders, err := factory.Create().OrderRepository().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
