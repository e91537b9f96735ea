package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeedProductsCommandHandler_Handle_EmptyCatalog(t *testing.T) {
	ctx := t.Context()

	products := new(MockProductRepository)
	uow := new(MockUoW)
	seeded := []*product.Product{
		mustProduct(1, "Leche"),
		mustProduct(2, "Cafe"),
		mustProduct(3, "Chocolatada"),
		mustProduct(4, "Agua"),
		mustProduct(5, "Gaseosa"),
	}
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Count", mock.Anything).Return(int64(0), nil).Once(),
		products.On("AddAll", mock.Anything, mock.MatchedBy(func(catalog []*product.Product) bool {
			if len(catalog) != len(product.SampleNames) {
				return false
			}
			for i, p := range catalog {
				if p.Name() != product.SampleNames[i] || p.IsPersisted() {
					return false
				}
			}
			return true
		})).Return(seeded, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSeedProductsCommandHandler(factory)
	count, err := h.Handle(ctx, commands.NewSeedProductsCommand())

	require.NoError(t, err)
	assert.Equal(t, 5, count)
	products.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSeedProductsCommandHandler_Handle_NonEmptyCatalogIsLeftAlone(t *testing.T) {
	ctx := t.Context()

	products := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(products).Once()
	products.On("Count", mock.Anything).Return(int64(5), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSeedProductsCommandHandler(factory)
	count, err := h.Handle(ctx, commands.NewSeedProductsCommand())

	require.NoError(t, err)
	assert.Zero(t, count)
	products.AssertNotCalled(t, "AddAll", mock.Anything, mock.Anything)
}

func TestSeedProductsCommandHandler_Handle_CountError(t *testing.T) {
	ctx := t.Context()

	products := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(products).Once()
	products.On("Count", mock.Anything).Return(int64(0), errors.New("no such table")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSeedProductsCommandHandler(factory)
	_, err := h.Handle(ctx, commands.NewSeedProductsCommand())

	require.EqualError(t, err, "no such table")
}

func TestSeedProductsCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewSeedProductsCommandHandler(new(MockCatalogUoWFactory))

	_, err := h.Handle(t.Context(), commands.SeedProductsCommand{})

	require.ErrorIs(t, err, commands.ErrSeedProductsCommandIsNotConstructed)
}
