package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrSeedProductsCommandIsNotConstructed = errors.New(
	"SeedProductsCommand must be created via NewSeedProductsCommand constructor",
)

// SeedProductsCommand fills an empty catalog with product.SampleCatalog.
type SeedProductsCommand struct {
	guard guard.ConstructorGuard
}

func NewSeedProductsCommand() SeedProductsCommand {
	return SeedProductsCommand{guard: guard.NewConstructorGuard()}
}

func (c SeedProductsCommand) Validate() error {
	return c.guard.Validate(ErrSeedProductsCommandIsNotConstructed)
}
