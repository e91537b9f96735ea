package product

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// SampleNames is the fixed catalog seeded into an empty store, in insertion order.
var SampleNames = []string{"Leche", "Cafe", "Chocolatada", "Agua", "Gaseosa"}

type Product struct {
	id            kernel.ID
	name          string
	isConstructed bool
}

// NewProduct creates a product that has not been persisted yet; the store assigns its ID.
func NewProduct(name string) (*Product, error) {
	p := &Product{isConstructed: true}
	if err := p.setName(name); err != nil {
		return nil, err
	}
	return p, nil
}

// RestoreProduct rebuilds a persisted product.
func RestoreProduct(id kernel.ID, name string) (*Product, error) {
	p := &Product{isConstructed: true}
	if err := errors.Join(id.Validate(), p.setName(name)); err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

// SampleCatalog builds unsaved products for every entry of SampleNames.
func SampleCatalog() ([]*Product, error) {
	products := make([]*Product, 0, len(SampleNames))
	for _, name := range SampleNames {
		p, err := NewProduct(name)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.ID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

// IsPersisted reports whether the store has assigned an ID.
func (p *Product) IsPersisted() bool {
	return !p.id.IsZero()
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}
