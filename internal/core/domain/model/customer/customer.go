package customer

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

type Customer struct {
	id            kernel.ID
	name          string
	isConstructed bool
}

// NewCustomer creates a customer that has not been persisted yet.
func NewCustomer(name string) (*Customer, error) {
	c := &Customer{isConstructed: true}
	if err := c.setName(name); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCustomer rebuilds a persisted customer.
func RestoreCustomer(id kernel.ID, name string) (*Customer, error) {
	c := &Customer{isConstructed: true}
	if err := errors.Join(id.Validate(), c.setName(name)); err != nil {
		return nil, err
	}
	c.id = id
	return c, nil
}

// NormalizeName trims surrounding whitespace; lookups and inserts both use the normalized form.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.ID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) IsPersisted() bool {
	return !c.id.IsZero()
}

func (c *Customer) setName(name string) error {
	name = NormalizeName(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}
