package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the lifecycle. Everything except status is fixed at
// creation; the store assigns the ID on insert.
type Order struct {
	// id is zero until the order is persisted
	id kernel.ID

	productID kernel.ID

	// customerID is nil for anonymous orders
	customerID *kernel.ID

	quantity int

	status Status

	// createdAt is set once, from the server clock, in UTC
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an unsaved order in Pending status stamped with the current UTC time.
//
// Example:
//
//	productID, _ := kernel.NewID(2)
//	o, err := order.NewOrder(productID, nil, 3)
//	if err != nil {
//	    return err
//	}
//	saved, err := repo.Add(ctx, o)
func NewOrder(productID kernel.ID, customerID *kernel.ID, quantity int) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setProductID(productID),
		o.setCustomerID(customerID),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order.
func RestoreOrder(
	id kernel.ID,
	productID kernel.ID,
	customerID *kernel.ID,
	quantity int,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		o.setProductID(productID),
		o.setCustomerID(customerID),
		o.setQuantity(quantity),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two persisted orders by ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) IsPersisted() bool {
	return !o.id.IsZero()
}

func (o *Order) ProductID() kernel.ID {
	return o.productID
}

// CustomerID returns nil when the order has no customer.
func (o *Order) CustomerID() *kernel.ID {
	return o.customerID
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to next if the policy accepts the transition.
// On error the order is left untouched.
func (o *Order) ChangeStatus(next Status, policy TransitionPolicy) error {
	if err := policy.Check(o.status, next); err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product_id", err)
	}
	o.productID = productID
	return nil
}

func (o *Order) setCustomerID(customerID *kernel.ID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer_id", err)
	}
	id := *customerID
	o.customerID = &id
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

// now truncates to microseconds, the resolution of the timestamp columns.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
