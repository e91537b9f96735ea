package kernel

import (
	"fmt"
	"strconv"

	"orders/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates a zero-value ID, i.e. one that was never assigned by the store.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID identifies a persisted entity. Identifiers are generated by the store on insert,
// so an entity that has not been saved yet carries the zero ID.
//
// Example:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
type ID struct {
	value int64
}

// NewID wraps a store-generated identifier. Only positive values are accepted.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// Int64 returns the raw identifier.
func (i ID) Int64() int64 {
	return i.value
}

func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsZero reports whether the ID was never assigned.
func (i ID) IsZero() bool {
	return i.value == 0
}

func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero ID.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
