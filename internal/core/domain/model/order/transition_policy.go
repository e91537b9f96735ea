package order

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
)

// ErrTransitionNotAllowed is returned when the active policy rejects a status change.
var ErrTransitionNotAllowed = errors.New("status transition is not allowed")

// TransitionPolicy decides which status changes an order accepts.
type TransitionPolicy int

const (
	// Permissive accepts any change between valid statuses.
	Permissive TransitionPolicy = iota

	// ForwardOnly accepts staying in place or moving to the next lifecycle stage.
	ForwardOnly
)

// ParseTransitionPolicy reads the configuration value ("permissive" or "forward-only").
// An empty value selects Permissive.
func ParseTransitionPolicy(value string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "permissive":
		return Permissive, nil
	case "forward-only":
		return ForwardOnly, nil
	default:
		return Permissive, errs.NewValueIsNotAllowedError(
			"status transition policy", value, []string{"permissive", "forward-only"},
		)
	}
}

func (p TransitionPolicy) String() string {
	if p == ForwardOnly {
		return "forward-only"
	}
	return "permissive"
}

// Check returns nil when from -> to is accepted.
func (p TransitionPolicy) Check(from, to Status) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}

	if p == ForwardOnly {
		step := to.rank() - from.rank()
		if step != 0 && step != 1 {
			return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, from, to)
		}
	}

	return nil
}
