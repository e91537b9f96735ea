package order

import (
	"orders/internal/pkg/errs"
)

// Status is the lifecycle stage of an order. The string values are the canonical
// tokens exchanged with callers and stored in the database.
//
//	pendiente ──> en proceso ──> completado
type Status string

const (
	// Pending is the initial status of every order.
	Pending Status = "pendiente"

	// InProgress marks an order that is being prepared.
	InProgress Status = "en proceso"

	// Completed marks a fulfilled order.
	Completed Status = "completado"
)

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Completed}
}

// StatusValues returns the string form of Statuses, used in validation messages.
func StatusValues() []string {
	statuses := Statuses()
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return values
}

// ParseStatus converts caller input into a Status. Matching is exact: the tokens are
// lowercase and "en proceso" contains a single space.
func ParseStatus(value string) (Status, error) {
	s := Status(value)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// IsValidStatus reports whether value is one of the enumeration tokens.
func IsValidStatus(value string) bool {
	return Status(value).Validate() == nil
}

// Validate returns a ValueIsNotAllowedError listing all valid statuses.
func (s Status) Validate() error {
	switch s {
	case Pending, InProgress, Completed:
		return nil
	default:
		return errs.NewValueIsNotAllowedError("status", string(s), StatusValues())
	}
}

func (s Status) String() string {
	return string(s)
}

// rank orders statuses along the lifecycle; invalid statuses rank -1.
func (s Status) rank() int {
	for i, candidate := range Statuses() {
		if candidate == s {
			return i
		}
	}
	return -1
}
