package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrReferenceNotFound   = errors.New("referenced object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsNotAllowed   = errors.New("value is not allowed")
)

// ObjectNotFoundError reports a lookup by identifier that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError reports a write that collided with a unique key.
type ObjectAlreadyExistsError struct {
	ParamName string
	Key       any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, key any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		Key:       key,
	}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, key any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		Key:       key,
		Cause:     cause,
	}
}

func (e *ObjectAlreadyExistsError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrObjectAlreadyExists, e.ParamName, fmt.Sprintf("%q", fmt.Sprint(e.Key)))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ReferenceNotFoundError reports an input field pointing at an object that does not exist.
type ReferenceNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewReferenceNotFoundError(paramName string, id any) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewReferenceNotFoundErrorWithCause(paramName string, id any, cause error) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ReferenceNotFoundError) Error() string {
	msg := fmt.Sprintf("%s: %s %v does not exist", ErrReferenceNotFound, e.ParamName, e.ID)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ReferenceNotFoundError) Unwrap() error {
	return ErrReferenceNotFound
}

type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsNotAllowedError reports a value outside a closed enumeration.
// The message always lists every allowed value, in order.
type ValueIsNotAllowedError struct {
	ParamName string
	Value     string
	Allowed   []string
	Cause     error
}

func NewValueIsNotAllowedError(paramName, value string, allowed []string) *ValueIsNotAllowedError {
	return &ValueIsNotAllowedError{
		ParamName: paramName,
		Value:     value,
		Allowed:   allowed,
	}
}

func NewValueIsNotAllowedErrorWithCause(
	paramName, value string, allowed []string, cause error,
) *ValueIsNotAllowedError {
	return &ValueIsNotAllowedError{
		ParamName: paramName,
		Value:     value,
		Allowed:   allowed,
		Cause:     cause,
	}
}

func (e *ValueIsNotAllowedError) Error() string {
	quoted := make([]string, len(e.Allowed))
	for i, v := range e.Allowed {
		quoted[i] = fmt.Sprintf("%q", v)
	}

	msg := fmt.Sprintf("%s: %s %s, valid values are [%s]",
		ErrValueIsNotAllowed, e.ParamName, fmt.Sprintf("%q", e.Value), strings.Join(quoted, ", "))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsNotAllowedError) Unwrap() error {
	return ErrValueIsNotAllowed
}
