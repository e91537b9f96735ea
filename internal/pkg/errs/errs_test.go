package errs_test

import (
	"errors"
	"testing"

	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("order", "123", cause)

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: order, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with integer IDs", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", int64(456))
		assert.Equal(t, "object not found: order 456", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("customer", "Ana")

		assert.Equal(t, "customer", err.ParamName)
		assert.Equal(t, "Ana", err.Key)
		require.NoError(t, err.Cause)
		assert.Equal(t, `object already exists: customer "Ana"`, err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key not allowed")
		err := errs.NewObjectAlreadyExistsErrorWithCause("customer", "Ana", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			`object already exists: customer "Ana" (cause: duplicated key not allowed)`,
			err.Error())
	})
}

func TestReferenceNotFoundError(t *testing.T) {
	t.Run("NewReferenceNotFoundError", func(t *testing.T) {
		err := errs.NewReferenceNotFoundError("product_id", int64(99))

		assert.Equal(t, "product_id", err.ParamName)
		assert.Equal(t, int64(99), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "referenced object not found: product_id 99 does not exist", err.Error())
		assert.Equal(t, errs.ErrReferenceNotFound, err.Unwrap())
	})

	t.Run("NewReferenceNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("lookup failed")
		err := errs.NewReferenceNotFoundErrorWithCause("product_id", 7, cause)

		assert.Equal(t,
			"referenced object not found: product_id 7 does not exist (cause: lookup failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("0 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: 0 is not greater than 0)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("blank string")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: blank string)", err.Error())
	})
}

func TestValueIsNotAllowedError(t *testing.T) {
	allowed := []string{"pendiente", "en proceso", "completado"}

	t.Run("lists every allowed value", func(t *testing.T) {
		err := errs.NewValueIsNotAllowedError("status", "en-route", allowed)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, "en-route", err.Value)
		assert.Equal(t, allowed, err.Allowed)
		assert.Equal(t,
			`value is not allowed: status "en-route", valid values are ["pendiente", "en proceso", "completado"]`,
			err.Error())
		assert.Equal(t, errs.ErrValueIsNotAllowed, err.Unwrap())
	})

	t.Run("keeps newlines out of the message", func(t *testing.T) {
		err := errs.NewValueIsNotAllowedError("status", "a\nb", allowed)
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("parse failed")
		err := errs.NewValueIsNotAllowedErrorWithCause("status", "x", allowed, cause)
		assert.Contains(t, err.Error(), "(cause: parse failed)")
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("order", 1), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewObjectAlreadyExistsError("customer", "Ana"), errs.ErrObjectAlreadyExists)
	require.ErrorIs(t, errs.NewReferenceNotFoundError("product_id", 1), errs.ErrReferenceNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsNotAllowedError("status", "x", nil), errs.ErrValueIsNotAllowed)

	t.Run("reference errors are not not-found errors", func(t *testing.T) {
		require.NotErrorIs(t, errs.NewReferenceNotFoundError("product_id", 1), errs.ErrObjectNotFound)
	})
}
