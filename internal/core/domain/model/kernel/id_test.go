package kernel_test

import (
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should wrap a positive value", func(t *testing.T) {
		id, err := kernel.NewID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
		assert.False(t, id.IsZero())
		assert.NoError(t, id.Validate())
	})

	t.Run("should reject non-positive values", func(t *testing.T) {
		for _, v := range []int64{0, -1, -999} {
			id, err := kernel.NewID(v)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.True(t, id.IsZero())
		}
	})
}

func TestID_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var id kernel.ID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrIDIsNotConstructed, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestID_IsEqual(t *testing.T) {
	a, _ := kernel.NewID(1)
	b, _ := kernel.NewID(1)
	c, _ := kernel.NewID(2)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
