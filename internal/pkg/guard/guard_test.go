package guard_test

import (
	"errors"
	"testing"

	"backoffice/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_supplied_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("Rider must be created via NewRider")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInDomainObject(t *testing.T) {
	type receipt struct {
		quantity int
		guard    guard.ConstructorGuard
	}

	errReceiptNotConstructed := errors.New("receipt must be created via newReceipt")

	newReceipt := func(quantity int) (receipt, error) {
		if quantity <= 0 {
			return receipt{}, errors.New("quantity must be positive")
		}
		return receipt{quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		r, err := newReceipt(3)

		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errReceiptNotConstructed))
		assert.Equal(t, 3, r.quantity)
	})

	t.Run("copy_keeps_constructed_flag", func(t *testing.T) {
		r, err := newReceipt(1)
		require.NoError(t, err)

		cp := r

		require.NoError(t, cp.guard.Validate(errReceiptNotConstructed))
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var r receipt

		assert.Equal(t, errReceiptNotConstructed, r.guard.Validate(errReceiptNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
