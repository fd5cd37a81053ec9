package kernel_test

import (
	"testing"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Run("parses decimal amounts", func(t *testing.T) {
		m, err := kernel.MoneyFromString("12.5")

		require.NoError(t, err)
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("rejects non numeric input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("twelve")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price := kernel.MoneyFromCents(199)
	discount := kernel.MoneyFromCents(50)

	t.Run("times multiplies by quantity", func(t *testing.T) {
		assert.Equal(t, "5.97", price.Times(3).String())
	})

	t.Run("add and sub are exact", func(t *testing.T) {
		got := price.Times(3).Sub(discount).Add(kernel.MoneyFromCents(3))
		assert.True(t, got.Equal(kernel.MoneyFromCents(550)))
	})

	t.Run("float drift does not leak into totals", func(t *testing.T) {
		tenth := kernel.NewMoney(decimal.RequireFromString("0.1"))
		sum := kernel.ZeroMoney()
		for range 10 {
			sum = sum.Add(tenth)
		}
		assert.True(t, sum.Equal(kernel.MoneyFromCents(100)))
	})

	t.Run("zero value is a usable zero", func(t *testing.T) {
		var m kernel.Money
		assert.True(t, m.IsZero())
		assert.Equal(t, "1.99", m.Add(price).String())
	})
}

func TestRequireNonNegative(t *testing.T) {
	require.NoError(t, kernel.RequireNonNegative("tax", kernel.ZeroMoney()))
	require.NoError(t, kernel.RequireNonNegative("tax", kernel.MoneyFromCents(1)))

	err := kernel.RequireNonNegative("tax", kernel.MoneyFromCents(-1))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "tax")
	assert.Contains(t, err.Error(), "-0.01 is negative")
}
