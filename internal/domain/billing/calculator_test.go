package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/billing"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

func item(qty, price float64) entity.LineItem {
	return entity.LineItem{
		ItemType:    entity.ItemTypeOther,
		Quantity:    decimal.NewFromFloat(qty),
		UnitPrice:   decimal.NewFromFloat(price),
		TotalPrice:  decimal.NewFromFloat(qty).Mul(decimal.NewFromFloat(price)),
	}
}

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// Scenario A: 2 x 50.00, discount 10, tax 5 -> subtotal 100, total 95.
func TestComputeTotals_DiscountAndTax(t *testing.T) {
	subtotal, total, err := billing.ComputeTotals(
		[]entity.LineItem{item(2, 50.0)}, d(10), d(5), decimal.Zero,
	)
	require.NoError(t, err)
	assert.True(t, subtotal.Equal(d(100)), "subtotal must be 100, got %s", subtotal)
	assert.True(t, total.Equal(d(95)), "total must be 95, got %s", total)
}

// Scenario B: deduction larger than the subtotal clamps to zero, never negative.
func TestComputeTotals_DeductionClampsToZero(t *testing.T) {
	subtotal, total, err := billing.ComputeTotals(
		[]entity.LineItem{item(1, 20.0)}, decimal.Zero, decimal.Zero, d(100),
	)
	require.NoError(t, err)
	assert.True(t, subtotal.Equal(d(20)), "subtotal must be 20, got %s", subtotal)
	assert.True(t, total.IsZero(), "total must clamp to 0, got %s", total)
}

// Clamping happens before tax: tax survives any deduction.
func TestComputeTotals_TaxIsNeverDiscountedAway(t *testing.T) {
	cases := []struct {
		discount, tax, deduction float64
	}{
		{0, 7.5, 1000},
		{500, 3, 500},
		{30, 2, 15},
		{0, 0, 0},
	}
	for _, tc := range cases {
		_, total, err := billing.ComputeTotals(
			[]entity.LineItem{item(3, 10.0)}, d(tc.discount), d(tc.tax), d(tc.deduction),
		)
		require.NoError(t, err)
		assert.True(t, total.GreaterThanOrEqual(d(tc.tax)),
			"total %s must be >= tax %v (discount=%v deduction=%v)",
			total, tc.tax, tc.discount, tc.deduction)
	}
}

// Subtotal is the exact sum of quantity*unit_price, no drift.
func TestComputeTotals_SubtotalIsExact(t *testing.T) {
	items := []entity.LineItem{item(1, 0.1), item(1, 0.2), item(3, 33.33)}
	subtotal, _, err := billing.ComputeTotals(items, decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, subtotal.Equal(decimal.RequireFromString("100.29")),
		"decimal arithmetic must not drift, got %s", subtotal)
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	subtotal, total, err := billing.ComputeTotals(nil, decimal.Zero, d(2), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, subtotal.IsZero())
	assert.True(t, total.Equal(d(2)), "an empty invoice still carries its tax")
}

func TestComputeTotals_RejectsNegativeAmounts(t *testing.T) {
	items := []entity.LineItem{item(1, 10)}

	_, _, err := billing.ComputeTotals(items, d(-1), decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "negative discount must be rejected")

	_, _, err = billing.ComputeTotals(items, decimal.Zero, d(-1), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "negative tax must be rejected")

	_, _, err = billing.ComputeTotals(items, decimal.Zero, decimal.Zero, d(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "negative deduction must be rejected")

	_, _, err = billing.ComputeTotals([]entity.LineItem{item(-1, 10)}, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "negative quantity must be rejected")

	_, _, err = billing.ComputeTotals([]entity.LineItem{item(1, -10)}, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "negative unit price must be rejected")
}

// Pure function: same input, same output.
func TestComputeTotals_Deterministic(t *testing.T) {
	items := []entity.LineItem{item(2, 19.99), item(1, 5)}
	s1, t1, err1 := billing.ComputeTotals(items, d(3), d(1.5), d(10))
	s2, t2, err2 := billing.ComputeTotals(items, d(3), d(1.5), d(10))
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, s1.Equal(s2))
	assert.True(t, t1.Equal(t2))
}
