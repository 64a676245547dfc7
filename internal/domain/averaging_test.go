package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireClose(t *testing.T, expected, actual decimal.Decimal, tolerance string) {
	t.Helper()
	diff := expected.Sub(actual).Abs()
	require.True(t, diff.LessThanOrEqual(d(tolerance)), "expected %s, got %s (tolerance %s)", expected, actual, tolerance)
}

func TestCalcNewEntry_Scenario(t *testing.T) {
	out := CalcNewEntry(
		Position{EntryPrice: d("110000"), Quantity: d("0.24")},
		AveragingAction{Profit: d("357"), BuyPrice: d("107000")},
	)

	requireClose(t, d("0.00333645"), out.BoughtQuantity, "0.00000001")
	requireClose(t, d("0.24333645"), out.NewQuantity, "0.00000001")
	// 26400 / 0.2433364486
	requireClose(t, d("108491.76"), out.NewEntryPrice, "0.1")
	requireClose(t, d("1.4"), out.PercentDrop, "0.05")
	assert.True(t, out.Effective())
}

func TestCalcNewEntry_ZeroProfit(t *testing.T) {
	out := CalcNewEntry(
		Position{EntryPrice: d("110000"), Quantity: d("0.24")},
		AveragingAction{Profit: decimal.Zero, BuyPrice: d("107000")},
	)

	assert.True(t, out.BoughtQuantity.IsZero())
	assert.True(t, out.NewQuantity.Equal(d("0.24")))
	assert.True(t, out.NewEntryPrice.Equal(d("110000")))
	assert.True(t, out.PercentDrop.IsZero())
	assert.False(t, out.Effective())
}

func TestCalcNewEntry_ZeroBuyPrice(t *testing.T) {
	out := CalcNewEntry(
		Position{EntryPrice: d("50000"), Quantity: d("1.5")},
		AveragingAction{Profit: d("1000"), BuyPrice: decimal.Zero},
	)

	assert.True(t, out.BoughtQuantity.IsZero())
	assert.True(t, out.NewEntryPrice.Equal(d("50000")))
	assert.True(t, out.PercentDrop.IsZero())
}

func TestCalcNewEntry_EmptyPosition(t *testing.T) {
	out := CalcNewEntry(
		Position{EntryPrice: decimal.Zero, Quantity: decimal.Zero},
		AveragingAction{Profit: d("500"), BuyPrice: d("2500")},
	)

	// nothing held at zero cost: the whole position is the fresh buy
	assert.True(t, out.BoughtQuantity.Equal(d("0.2")))
	assert.True(t, out.NewQuantity.Equal(d("0.2")))
	assert.True(t, out.NewEntryPrice.IsZero())
	assert.True(t, out.PercentDrop.IsZero())
}

func TestCalcNewEntry_ZeroEntryPriceMeansNoDrop(t *testing.T) {
	cases := []AveragingAction{
		{Profit: d("100"), BuyPrice: d("10")},
		{Profit: decimal.Zero, BuyPrice: decimal.Zero},
		{Profit: d("1"), BuyPrice: d("99999")},
	}
	for _, action := range cases {
		out := CalcNewEntry(Position{EntryPrice: decimal.Zero, Quantity: d("3")}, action)
		assert.True(t, out.PercentDrop.IsZero(), "action %+v", action)
	}
}

func TestCalcNewEntry_AllZero(t *testing.T) {
	out := CalcNewEntry(Position{}, AveragingAction{})

	assert.True(t, out.BoughtQuantity.IsZero())
	assert.True(t, out.NewQuantity.IsZero())
	assert.True(t, out.NewEntryPrice.IsZero())
	assert.True(t, out.PercentDrop.IsZero())
}

func TestCalcNewEntry_CostBasisPreserved(t *testing.T) {
	cases := []struct {
		p0, q0, s, pb string
	}{
		{"110000", "0.24", "357", "107000"},
		{"3200.5", "4.125", "800", "2900"},
		{"1", "1000", "50", "0.5"},
		{"65000", "0.00012345", "12.34", "64000"},
		{"2000", "10", "5000", "2500"},
	}

	for _, tc := range cases {
		out := CalcNewEntry(
			Position{EntryPrice: d(tc.p0), Quantity: d(tc.q0)},
			AveragingAction{Profit: d(tc.s), BuyPrice: d(tc.pb)},
		)

		expectedQty := d(tc.q0).Add(d(tc.s).Div(d(tc.pb)))
		requireClose(t, expectedQty, out.NewQuantity, "0.0000000001")
		requireClose(t, d(tc.p0).Mul(d(tc.q0)), out.NewEntryPrice.Mul(out.NewQuantity), "0.000001")
	}
}

func TestCalcNewEntry_BuyAboveEntry(t *testing.T) {
	out := CalcNewEntry(
		Position{EntryPrice: d("100"), Quantity: d("1")},
		AveragingAction{Profit: d("200"), BuyPrice: d("200")},
	)

	// profit buys add quantity without adding cost, so the entry still drops
	assert.True(t, out.NewEntryPrice.Equal(d("50")))
	assert.True(t, out.PercentDrop.Equal(d("50")))
	assert.False(t, out.Effective())
}

func TestCalcNewEntry_RoundsInputs(t *testing.T) {
	out := CalcNewEntry(
		Position{EntryPrice: d("100.004"), Quantity: d("1.000000004")},
		AveragingAction{Profit: d("0.004"), BuyPrice: d("10")},
	)

	assert.True(t, out.BoughtQuantity.IsZero())
	assert.True(t, out.NewQuantity.Equal(d("1")))
	assert.True(t, out.NewEntryPrice.Equal(d("100")))
}
