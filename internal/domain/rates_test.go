package domain

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTable_ReferenceIsAlwaysOne(t *testing.T) {
	table := RateTable{USD: d("3"), RUB: d("95")}
	assert.True(t, table.Rate(USD).Equal(decimal.NewFromInt(1)))
	assert.True(t, table.Rate(AUD).IsZero())
}

func TestRateTable_RoundTrip(t *testing.T) {
	table := RateTable{USD: d("1"), RUB: d("81.234567"), AUD: d("1.5312")}
	values := []string{"110000", "357", "0.01", "107000.55", "0"}

	for _, c := range Currencies {
		for _, v := range values {
			canonical := d(v)
			back := table.FromDisplay(table.ToDisplay(canonical, c), c)
			diff := back.Sub(canonical).Abs()
			require.True(t, diff.LessThan(d("0.000001")), "%s %s -> %s", c, v, back)
		}
	}
}

func TestRateTable_FromDisplayZeroRate(t *testing.T) {
	table := RateTable{}
	assert.True(t, table.FromDisplay(d("100"), RUB).IsZero())
}

func TestRateTable_CloneIsIndependent(t *testing.T) {
	table := DefaultRates()
	clone := table.Clone()
	clone[RUB] = d("1")
	assert.True(t, table.Rate(RUB).Equal(d("90")))
}

func TestPreferences(t *testing.T) {
	assert.Equal(t, RUB, USD.Next())
	assert.Equal(t, AUD, RUB.Next())
	assert.Equal(t, USD, AUD.Next())
	assert.Equal(t, ETH, BTC.Toggle())
	assert.Equal(t, LanguageEN, LanguageRU.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())

	c, err := ParseCurrency("rub")
	require.NoError(t, err)
	assert.Equal(t, RUB, c)

	_, err = ParseCurrency("EUR")
	require.Error(t, err)
	assert.Equal(t, `unsupported currency "EUR"`, err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "domain.ParseCurrency")

	_, err = ParseCoin("doge")
	require.Error(t, err)
}
