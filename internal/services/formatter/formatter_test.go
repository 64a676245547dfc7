package formatter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vadiminshakov/lowerentry/internal/domain"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		name string
		v    string
		c    domain.Currency
		lang domain.Language
		want string
	}{
		{"usd en", "108491.7617", domain.USD, domain.LanguageEN, "$108,491.76"},
		{"aud en", "1500", domain.AUD, domain.LanguageEN, "A$1,500.00"},
		{"rub en", "9764258.55", domain.RUB, domain.LanguageEN, "RUB\u00a09,764,259"},
		{"usd ru", "108491.7617", domain.USD, domain.LanguageRU, "108\u00a0491,76\u00a0$"},
		{"rub ru", "9764258.55", domain.RUB, domain.LanguageRU, "9\u00a0764\u00a0259\u00a0₽"},
		{"aud ru", "357", domain.AUD, domain.LanguageRU, "357,00\u00a0AU$"},
		{"zero", "0", domain.USD, domain.LanguageEN, "$0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatMoney(decimal.RequireFromString(tc.v), tc.c, tc.lang))
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "0.24333645", FormatQuantity(decimal.RequireFromString("0.2433364485981308"), domain.BTC, domain.LanguageEN))
	assert.Equal(t, "0.243336", FormatQuantity(decimal.RequireFromString("0.2433364485981308"), domain.ETH, domain.LanguageEN))
	assert.Equal(t, "0,24", FormatQuantity(decimal.RequireFromString("0.24"), domain.BTC, domain.LanguageRU))
	assert.Equal(t, "1,250.5", FormatQuantity(decimal.RequireFromString("1250.5"), domain.ETH, domain.LanguageEN))
	assert.Equal(t, "3", FormatQuantity(decimal.NewFromInt(3), domain.BTC, domain.LanguageEN))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "−1.4%", FormatPercent(decimal.RequireFromString("1.3711"), domain.LanguageEN))
	assert.Equal(t, "−1,4%", FormatPercent(decimal.RequireFromString("1.3711"), domain.LanguageRU))
	assert.Equal(t, "−0.0%", FormatPercent(decimal.Zero, domain.LanguageEN))
	assert.Equal(t, "+2.5%", FormatPercent(decimal.RequireFromString("-2.5"), domain.LanguageEN))
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, 10, 14, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "10/14/2026, 3:04:05 PM", FormatDateTime(ts, domain.LanguageEN))
	assert.Equal(t, "14.10.2026, 15:04:05", FormatDateTime(ts, domain.LanguageRU))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2026, 10, 14, 9, 4, 5, 0, time.UTC)
	assert.Equal(t, "9:04:05 AM", FormatTime(ts, domain.LanguageEN))
	assert.Equal(t, "09:04:05", FormatTime(ts, domain.LanguageRU))
}

func TestInputText(t *testing.T) {
	assert.Equal(t, "357", InputText(decimal.RequireFromString("357.001"), domain.USD))
	assert.Equal(t, "32130", InputText(decimal.RequireFromString("32130.4"), domain.RUB))
	assert.Equal(t, "535.5", InputText(decimal.RequireFromString("535.5"), domain.AUD))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, 0, FractionDigits(domain.RUB))
	assert.Equal(t, 2, FractionDigits(domain.USD))
	assert.Equal(t, 8, QuantityDigits(domain.BTC))
	assert.Equal(t, 6, QuantityDigits(domain.ETH))
}
