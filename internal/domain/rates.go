// Package domain defines core data structures used throughout the calculator.
package domain

import (
	"github.com/shopspring/decimal"
)

// RateTable multipliers of each currency against the reference currency.
type RateTable map[Currency]decimal.Decimal

// DefaultRates rates used until the first successful FX fetch.
func DefaultRates() RateTable {
	return RateTable{
		USD: decimal.NewFromInt(1),
		RUB: decimal.NewFromInt(90),
		AUD: decimal.NewFromFloat(1.5),
	}
}

// Rate returns the multiplier for c. The reference currency is always 1,
// unknown currencies are 0.
func (t RateTable) Rate(c Currency) decimal.Decimal {
	if c == ReferenceCurrency {
		return decimal.NewFromInt(1)
	}
	r, ok := t[c]
	if !ok {
		return decimal.Zero
	}
	return r
}

// ToDisplay converts a reference currency value into c.
func (t RateTable) ToDisplay(v decimal.Decimal, c Currency) decimal.Decimal {
	return v.Mul(t.Rate(c))
}

// FromDisplay converts a value shown in c back to the reference currency.
// A zero rate yields zero.
func (t RateTable) FromDisplay(v decimal.Decimal, c Currency) decimal.Decimal {
	r := t.Rate(c)
	if r.IsZero() {
		return decimal.Zero
	}
	return v.Div(r)
}

// Clone returns an independent copy.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// SpotPrices last traded prices per coin, in reference currency.
type SpotPrices map[Coin]decimal.Decimal

// DefaultSpotPrices prices used until the first successful ticker fetch.
func DefaultSpotPrices() SpotPrices {
	return SpotPrices{BTC: decimal.Zero, ETH: decimal.Zero}
}

// Price returns the price for c or zero.
func (p SpotPrices) Price(c Coin) decimal.Decimal {
	v, ok := p[c]
	if !ok {
		return decimal.Zero
	}
	return v
}

// Clone returns an independent copy.
func (p SpotPrices) Clone() SpotPrices {
	out := make(SpotPrices, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
