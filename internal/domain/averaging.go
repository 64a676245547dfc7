// Package domain defines core data structures used throughout the calculator.
package domain

import (
	"github.com/shopspring/decimal"
)

const (
	percentageMultiplier = 100

	// PricePlaces decimal places kept for prices and profit.
	PricePlaces int32 = 2
	// QuantityPlaces decimal places kept for coin quantities.
	QuantityPlaces int32 = 8
)

// Position existing holding and its average cost basis, in reference currency.
type Position struct {
	EntryPrice decimal.Decimal `json:"entry_price"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// AveragingAction profit redeployed and the price it is redeployed at, in reference currency.
type AveragingAction struct {
	Profit   decimal.Decimal `json:"profit"`
	BuyPrice decimal.Decimal `json:"buy_price"`
}

// Outcome result of averaging a position with an action. Always derived, never stored.
type Outcome struct {
	BoughtQuantity decimal.Decimal `json:"bought_quantity"`
	NewQuantity    decimal.Decimal `json:"new_quantity"`
	NewEntryPrice  decimal.Decimal `json:"new_entry_price"`
	PercentDrop    decimal.Decimal `json:"percent_drop"`

	entryPrice decimal.Decimal
	buyPrice   decimal.Decimal
}

// Normalize rounds every field to the places the calculator works with.
func (p Position) Normalize() Position {
	return Position{
		EntryPrice: p.EntryPrice.Round(PricePlaces),
		Quantity:   p.Quantity.Round(QuantityPlaces),
	}
}

// Normalize rounds every field to the places the calculator works with.
func (a AveragingAction) Normalize() AveragingAction {
	return AveragingAction{
		Profit:   a.Profit.Round(PricePlaces),
		BuyPrice: a.BuyPrice.Round(PricePlaces),
	}
}

// CalcNewEntry computes the new average entry after spending the action's profit at its buy price.
// Zero divisors yield zero results instead of errors.
func CalcNewEntry(pos Position, action AveragingAction) Outcome {
	pos = pos.Normalize()
	action = action.Normalize()

	bought := decimal.Zero
	if action.BuyPrice.GreaterThan(decimal.Zero) {
		bought = action.Profit.Div(action.BuyPrice)
	}

	newQty := pos.Quantity.Add(bought)

	newEntry := decimal.Zero
	if newQty.GreaterThan(decimal.Zero) {
		newEntry = pos.EntryPrice.Mul(pos.Quantity).Div(newQty)
	}

	drop := decimal.Zero
	if pos.EntryPrice.GreaterThan(decimal.Zero) {
		drop = decimal.NewFromInt(1).Sub(newEntry.Div(pos.EntryPrice)).Mul(decimal.NewFromInt(percentageMultiplier))
	}

	return Outcome{
		BoughtQuantity: bought,
		NewQuantity:    newQty,
		NewEntryPrice:  newEntry,
		PercentDrop:    drop,
		entryPrice:     pos.EntryPrice,
		buyPrice:       action.BuyPrice,
	}
}

// Effective reports whether the buy lowers the entry noticeably, i.e. something was
// bought below the old entry price.
func (o Outcome) Effective() bool {
	return o.BoughtQuantity.GreaterThan(decimal.Zero) && o.buyPrice.LessThan(o.entryPrice)
}
