// Package state holds the calculator's presentation state. State values are
// immutable: every update returns a new State and the owner swaps it in.
package state

import (
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/lowerentry/internal/domain"
	"github.com/vadiminshakov/lowerentry/internal/services/formatter"
)

// Field editable input.
type Field int

const (
	// FieldEntryPrice current average entry P₀, money.
	FieldEntryPrice Field = iota
	// FieldQuantity held coins Q₀.
	FieldQuantity
	// FieldProfit profit S to redeploy, money.
	FieldProfit
	// FieldBuyPrice price Pᵦ the profit is spent at, money.
	FieldBuyPrice
)

// Fields lists inputs in form order.
var Fields = []Field{FieldEntryPrice, FieldQuantity, FieldProfit, FieldBuyPrice}

// IsMoney reports whether the field is a reference currency amount converted for display.
func (f Field) IsMoney() bool {
	return f != FieldQuantity
}

// State preferences plus the four canonical inputs, always in the reference currency.
type State struct {
	Language domain.Language
	Currency domain.Currency
	Coin     domain.Coin
	Theme    domain.Theme

	Position domain.Position
	Action   domain.AveragingAction
}

// Default returns the initial state.
func Default() State {
	return State{
		Language: domain.LanguageRU,
		Currency: domain.USD,
		Coin:     domain.BTC,
		Theme:    domain.ThemeLight,
		Position: domain.Position{
			EntryPrice: decimal.NewFromInt(110000),
			Quantity:   decimal.RequireFromString("0.24"),
		},
		Action: domain.AveragingAction{
			Profit:   decimal.NewFromInt(357),
			BuyPrice: decimal.NewFromInt(107000),
		},
	}
}

// WithLanguage returns s with lang selected.
func (s State) WithLanguage(lang domain.Language) State {
	s.Language = lang
	return s
}

// WithCurrency returns s with c as display currency. Canonical values are untouched.
func (s State) WithCurrency(c domain.Currency) State {
	s.Currency = c
	return s
}

// WithCoin returns s with coin selected.
func (s State) WithCoin(coin domain.Coin) State {
	s.Coin = coin
	return s
}

// WithTheme returns s with theme selected.
func (s State) WithTheme(theme domain.Theme) State {
	s.Theme = theme
	return s
}

// ToggleLanguage switches ru/en.
func (s State) ToggleLanguage() State {
	return s.WithLanguage(s.Language.Toggle())
}

// NextCurrency selects the next display currency.
func (s State) NextCurrency() State {
	return s.WithCurrency(s.Currency.Next())
}

// ToggleCoin switches BTC/ETH.
func (s State) ToggleCoin() State {
	return s.WithCoin(s.Coin.Toggle())
}

// ToggleTheme switches light/dark.
func (s State) ToggleTheme() State {
	return s.WithTheme(s.Theme.Toggle())
}

// Canonical returns the stored value of f.
func (s State) Canonical(f Field) decimal.Decimal {
	switch f {
	case FieldEntryPrice:
		return s.Position.EntryPrice
	case FieldQuantity:
		return s.Position.Quantity
	case FieldProfit:
		return s.Action.Profit
	case FieldBuyPrice:
		return s.Action.BuyPrice
	}
	return decimal.Zero
}

// Display returns f in the display currency.
func (s State) Display(f Field, rates domain.RateTable) decimal.Decimal {
	v := s.Canonical(f)
	if !f.IsMoney() {
		return v
	}
	return rates.ToDisplay(v, s.Currency)
}

// InputText returns the text an edit field for f starts with.
func (s State) InputText(f Field, rates domain.RateTable) string {
	if !f.IsMoney() {
		return s.Position.Quantity.String()
	}
	return formatter.InputText(s.Display(f, rates), s.Currency)
}

// Set parses text typed into f and stores it. Money fields are typed in the display
// currency and converted back with the inverse of the display conversion.
// Unparsable text stores zero.
func (s State) Set(f Field, text string, rates domain.RateTable) State {
	v := domain.ParseAmount(text)
	if f.IsMoney() {
		v = rates.FromDisplay(v, s.Currency)
	}
	return s.withCanonical(f, v)
}

func (s State) withCanonical(f Field, v decimal.Decimal) State {
	switch f {
	case FieldEntryPrice:
		s.Position.EntryPrice = v
	case FieldQuantity:
		s.Position.Quantity = v
	case FieldProfit:
		s.Action.Profit = v
	case FieldBuyPrice:
		s.Action.BuyPrice = v
	}
	return s
}

// Outcome computes the averaging result from the canonical inputs.
func (s State) Outcome() domain.Outcome {
	return domain.CalcNewEntry(s.Position, s.Action)
}
