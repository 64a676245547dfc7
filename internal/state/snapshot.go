package state

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/lowerentry/internal/domain"
	"github.com/vadiminshakov/lowerentry/internal/i18n"
	"github.com/vadiminshakov/lowerentry/internal/services/formatter"
)

// LivePrice spot price line of one coin.
type LivePrice struct {
	Coin  domain.Coin
	Price decimal.Decimal
	Text  string
}

// Snapshot everything a view renders, derived from a State and the market data
// at one moment. Snapshots are never written back into State.
type Snapshot struct {
	State   State
	Dict    i18n.Dict
	Palette Palette
	Rates   domain.RateTable
	Outcome domain.Outcome
	Taken   time.Time

	// Inputs edit field text per field, in the display currency.
	Inputs map[Field]string

	EntryPrice string
	Quantity   string
	Profit     string
	BuyPrice   string

	NewEntry    string
	BoughtQty   string
	NewQuantity string
	Drop        string

	LivePrices []LivePrice
	Date       string
}

// Snapshot derives display values of s. rates and prices are read as given.
func (s State) Snapshot(rates domain.RateTable, prices domain.SpotPrices, now time.Time) Snapshot {
	lang := s.Language
	money := func(usd decimal.Decimal) string {
		return formatter.FormatMoney(rates.ToDisplay(usd, s.Currency), s.Currency, lang)
	}
	qty := func(v decimal.Decimal) string {
		return formatter.FormatQuantity(v, s.Coin, lang)
	}

	out := s.Outcome()

	inputs := make(map[Field]string, len(Fields))
	for _, f := range Fields {
		inputs[f] = s.InputText(f, rates)
	}

	live := make([]LivePrice, 0, len(domain.Coins))
	for _, coin := range domain.Coins {
		p := prices.Price(coin)
		live = append(live, LivePrice{Coin: coin, Price: p, Text: money(p)})
	}

	return Snapshot{
		State:   s,
		Dict:    i18n.For(lang),
		Palette: PaletteFor(s.Theme),
		Rates:   rates,
		Outcome: out,
		Taken:   now,
		Inputs:  inputs,

		EntryPrice: money(s.Position.EntryPrice),
		Quantity:   qty(s.Position.Quantity),
		Profit:     money(s.Action.Profit),
		BuyPrice:   money(s.Action.BuyPrice),

		NewEntry:    money(out.NewEntryPrice),
		BoughtQty:   qty(out.BoughtQuantity),
		NewQuantity: qty(out.NewQuantity),
		Drop:        formatter.FormatPercent(out.PercentDrop, lang),

		LivePrices: live,
		Date:       formatter.FormatDateTime(now, lang),
	}
}
