// Package formatter renders money, quantities and dates for display.
// Rules are table driven per locale, currency and coin.
package formatter

import (
	"strings"
	"time"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/lowerentry/internal/domain"
)

const nbsp = "\u00a0"

// separators grouping and decimal marks of a locale.
type separators struct {
	thousand string
	decimal  string
}

var localeSeparators = map[domain.Language]separators{
	domain.LanguageEN: {thousand: ",", decimal: "."},
	domain.LanguageRU: {thousand: nbsp, decimal: ","},
}

// symbolFormat currency symbol and its placement, %s is the symbol and %v the value.
type symbolFormat struct {
	symbol string
	format string
}

var currencySymbols = map[domain.Language]map[domain.Currency]symbolFormat{
	domain.LanguageEN: {
		domain.USD: {symbol: "$", format: "%s%v"},
		domain.AUD: {symbol: "A$", format: "%s%v"},
		domain.RUB: {symbol: "RUB", format: "%s" + nbsp + "%v"},
	},
	domain.LanguageRU: {
		domain.USD: {symbol: "$", format: "%v" + nbsp + "%s"},
		domain.AUD: {symbol: "AU$", format: "%v" + nbsp + "%s"},
		domain.RUB: {symbol: "₽", format: "%v" + nbsp + "%s"},
	},
}

var currencyFractionDigits = map[domain.Currency]int{
	domain.USD: 2,
	domain.AUD: 2,
	domain.RUB: 0,
}

var coinFractionDigits = map[domain.Coin]int{
	domain.BTC: 8,
	domain.ETH: 6,
}

// FractionDigits returns the fraction digits money in c is shown with.
func FractionDigits(c domain.Currency) int {
	if n, ok := currencyFractionDigits[c]; ok {
		return n
	}
	return 2
}

// QuantityDigits returns the maximum fraction digits a quantity of coin is shown with.
func QuantityDigits(coin domain.Coin) int {
	if n, ok := coinFractionDigits[coin]; ok {
		return n
	}
	return 6
}

func separatorsFor(lang domain.Language) separators {
	if s, ok := localeSeparators[lang]; ok {
		return s
	}
	return localeSeparators[domain.LanguageEN]
}

func symbolFor(lang domain.Language, c domain.Currency) symbolFormat {
	table, ok := currencySymbols[lang]
	if !ok {
		table = currencySymbols[domain.LanguageEN]
	}
	if s, ok := table[c]; ok {
		return s
	}
	return symbolFormat{symbol: c.String(), format: "%s" + nbsp + "%v"}
}

// FormatMoney renders v as an amount of c using lang's conventions.
func FormatMoney(v decimal.Decimal, c domain.Currency, lang domain.Language) string {
	sep := separatorsFor(lang)
	sym := symbolFor(lang, c)

	ac := accounting.Accounting{
		Symbol:    sym.symbol,
		Precision: FractionDigits(c),
		Thousand:  sep.thousand,
		Decimal:   sep.decimal,
		Format:    sym.format,
	}
	return ac.FormatMoneyDecimal(v)
}

// FormatQuantity renders a coin amount with up to the coin's fraction digits, trailing zeros trimmed.
func FormatQuantity(v decimal.Decimal, coin domain.Coin, lang domain.Language) string {
	sep := separatorsFor(lang)
	out := accounting.FormatNumberDecimal(v, QuantityDigits(coin), sep.thousand, sep.decimal)
	return trimFraction(out, sep.decimal)
}

// FormatPercent renders the entry drop with one decimal, "−1.4%".
// A negative drop means the entry went up and renders with a plus sign.
func FormatPercent(drop decimal.Decimal, lang domain.Language) string {
	sign := "−"
	if drop.IsNegative() {
		sign = "+"
	}
	text := drop.Abs().StringFixed(1)
	if lang == domain.LanguageRU {
		text = strings.Replace(text, ".", ",", 1)
	}
	return sign + text + "%"
}

// FormatDateTime renders t the way the locale prints a local timestamp.
func FormatDateTime(t time.Time, lang domain.Language) string {
	if lang == domain.LanguageRU {
		return t.Format("02.01.2006, 15:04:05")
	}
	return t.Format("1/2/2006, 3:04:05 PM")
}

// FormatTime renders the time of day of t the way the locale prints it.
func FormatTime(t time.Time, lang domain.Language) string {
	if lang == domain.LanguageRU {
		return t.Format("15:04:05")
	}
	return t.Format("3:04:05 PM")
}

// InputText renders a display value the way an editable field shows it:
// rounded to the currency's digits, no grouping, no trailing zeros.
func InputText(v decimal.Decimal, c domain.Currency) string {
	return v.Round(int32(FractionDigits(c))).String()
}

func trimFraction(s, decimalSep string) string {
	i := strings.LastIndex(s, decimalSep)
	if i < 0 {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, decimalSep)
}
