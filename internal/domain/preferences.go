// Package domain defines core data structures used throughout the calculator.
package domain

import (
	"strings"

	"github.com/pkg/errors"
)

// Currency display currency code.
type Currency string

const (
	// USD reference currency, every canonical value is stored in it.
	USD Currency = "USD"
	// RUB russian ruble.
	RUB Currency = "RUB"
	// AUD australian dollar.
	AUD Currency = "AUD"
)

// ReferenceCurrency the currency canonical state is kept in.
const ReferenceCurrency = USD

// Currencies lists supported display currencies in selector order.
var Currencies = []Currency{USD, RUB, AUD}

// String returns the string representation.
func (c Currency) String() string {
	return string(c)
}

// IsValid checks if the Currency value is supported.
func (c Currency) IsValid() bool {
	return c == USD || c == RUB || c == AUD
}

// Next returns the currency following c in selector order.
func (c Currency) Next() Currency {
	for i, cur := range Currencies {
		if cur == c {
			return Currencies[(i+1)%len(Currencies)]
		}
	}
	return USD
}

// ParseCurrency parses a currency code, case-insensitive.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", errors.Errorf("unsupported currency %q", s)
	}
	return c, nil
}

// Coin asset symbol.
type Coin string

const (
	// BTC bitcoin.
	BTC Coin = "BTC"
	// ETH ether.
	ETH Coin = "ETH"
)

// Coins lists supported coins.
var Coins = []Coin{BTC, ETH}

// String returns the string representation.
func (c Coin) String() string {
	return string(c)
}

// IsValid checks if the Coin value is supported.
func (c Coin) IsValid() bool {
	return c == BTC || c == ETH
}

// Toggle switches between BTC and ETH.
func (c Coin) Toggle() Coin {
	if c == BTC {
		return ETH
	}
	return BTC
}

// ParseCoin parses a coin symbol, case-insensitive.
func ParseCoin(s string) (Coin, error) {
	c := Coin(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", errors.Errorf("unsupported coin %q", s)
	}
	return c, nil
}

// Language interface language.
type Language string

const (
	// LanguageRU russian.
	LanguageRU Language = "ru"
	// LanguageEN english.
	LanguageEN Language = "en"
)

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the Language value is supported.
func (l Language) IsValid() bool {
	return l == LanguageRU || l == LanguageEN
}

// Toggle switches between ru and en.
func (l Language) Toggle() Language {
	if l == LanguageRU {
		return LanguageEN
	}
	return LanguageRU
}

// ParseLanguage parses a language code, case-insensitive.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", errors.Errorf("unsupported language %q", s)
	}
	return l, nil
}

// Theme color theme.
type Theme string

const (
	// ThemeLight light theme.
	ThemeLight Theme = "light"
	// ThemeDark dark theme.
	ThemeDark Theme = "dark"
)

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// IsValid checks if the Theme value is supported.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Toggle switches between light and dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme parses a theme name, case-insensitive.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", errors.Errorf("unsupported theme %q", s)
	}
	return t, nil
}
