// Package domain defines core data structures used throughout the calculator.
package domain

import "fmt"

// Pair coin quoted against a currency on an exchange.
type Pair struct {
	// From base coin symbol.
	From string
	// To quote currency symbol.
	To string
}

// NewPair returns the pair of coin against quote.
func NewPair(coin Coin, quote string) Pair {
	return Pair{From: coin.String(), To: quote}
}

// String returns the string representation.
func (p Pair) String() string {
	return fmt.Sprintf("%s_%s", p.From, p.To)
}

// Symbol returns the concatenated symbol representation.
func (p Pair) Symbol() string {
	return fmt.Sprintf("%s%s", p.From, p.To)
}
