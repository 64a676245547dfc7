// Package pricer fetches last traded spot prices from public exchange endpoints.
package pricer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/lowerentry/internal/domain"
)

// ErrMalformedTicker returned when a ticker response lacks a usable last price.
var ErrMalformedTicker = errors.New("malformed ticker response")

// Pricer returns the last traded price of a pair.
type Pricer interface {
	GetPrice(ctx context.Context, pair domain.Pair) (decimal.Decimal, error)
}
