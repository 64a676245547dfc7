package pricer

import (
	"context"
	"fmt"

	"github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/lowerentry/internal/domain"
)

// BinancePricer fetches real market prices from Binance public API
// without requiring authentication.
type BinancePricer struct {
	client *binance.Client
}

// NewBinancePricer creates a pricer over an unauthenticated Binance client.
func NewBinancePricer(client *binance.Client) *BinancePricer {
	return &BinancePricer{client: client}
}

// GetPrice fetches the current market price from Binance public API.
func (p *BinancePricer) GetPrice(ctx context.Context, pair domain.Pair) (decimal.Decimal, error) {
	prices, err := p.client.NewListPricesService().Symbol(pair.Symbol()).Do(ctx)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "fetch binance price %s", pair.String())
	}
	if len(prices) == 0 {
		return decimal.Zero, errors.Wrap(ErrMalformedTicker, fmt.Sprintf("binance API returned empty prices for %s", pair.String()))
	}

	return decimal.NewFromString(prices[0].Price)
}
