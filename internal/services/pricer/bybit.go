package pricer

import (
	"context"
	"fmt"

	"github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/lowerentry/internal/domain"
)

// BybitPricer reads spot tickers from the Bybit V5 market API.
type BybitPricer struct {
	client *bybit.Client
}

func NewBybitPricer(client *bybit.Client) *BybitPricer {
	return &BybitPricer{client: client}
}

func (p *BybitPricer) GetPrice(ctx context.Context, pair domain.Pair) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	symbol := bybit.SymbolV5(pair.Symbol())

	result, err := p.client.V5().Market().GetTickers(bybit.V5GetTickersParam{
		Category: "spot",
		Symbol:   &symbol,
	})
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "fetch bybit ticker %s", pair.String())
	}

	if result.Result.Spot == nil || len(result.Result.Spot.List) == 0 {
		return decimal.Zero, errors.Wrap(ErrMalformedTicker, fmt.Sprintf("bybit API returned empty prices for %s", pair.String()))
	}

	return decimal.NewFromString(result.Result.Spot.List[0].LastPrice)
}
