package internal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/lowerentry/config"
	"github.com/vadiminshakov/lowerentry/internal/clients"
	"github.com/vadiminshakov/lowerentry/internal/domain"
	"github.com/vadiminshakov/lowerentry/internal/services/pricer"
)

// Pricer spot price source.
type Pricer interface {
	GetPrice(ctx context.Context, pair domain.Pair) (decimal.Decimal, error)
}

// priceSource a pricer together with the quote currency it prices coins in.
type priceSource struct {
	pricer Pricer
	quote  string
	// name host shown to the user as the price origin.
	name string
}

func createPriceSource(conf config.Config) (priceSource, error) {
	switch conf.PriceSource {
	case config.PriceSourceBitfinex:
		return priceSource{
			pricer: pricer.NewBitfinexPricer(clients.NewHTTPClient(), conf.TickerURL),
			quote:  "USD",
			name:   "bitfinex.com",
		}, nil
	case config.PriceSourceBinance:
		return priceSource{
			pricer: pricer.NewBinancePricer(clients.NewBinanceClient()),
			quote:  "USDT",
			name:   "binance.com",
		}, nil
	case config.PriceSourceBybit:
		return priceSource{
			pricer: pricer.NewBybitPricer(clients.NewBybitClient()),
			quote:  "USDT",
			name:   "bybit.com",
		}, nil
	default:
		return priceSource{}, fmt.Errorf("unsupported price source: %s", conf.PriceSource)
	}
}
