//go:build integration

package pricer

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/lowerentry/internal/clients"
	"github.com/vadiminshakov/lowerentry/internal/domain"
)

// TestPricers_GetPrice_Integration calls the real public APIs.
// To run this test, use: go test -tags=integration -v ./...
func TestPricers_GetPrice_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cases := []struct {
		name   string
		pricer Pricer
		quote  string
	}{
		{"bitfinex", NewBitfinexPricer(clients.NewHTTPClient(), ""), "USD"},
		{"binance", NewBinancePricer(clients.NewBinanceClient()), "USDT"},
		{"bybit", NewBybitPricer(clients.NewBybitClient()), "USDT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, coin := range domain.Coins {
				pair := domain.NewPair(coin, tc.quote)
				price, err := tc.pricer.GetPrice(context.Background(), pair)
				require.NoError(t, err)
				require.True(t, price.GreaterThan(decimal.Zero), "Expected price > 0 for %s, got %s", pair.String(), price.String())
				t.Logf("Current %s price: %s", pair.String(), price.String())
			}
		})
	}
}
