package pricer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/lowerentry/internal/domain"
)

const (
	// DefaultBitfinexURL public ticker endpoint, the ticker symbol is appended.
	DefaultBitfinexURL = "https://api-pub.bitfinex.com/v2/ticker/"

	// bitfinexLastPriceIndex position of LAST_PRICE in a trading pair ticker.
	bitfinexLastPriceIndex = 6
)

// BitfinexPricer reads tickers from the Bitfinex public v2 API.
type BitfinexPricer struct {
	client  *http.Client
	baseURL string
}

// NewBitfinexPricer creates a pricer against baseURL, DefaultBitfinexURL when empty.
func NewBitfinexPricer(client *http.Client, baseURL string) *BitfinexPricer {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBitfinexURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &BitfinexPricer{client: client, baseURL: baseURL}
}

// GetPrice fetches the ticker t<FROM><TO> and returns its last price.
func (p *BitfinexPricer) GetPrice(ctx context.Context, pair domain.Pair) (decimal.Decimal, error) {
	url := fmt.Sprintf("%st%s", p.baseURL, pair.Symbol())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "build bitfinex request")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "fetch bitfinex ticker %s", pair.String())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, errors.Errorf("bitfinex API error for %s: %d", pair.String(), resp.StatusCode)
	}

	var fields []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&fields); err != nil {
		return decimal.Zero, errors.Wrapf(err, "decode bitfinex ticker %s", pair.String())
	}

	if len(fields) <= bitfinexLastPriceIndex {
		return decimal.Zero, errors.Wrapf(ErrMalformedTicker, "bitfinex ticker %s has %d fields", pair.String(), len(fields))
	}

	var last decimal.Decimal
	if err := last.UnmarshalJSON(fields[bitfinexLastPriceIndex]); err != nil {
		return decimal.Zero, errors.Wrapf(ErrMalformedTicker, "bitfinex ticker %s last price: %v", pair.String(), err)
	}

	return last, nil
}
