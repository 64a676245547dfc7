// Package fxrates fetches USD based exchange rates from the open.er-api.com API.
package fxrates

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/lowerentry/internal/domain"
)

// DefaultURL latest rates against USD.
const DefaultURL = "https://open.er-api.com/v6/latest/USD"

// ErrMissingRates returned when the response lacks one of the consumed currencies.
var ErrMissingRates = errors.New("missing exchange rates")

// consumed currencies read from the response, the reference currency is implied.
var consumed = []domain.Currency{domain.RUB, domain.AUD}

type latestResponse struct {
	Result string                     `json:"result"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}

// Client reads the rate table.
type Client struct {
	client *http.Client
	url    string
}

// NewClient creates a client for url, DefaultURL when empty.
func NewClient(client *http.Client, url string) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if url == "" {
		url = DefaultURL
	}
	return &Client{client: client, url: url}
}

// Latest fetches the current table. The reference currency is always 1 and every
// consumed currency must be present with a positive rate.
func (c *Client) Latest(ctx context.Context) (domain.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build fx request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch fx rates")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fx API error: %d", resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode fx rates")
	}

	table := domain.RateTable{domain.ReferenceCurrency: decimal.NewFromInt(1)}
	for _, cur := range consumed {
		rate, ok := body.Rates[cur.String()]
		if !ok || !rate.IsPositive() {
			return nil, errors.Wrapf(ErrMissingRates, "%s", cur)
		}
		table[cur] = rate
	}

	return table, nil
}
