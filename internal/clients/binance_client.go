package clients

import (
	"github.com/adshao/go-binance/v2"
)

// NewBinanceClient returns a client for Binance public market endpoints.
func NewBinanceClient() *binance.Client {
	client := binance.NewClient("", "")
	return client
}
