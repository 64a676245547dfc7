package clients

import (
	"github.com/hirokisan/bybit/v2"
)

// NewBybitClient returns a client for Bybit public market endpoints.
func NewBybitClient() *bybit.Client {
	client := bybit.NewClient()

	return client
}
