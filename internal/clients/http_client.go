// Package clients builds the network clients used by the fetchers.
package clients

import "net/http"

// NewHTTPClient returns the client used for plain JSON endpoints.
// No timeout is set: a hung request simply never delivers.
func NewHTTPClient() *http.Client {
	return &http.Client{}
}
