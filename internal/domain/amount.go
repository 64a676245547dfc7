// Package domain defines core data structures used throughout the calculator.
package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrMalformedAmount returned by ParseAmountStrict for text that is not a number.
var ErrMalformedAmount = errors.New("malformed amount")

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

func normalizeAmountText(s string) string {
	return strings.Replace(strings.TrimSpace(s), ",", ".", 1)
}

// ParseAmount reads the longest leading number of s. The first comma is taken
// as a decimal separator. Text without a leading number parses as zero.
func ParseAmount(s string) decimal.Decimal {
	m := leadingNumber.FindString(normalizeAmountText(s))
	if m == "" {
		return decimal.Zero
	}
	d, ok := parseFinite(m)
	if !ok {
		return decimal.Zero
	}
	return d
}

// ParseAmountStrict parses s as a whole number and rejects trailing garbage.
// Empty text is zero.
func ParseAmountStrict(s string) (decimal.Decimal, error) {
	text := normalizeAmountText(s)
	if text == "" {
		return decimal.Zero, nil
	}
	if leadingNumber.FindString(text) != text {
		return decimal.Zero, errors.Wrapf(ErrMalformedAmount, "%q", s)
	}
	d, ok := parseFinite(text)
	if !ok {
		return decimal.Zero, errors.Wrapf(ErrMalformedAmount, "%q", s)
	}
	return d, nil
}

// parseFinite parses a matched number. Values outside the float64 range are
// rejected and values that underflow it are zero, so the exponent stays small
// enough for rounding to be cheap.
func parseFinite(text string) (decimal.Decimal, bool) {
	text = fixTrailingDot(text)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	if f == 0 {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// fixTrailingDot turns "12." into "12" and "12.e3" into "12e3".
func fixTrailingDot(s string) string {
	if i := strings.Index(s, "."); i >= 0 && (i == len(s)-1 || s[i+1] == 'e' || s[i+1] == 'E') {
		return s[:i] + s[i+1:]
	}
	return s
}
