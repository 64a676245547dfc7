package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"110000", "110000"},
		{"0,24", "0.24"},
		{" 357.5 ", "357.5"},
		{"12abc", "12"},
		{"1,5,6", "1.5"},
		{".5", "0.5"},
		{"7.", "7"},
		{"1e3", "1000"},
		{"-4", "-4"},
		{"", "0"},
		{"abc", "0"},
		{",", "0"},
		{"$100", "0"},
		{"1e99999999", "0"},
		{"-1e99999999", "0"},
		{"1e-99999999", "0"},
		{"2e308", "0"},
		{"1.5e300", "1.5e300"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := ParseAmount(tc.in)
			assert.True(t, got.Equal(d(tc.want)), "ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		})
	}
}

func TestParseAmountStrict(t *testing.T) {
	v, err := ParseAmountStrict("0,24")
	require.NoError(t, err)
	assert.True(t, v.Equal(d("0.24")))

	v, err = ParseAmountStrict("")
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	for _, bad := range []string{"12abc", "abc", "1,5,6", "$1", "1e99999999", "-2e308"} {
		_, err := ParseAmountStrict(bad)
		require.ErrorIs(t, err, ErrMalformedAmount, bad)
	}
}

func TestParseAmount_HugeExponentStaysCheap(t *testing.T) {
	entry := ParseAmount("1e99999999")
	require.True(t, entry.IsZero())

	done := make(chan Outcome, 1)
	go func() {
		done <- CalcNewEntry(
			Position{EntryPrice: entry, Quantity: d("0.24")},
			AveragingAction{Profit: ParseAmount("1e-99999999"), BuyPrice: d("107000")},
		)
	}()

	select {
	case out := <-done:
		assert.True(t, out.NewEntryPrice.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("CalcNewEntry did not return for an out of range input")
	}
}
