package setup

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/lowerentry/config"
	"github.com/vadiminshakov/lowerentry/internal/domain"
)

func TestWrite_ReadableByConfig(t *testing.T) {
	a := defaultAnswers()
	a.language = "en"
	a.currency = "AUD"
	a.coin = "ETH"
	a.source = config.PriceSourceBybit
	a.entryPrice = "3200,5"
	a.strictInput = true

	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, Write(path, a.configTmp()))

	conf, err := config.Parse([]string{"--config", path})
	require.NoError(t, err)

	assert.Equal(t, domain.LanguageEN, conf.Language)
	assert.Equal(t, domain.AUD, conf.Currency)
	assert.Equal(t, domain.ETH, conf.Coin)
	assert.Equal(t, config.PriceSourceBybit, conf.PriceSource)
	assert.True(t, conf.EntryPrice.Equal(decimal.RequireFromString("3200.5")))
	assert.True(t, conf.Quantity.Equal(decimal.RequireFromString("0.24")))
	assert.True(t, conf.StrictInput)
}

func TestDefaultAnswers_MatchConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, Write(path, defaultAnswers().configTmp()))

	conf, err := config.Parse([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), conf)
}

func TestValidateAmount(t *testing.T) {
	require.NoError(t, validateAmount("110000"))
	require.NoError(t, validateAmount("0,24"))
	require.Error(t, validateAmount("abc"))
	require.Error(t, validateAmount("-1"))
}
