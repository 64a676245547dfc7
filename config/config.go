// Package config loads calculator settings from a YAML file and command line flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/lowerentry/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	// PriceSourceBitfinex Bitfinex public v2 tickers.
	PriceSourceBitfinex = "bitfinex"
	// PriceSourceBinance Binance public price list.
	PriceSourceBinance = "binance"
	// PriceSourceBybit Bybit public V5 tickers.
	PriceSourceBybit = "bybit"

	defaultPollPriceInterval = 30 * time.Second
	defaultLogFile           = "lowerentry.log"
)

// Config calculator settings.
type Config struct {
	Language domain.Language
	Currency domain.Currency
	Coin     domain.Coin
	Theme    domain.Theme

	EntryPrice decimal.Decimal
	Quantity   decimal.Decimal
	Profit     decimal.Decimal
	BuyPrice   decimal.Decimal

	PriceSource       string
	FXURL             string
	TickerURL         string
	PollPriceInterval time.Duration

	ExportDir   string
	LogFile     string
	Debug       bool
	StrictInput bool
}

// ConfigTmp YAML representation, decimals are kept as strings.
type ConfigTmp struct {
	Language          string        `yaml:"language,omitempty"`
	Currency          string        `yaml:"currency,omitempty"`
	Coin              string        `yaml:"coin,omitempty"`
	Theme             string        `yaml:"theme,omitempty"`
	EntryPrice        string        `yaml:"entry_price,omitempty"`
	Quantity          string        `yaml:"quantity,omitempty"`
	Profit            string        `yaml:"profit,omitempty"`
	BuyPrice          string        `yaml:"buy_price,omitempty"`
	PriceSource       string        `yaml:"price_source,omitempty"`
	FXURL             string        `yaml:"fx_url,omitempty"`
	TickerURL         string        `yaml:"ticker_url,omitempty"`
	PollPriceInterval time.Duration `yaml:"poll_price_interval,omitempty"`
	ExportDir         string        `yaml:"export_dir,omitempty"`
	LogFile           string        `yaml:"log_file,omitempty"`
	Debug             bool          `yaml:"debug,omitempty"`
	StrictInput       bool          `yaml:"strict_input,omitempty"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Language:          domain.LanguageRU,
		Currency:          domain.USD,
		Coin:              domain.BTC,
		Theme:             domain.ThemeLight,
		EntryPrice:        decimal.NewFromInt(110000),
		Quantity:          decimal.RequireFromString("0.24"),
		Profit:            decimal.NewFromInt(357),
		BuyPrice:          decimal.NewFromInt(107000),
		PriceSource:       PriceSourceBitfinex,
		PollPriceInterval: defaultPollPriceInterval,
		ExportDir:         ".",
		LogFile:           defaultLogFile,
	}
}

// Get reads settings from the process command line.
func Get() (Config, error) {
	return Parse(os.Args[1:])
}

// Parse reads settings from args. Values from --config are applied first, flags
// given explicitly override them.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("lowerentry", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to yaml config")
	lang := fs.String("lang", "", "interface language: ru or en")
	currency := fs.String("currency", "", "display currency: USD, RUB or AUD")
	coin := fs.String("coin", "", "coin: BTC or ETH")
	theme := fs.String("theme", "", "theme: light or dark")
	source := fs.String("source", "", "spot price source: bitfinex, binance or bybit")
	pi := fs.Duration("pollpriceinterval", 0, "poll market price interval, example: 30s")
	exportDir := fs.String("exportdir", "", "directory memo images are saved to")
	logFile := fs.String("logfile", "", "log file path")
	debug := fs.Bool("debug", false, "debug logging")
	strict := fs.Bool("strict", false, "reject malformed numbers instead of reading them as zero")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	tmp := ConfigTmp{}
	if *configPath != "" {
		var err error
		tmp, err = readYaml(*configPath)
		if err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lang":
			tmp.Language = *lang
		case "currency":
			tmp.Currency = *currency
		case "coin":
			tmp.Coin = *coin
		case "theme":
			tmp.Theme = *theme
		case "source":
			tmp.PriceSource = *source
		case "pollpriceinterval":
			tmp.PollPriceInterval = *pi
		case "exportdir":
			tmp.ExportDir = *exportDir
		case "logfile":
			tmp.LogFile = *logFile
		case "debug":
			tmp.Debug = *debug
		case "strict":
			tmp.StrictInput = *strict
		}
	})

	return fromTmp(tmp)
}

func readYaml(path string) (ConfigTmp, error) {
	var tmp ConfigTmp

	f, err := os.ReadFile(path)
	if err != nil {
		return ConfigTmp{}, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return ConfigTmp{}, errors.Wrapf(err, "parse config %s", path)
	}
	return tmp, nil
}

func fromTmp(c ConfigTmp) (Config, error) {
	conf := Default()
	var err error

	if c.Language != "" {
		if conf.Language, err = domain.ParseLanguage(c.Language); err != nil {
			return Config{}, fmt.Errorf("incorrect 'language' param in config: %w", err)
		}
	}
	if c.Currency != "" {
		if conf.Currency, err = domain.ParseCurrency(c.Currency); err != nil {
			return Config{}, fmt.Errorf("incorrect 'currency' param in config: %w", err)
		}
	}
	if c.Coin != "" {
		if conf.Coin, err = domain.ParseCoin(c.Coin); err != nil {
			return Config{}, fmt.Errorf("incorrect 'coin' param in config: %w", err)
		}
	}
	if c.Theme != "" {
		if conf.Theme, err = domain.ParseTheme(c.Theme); err != nil {
			return Config{}, fmt.Errorf("incorrect 'theme' param in config: %w", err)
		}
	}

	amounts := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"entry_price", c.EntryPrice, &conf.EntryPrice},
		{"quantity", c.Quantity, &conf.Quantity},
		{"profit", c.Profit, &conf.Profit},
		{"buy_price", c.BuyPrice, &conf.BuyPrice},
	}
	for _, a := range amounts {
		if a.raw == "" {
			continue
		}
		v, err := domain.ParseAmountStrict(a.raw)
		if err != nil {
			return Config{}, fmt.Errorf("incorrect '%s' param in config (must be a decimal), error: %w", a.name, err)
		}
		if v.IsNegative() {
			return Config{}, fmt.Errorf("incorrect '%s' param in config: must not be negative, got %s", a.name, v.String())
		}
		*a.dst = v
	}

	if c.PriceSource != "" {
		switch c.PriceSource {
		case PriceSourceBitfinex, PriceSourceBinance, PriceSourceBybit:
			conf.PriceSource = c.PriceSource
		default:
			return Config{}, fmt.Errorf("incorrect 'price_source' param in config: %q", c.PriceSource)
		}
	}

	if c.PollPriceInterval < 0 {
		return Config{}, fmt.Errorf("incorrect 'poll_price_interval' param in config: %s", c.PollPriceInterval)
	}
	if c.PollPriceInterval > 0 {
		conf.PollPriceInterval = c.PollPriceInterval
	}

	conf.FXURL = c.FXURL
	conf.TickerURL = c.TickerURL
	if c.ExportDir != "" {
		conf.ExportDir = c.ExportDir
	}
	if c.LogFile != "" {
		conf.LogFile = c.LogFile
	}
	conf.Debug = c.Debug
	conf.StrictInput = c.StrictInput

	return conf, nil
}
