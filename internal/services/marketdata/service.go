package marketdata

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/lowerentry/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultPollPriceInterval spot price refresh period.
const DefaultPollPriceInterval = 30 * time.Second

type rateSource interface {
	Latest(ctx context.Context) (domain.RateTable, error)
}

type pricer interface {
	GetPrice(ctx context.Context, pair domain.Pair) (decimal.Decimal, error)
}

// Service owns the FX and spot price slots and the tasks refreshing them.
// The FX task runs once, the spot task runs at start and then every poll interval.
type Service struct {
	rates  *Slot[domain.RateTable]
	prices *Slot[domain.SpotPrices]

	fxTask   *Task[domain.RateTable]
	spotTask *Task[domain.SpotPrices]
}

// Config parameters of the service.
type Config struct {
	// Quote currency symbol the pricer quotes coins in, e.g. USD or USDT.
	Quote             string
	PollPriceInterval time.Duration
	// OnUpdate called from a fetch goroutine after either slot changes.
	OnUpdate func()
}

// NewService wires the tasks. Nothing runs until Start.
func NewService(l *zap.Logger, fx rateSource, p pricer, conf Config) *Service {
	if conf.PollPriceInterval <= 0 {
		conf.PollPriceInterval = DefaultPollPriceInterval
	}

	s := &Service{
		rates:  NewSlot("fx_rates", domain.DefaultRates()),
		prices: NewSlot("spot_prices", domain.DefaultSpotPrices()),
	}

	s.fxTask = NewTask(s.rates, fx.Latest, 0, l, WithOnUpdate[domain.RateTable](conf.OnUpdate))
	s.spotTask = NewTask(s.prices, SpotFetcher(p, conf.Quote, domain.Coins), conf.PollPriceInterval, l,
		WithOnUpdate[domain.SpotPrices](conf.OnUpdate))

	return s
}

// Start launches both tasks without waiting for their first results.
func (s *Service) Start(ctx context.Context) {
	// the FX fetch is one-shot and is not tied to the view lifetime
	s.fxTask.Start(context.WithoutCancel(ctx))
	s.spotTask.Start(ctx)
}

// Stop cancels the periodic spot price refresh.
func (s *Service) Stop() {
	s.spotTask.Stop()
}

// Rates returns the last successfully fetched rate table.
func (s *Service) Rates() domain.RateTable {
	return s.rates.Load()
}

// Prices returns the last successfully fetched spot prices.
func (s *Service) Prices() domain.SpotPrices {
	return s.prices.Load()
}

// PricesUpdated returns when spot prices were last replaced.
func (s *Service) PricesUpdated() time.Time {
	return s.prices.Updated()
}

// SpotFetcher fetches every coin in parallel and succeeds only if all of them do,
// so the slot is always replaced with a complete set.
func SpotFetcher(p pricer, quote string, coins []domain.Coin) Fetcher[domain.SpotPrices] {
	return func(ctx context.Context) (domain.SpotPrices, error) {
		results := make([]decimal.Decimal, len(coins))

		g, gctx := errgroup.WithContext(ctx)
		for i, coin := range coins {
			g.Go(func() error {
				price, err := p.GetPrice(gctx, domain.NewPair(coin, quote))
				if err != nil {
					return errors.Wrapf(err, "get %s price", coin)
				}
				results[i] = price
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		prices := make(domain.SpotPrices, len(coins))
		for i, coin := range coins {
			prices[coin] = results[i]
		}
		return prices, nil
	}
}
