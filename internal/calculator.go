package internal

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/lowerentry/config"
	"github.com/vadiminshakov/lowerentry/internal/clients"
	"github.com/vadiminshakov/lowerentry/internal/domain"
	"github.com/vadiminshakov/lowerentry/internal/services/fxrates"
	"github.com/vadiminshakov/lowerentry/internal/services/marketdata"
	"github.com/vadiminshakov/lowerentry/internal/services/memo"
	"github.com/vadiminshakov/lowerentry/internal/state"
	"github.com/vadiminshakov/lowerentry/internal/ui"
	"go.uber.org/zap"
)

// Calculator wires market data, export and the terminal view.
type Calculator struct {
	Config   config.Config
	Market   *marketdata.Service
	Exporter *memo.Exporter

	source  priceSource
	logger  *zap.Logger
	program atomic.Pointer[tea.Program]
}

// NewCalculator creates a calculator instance. Nothing is fetched until Run.
func NewCalculator(conf config.Config, logger *zap.Logger) (*Calculator, error) {
	source, err := createPriceSource(conf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pricer")
	}
	return newCalculator(conf, logger, source)
}

func newCalculator(conf config.Config, logger *zap.Logger, source priceSource) (*Calculator, error) {
	exporter, err := memo.NewExporter(conf.ExportDir, logger.Named("memo"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create memo exporter")
	}

	c := &Calculator{
		Config:   conf,
		Exporter: exporter,
		source:   source,
		logger:   logger,
	}

	fx := fxrates.NewClient(clients.NewHTTPClient(), conf.FXURL)
	c.Market = marketdata.NewService(logger.Named("marketdata"), fx, source.pricer, marketdata.Config{
		Quote:             source.quote,
		PollPriceInterval: conf.PollPriceInterval,
		OnUpdate:          c.notify,
	})

	return c, nil
}

// InitialState returns the state the view starts with.
func (c *Calculator) InitialState() state.State {
	conf := c.Config
	return state.State{
		Language: conf.Language,
		Currency: conf.Currency,
		Coin:     conf.Coin,
		Theme:    conf.Theme,
		Position: domain.Position{EntryPrice: conf.EntryPrice, Quantity: conf.Quantity},
		Action:   domain.AveragingAction{Profit: conf.Profit, BuyPrice: conf.BuyPrice},
	}
}

// Run starts market data and blocks until the view exits or ctx is done.
func (c *Calculator) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	model := ui.New(c.logger.Named("ui"), c.InitialState(), c.Market, c.Exporter, ui.Options{
		Source:      c.source.name,
		StrictInput: c.Config.StrictInput,
	})

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, opts...)
	c.program.Store(p)

	c.logger.Info("starting calculator",
		zap.String("price_source", c.Config.PriceSource),
		zap.Duration("poll_interval", c.Config.PollPriceInterval))

	c.Market.Start(ctx)
	_, err := p.Run()

	// the loop has exited: drop notifications, then wait for in-flight fetches
	c.program.Store(nil)
	c.Market.Stop()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "terminal view failed")
	}
	return nil
}

func (c *Calculator) notify() {
	if p := c.program.Load(); p != nil {
		p.Send(ui.MarketUpdateMsg{})
	}
}
