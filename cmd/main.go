// Command lowerentry runs the terminal calculator that shows how spending DCA
// profit at a lower price moves the average entry of a position.
//
// Usage:
//
//	lowerentry --config config.yaml
//	lowerentry --lang en --currency AUD --source binance
//	lowerentry setup [config.gen.yaml]
//
// Logs go to the file set by --logfile because the terminal belongs to the view.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vadiminshakov/lowerentry/config"
	"github.com/vadiminshakov/lowerentry/internal"
	"github.com/vadiminshakov/lowerentry/internal/setup"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "setup" {
		path := ""
		if len(os.Args) > 2 {
			path = os.Args[2]
		}
		if err := setup.RunTUI(path); err != nil {
			log.Fatal(err)
		}
		return
	}

	conf, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(conf)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	calc, err := internal.NewCalculator(conf, logger)
	if err != nil {
		logger.Fatal("failed to create calculator", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := calc.Run(ctx, tea.WithAltScreen()); err != nil {
		logger.Fatal("calculator stopped", zap.Error(err))
	}
}

func newLogger(conf config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{conf.LogFile}
	zc.ErrorOutputPaths = []string{conf.LogFile}
	if conf.Debug {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zc.Build()
}
