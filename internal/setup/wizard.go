// Package setup is the interactive wizard that writes a calculator config file.
package setup

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/lowerentry/config"
	"github.com/vadiminshakov/lowerentry/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultFile file the wizard writes to when no path is given.
const DefaultFile = "config.gen.yaml"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1)
)

type answers struct {
	language    string
	currency    string
	coin        string
	theme       string
	source      string
	entryPrice  string
	quantity    string
	profit      string
	buyPrice    string
	strictInput bool
}

func defaultAnswers() answers {
	def := config.Default()
	return answers{
		language:   def.Language.String(),
		currency:   def.Currency.String(),
		coin:       def.Coin.String(),
		theme:      def.Theme.String(),
		source:     def.PriceSource,
		entryPrice: def.EntryPrice.String(),
		quantity:   def.Quantity.String(),
		profit:     def.Profit.String(),
		buyPrice:   def.BuyPrice.String(),
	}
}

func (a answers) configTmp() config.ConfigTmp {
	return config.ConfigTmp{
		Language:    a.language,
		Currency:    a.currency,
		Coin:        a.coin,
		Theme:       a.theme,
		PriceSource: a.source,
		EntryPrice:  normalize(a.entryPrice),
		Quantity:    normalize(a.quantity),
		Profit:      normalize(a.profit),
		BuyPrice:    normalize(a.buyPrice),
		StrictInput: a.strictInput,
	}
}

// RunTUI asks for preferences and starting inputs and saves them to path.
func RunTUI(path string) error {
	if path == "" {
		path = DefaultFile
	}
	a := defaultAnswers()
	confirm := true

	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("LOWER ENTRY CONFIG WIZARD"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Pick defaults the calculator starts with.\n"))

	fmt.Println(stepStyle.Render("STEP 1: PREFERENCES"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Language").
				Options(huh.NewOption("Русский", "ru"), huh.NewOption("English", "en")).
				Value(&a.language),
			huh.NewSelect[string]().
				Title("Display currency").
				Options(huh.NewOption("USD", "USD"), huh.NewOption("RUB", "RUB"), huh.NewOption("AUD", "AUD")).
				Value(&a.currency),
			huh.NewSelect[string]().
				Title("Coin").
				Options(huh.NewOption("Bitcoin", "BTC"), huh.NewOption("Ethereum", "ETH")).
				Value(&a.coin),
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOption("Light", "light"), huh.NewOption("Dark", "dark")).
				Value(&a.theme),
			huh.NewSelect[string]().
				Title("Spot price source").
				Options(
					huh.NewOption("Bitfinex", config.PriceSourceBitfinex),
					huh.NewOption("Binance", config.PriceSourceBinance),
					huh.NewOption("Bybit", config.PriceSourceBybit),
				).
				Value(&a.source),
		),
	).Run()
	if err != nil {
		return err
	}

	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("LOWER ENTRY CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("STEP 2: POSITION (USD)"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Entry price").Value(&a.entryPrice).Validate(validateAmount),
			huh.NewInput().Title("Quantity").Value(&a.quantity).Validate(validateAmount),
			huh.NewInput().Title("Profit").Value(&a.profit).Validate(validateAmount),
			huh.NewInput().Title("Buy price").Value(&a.buyPrice).Validate(validateAmount),
			huh.NewConfirm().
				Title("Reject malformed numbers while editing?").
				Value(&a.strictInput),
		),
	).Run()
	if err != nil {
		return err
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Save configuration to %s?", path)).
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("setup cancelled by user")
	}

	if err := Write(path, a.configTmp()); err != nil {
		return err
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render(fmt.Sprintf("\n✓ Configuration saved to %s\nRun: lowerentry --config %s", path, path)))
	return nil
}

// Write saves c as YAML.
func Write(path string, c config.ConfigTmp) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to generate yaml")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to save config file")
	}
	return nil
}

func validateAmount(s string) error {
	d, err := domain.ParseAmountStrict(s)
	if err != nil {
		return fmt.Errorf("must be a valid number")
	}
	if d.IsNegative() {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func normalize(s string) string {
	d, err := domain.ParseAmountStrict(s)
	if err != nil {
		return ""
	}
	return d.String()
}
