// Package ui is the terminal view of the calculator.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/vadiminshakov/lowerentry/internal/domain"
	"github.com/vadiminshakov/lowerentry/internal/i18n"
	"github.com/vadiminshakov/lowerentry/internal/state"
	"go.uber.org/zap"
)

type market interface {
	Rates() domain.RateTable
	Prices() domain.SpotPrices
	PricesUpdated() time.Time
}

type exporter interface {
	Export(snap *state.Snapshot, now time.Time) (string, error)
}

// MarketUpdateMsg tells the model FX rates or spot prices were replaced.
type MarketUpdateMsg struct{}

type exportedMsg struct {
	path string
	err  error
}

// Options view settings.
type Options struct {
	// Source price source name shown next to the disclaimer.
	Source string
	// StrictInput makes the edit form reject malformed numbers.
	StrictInput bool
	Now         func() time.Time
}

// Model bubbletea model owning the calculator state.
type Model struct {
	st       state.State
	market   market
	exporter exporter
	l        *zap.Logger

	source string
	strict bool
	now    func() time.Time

	form *huh.Form
	edit *edit

	status    string
	statusErr bool
	width     int
	quitting  bool
}

// edit values bound to an open form.
type edit struct {
	rates   domain.RateTable
	initial map[state.Field]string
	values  map[state.Field]*string
}

// New creates the model. market is read on every render and is never stopped
// from inside the update loop.
func New(l *zap.Logger, st state.State, m market, e exporter, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return Model{
		st:       st,
		market:   m,
		exporter: e,
		l:        l,
		source:   opts.Source,
		strict:   opts.StrictInput,
		now:      opts.Now,
	}
}

// State returns the current calculator state.
func (m Model) State() state.State {
	return m.st
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case MarketUpdateMsg:
		return m, nil
	case exportedMsg:
		return m.exported(msg), nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "ctrl+c":
		// the program owner stops market data once the loop has exited
		m.quitting = true
		return m, tea.Quit
	case "e":
		return m.openForm()
	case "c":
		m.st = m.st.NextCurrency()
	case "l":
		m.st = m.st.ToggleLanguage()
	case "t":
		m.st = m.st.ToggleTheme()
	case "b":
		m.st = m.st.ToggleCoin()
	case "s":
		snap := m.snapshot()
		return m, m.exportCmd(snap)
	}
	return m, nil
}

func (m Model) snapshot() state.Snapshot {
	return m.st.Snapshot(m.market.Rates(), m.market.Prices(), m.now())
}

func (m Model) exportCmd(snap state.Snapshot) tea.Cmd {
	e := m.exporter
	return func() tea.Msg {
		path, err := e.Export(&snap, snap.Taken)
		return exportedMsg{path: path, err: err}
	}
}

func (m Model) exported(msg exportedMsg) Model {
	dict := i18n.For(m.st.Language)
	if msg.err != nil {
		m.l.Error("failed to export memo", zap.Error(msg.err))
		m.status = dict.SaveFailed + " " + msg.err.Error()
		m.statusErr = true
		return m
	}
	m.status = dict.Saved + " " + msg.path
	m.statusErr = false
	return m
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	dict := i18n.For(m.st.Language)
	rates := m.market.Rates()

	e := &edit{
		rates:   rates,
		initial: make(map[state.Field]string, len(state.Fields)),
		values:  make(map[state.Field]*string, len(state.Fields)),
	}

	fields := make([]huh.Field, 0, len(state.Fields))
	for _, f := range state.Fields {
		text := m.st.InputText(f, rates)
		e.initial[f] = text
		e.values[f] = &text

		in := huh.NewInput().Title(fieldTitle(dict, f, m.st)).Value(e.values[f])
		if f == state.FieldEntryPrice {
			in = in.Description(dict.EntryPriceHint)
		}
		if m.strict {
			in = in.Validate(validateAmount)
		}
		fields = append(fields, in)
	}

	theme := huh.ThemeBase()
	if m.st.Theme.IsDark() {
		theme = huh.ThemeCharm()
	}

	m.form = huh.NewForm(huh.NewGroup(fields...)).WithTheme(theme).WithShowHelp(true)
	m.edit = e
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f, cmd := m.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		m.form = form
	}

	switch m.form.State {
	case huh.StateCompleted:
		m = m.applyEdit()
		m.form, m.edit = nil, nil
		return m, nil
	case huh.StateAborted:
		m.form, m.edit = nil, nil
		return m, nil
	}
	return m, cmd
}

// applyEdit stores the fields whose text changed. Untouched fields keep their
// canonical value so display rounding never leaks back into the state.
func (m Model) applyEdit() Model {
	if m.edit == nil {
		return m
	}
	for _, f := range state.Fields {
		text := *m.edit.values[f]
		if text == m.edit.initial[f] {
			continue
		}
		m.st = m.st.Set(f, text, m.edit.rates)
	}
	m.l.Debug("inputs updated",
		zap.String("entry_price", m.st.Position.EntryPrice.String()),
		zap.String("quantity", m.st.Position.Quantity.String()),
		zap.String("profit", m.st.Action.Profit.String()),
		zap.String("buy_price", m.st.Action.BuyPrice.String()))
	return m
}

func validateAmount(s string) error {
	_, err := domain.ParseAmountStrict(s)
	return err
}

func fieldTitle(dict i18n.Dict, f state.Field, st state.State) string {
	switch f {
	case state.FieldEntryPrice:
		return dict.EntryPrice + " (" + st.Currency.String() + ")"
	case state.FieldQuantity:
		return dict.Qty + " (" + st.Coin.String() + ")"
	case state.FieldProfit:
		return dict.Profit + " (" + st.Currency.String() + ")"
	case state.FieldBuyPrice:
		return dict.BuyPrice + " (" + st.Currency.String() + ")"
	}
	return ""
}
