package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/vadiminshakov/lowerentry/internal/i18n"
	"github.com/vadiminshakov/lowerentry/internal/services/formatter"
	"github.com/vadiminshakov/lowerentry/internal/state"
)

// wideLayout minimum terminal width the input cards are placed side by side at.
const wideLayout = 96

type styles struct {
	title     lipgloss.Style
	sub       lipgloss.Style
	card      lipgloss.Style
	heading   lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	accent    lipgloss.Style
	highlight lipgloss.Style
	memo      lipgloss.Style
	err       lipgloss.Style
	border    lipgloss.Color
}

func newStyles(p state.Palette) styles {
	text := lipgloss.Color(p.Text)
	sub := lipgloss.Color(p.Sub)
	border := lipgloss.Color(p.Border)

	return styles{
		title: lipgloss.NewStyle().Foreground(text).Bold(true),
		sub:   lipgloss.NewStyle().Foreground(sub),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			MarginRight(1),
		heading:   lipgloss.NewStyle().Foreground(text).Bold(true).MarginBottom(1),
		label:     lipgloss.NewStyle().Foreground(sub),
		value:     lipgloss.NewStyle().Foreground(text).Bold(true),
		accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true),
		highlight: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Highlight)).Bold(true),
		memo: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.Highlight)).
			Background(lipgloss.Color(p.Muted)).
			Padding(0, 1),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")),
		border: border,
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.snapshot()
	st := newStyles(snap.Palette)

	if m.form != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			header(snap, st),
			"",
			st.heading.Render(snap.Dict.SectionA+" / "+snap.Dict.SectionB),
			m.form.View(),
		)
	}

	var b strings.Builder
	b.WriteString(header(snap, st))
	b.WriteString("\n")
	b.WriteString(prices(snap, st, m.market.PricesUpdated()))
	b.WriteString("\n\n")
	b.WriteString(m.inputs(snap, st))
	b.WriteString("\n")
	b.WriteString(st.label.Render(snap.Dict.Formula+": ") + st.value.Render(i18n.Formula))
	b.WriteString("\n\n")
	b.WriteString(results(snap, st))
	b.WriteString("\n")
	b.WriteString(memo(snap, st))
	b.WriteString("\n")
	b.WriteString(st.sub.Render(snap.Dict.Disclaimer + " " + snap.Dict.Sources + " " + m.source + "."))
	b.WriteString("\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(st.err.Render(m.status))
		} else {
			b.WriteString(st.accent.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(st.sub.Render(snap.Dict.Keys))

	return b.String()
}

func header(snap state.Snapshot, st styles) string {
	d := snap.Dict
	theme := d.Light
	if snap.State.Theme.IsDark() {
		theme = d.Dark
	}

	prefs := strings.Join([]string{
		d.Lang + ": " + strings.ToUpper(snap.State.Language.String()),
		d.Theme + ": " + theme,
		d.Currency + ": " + snap.State.Currency.String(),
		d.Coin + ": " + snap.State.Coin.String(),
	}, " · ")

	return st.title.Render(d.Title) + "  " + st.sub.Render(prefs)
}

// prices renders the live prices line, updated is zero until the first fetch succeeds.
func prices(snap state.Snapshot, st styles, updated time.Time) string {
	parts := make([]string, 0, len(snap.LivePrices))
	for _, p := range snap.LivePrices {
		parts = append(parts, p.Coin.String()+" "+st.value.Render(p.Text))
	}
	line := st.label.Render(snap.Dict.Prices+": ") + strings.Join(parts, "  ")
	if !updated.IsZero() {
		line += st.sub.Render(" (" + snap.Dict.Updated + " " + formatter.FormatTime(updated, snap.State.Language) + ")")
	}
	return line + st.label.Render("  "+snap.Dict.Date+": ") + snap.Date
}

func (m Model) inputs(snap state.Snapshot, st styles) string {
	d := snap.Dict
	row := func(label, value string) string {
		return st.label.Render(label) + "\n" + st.value.Render(value)
	}

	a := st.card.Render(lipgloss.JoinVertical(lipgloss.Left,
		st.heading.Render(d.SectionA),
		row(d.EntryPrice, snap.EntryPrice),
		st.sub.Render(d.EntryPriceHint),
		row(d.Qty, snap.Quantity),
	))
	b := st.card.Render(lipgloss.JoinVertical(lipgloss.Left,
		st.heading.Render(d.SectionB),
		row(d.Profit, snap.Profit),
		row(d.BuyPrice, snap.BuyPrice),
	))

	if m.width >= wideLayout {
		return lipgloss.JoinHorizontal(lipgloss.Top, a, b)
	}
	return lipgloss.JoinVertical(lipgloss.Left, a, b)
}

func results(snap state.Snapshot, st styles) string {
	d := snap.Dict

	tracker := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(st.border)).
		Rows(
			[]string{d.NewEntry, snap.NewEntry},
			[]string{d.NewQty, snap.NewQuantity},
		).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return st.label.Padding(0, 1)
			}
			return st.value.Padding(0, 1)
		})

	return st.card.Render(lipgloss.JoinVertical(lipgloss.Left,
		st.heading.Render(d.Calc),
		st.label.Render(d.NewEntry),
		st.accent.Render(snap.NewEntry)+"  "+st.accent.Render(snap.Drop),
		st.label.Render(d.BuyFor+" ")+st.value.Render(snap.Profit)+
			st.label.Render(" "+d.AtPrice+" ")+st.value.Render(snap.BuyPrice)+
			st.label.Render(" → +")+st.value.Render(snap.BoughtQty),
		st.label.Render(d.NewQty),
		st.value.Render(snap.NewQuantity),
		"",
		st.highlight.Render(d.TrackerNote),
		tracker.String(),
	))
}

func memo(snap state.Snapshot, st styles) string {
	d := snap.Dict
	notes := []string{d.Memo1, d.Memo2, d.Memo3, d.Memo4}
	for i, n := range notes {
		notes[i] = "• " + n
	}
	// buying at or above the entry is the case the third note is about
	if !snap.Outcome.Effective() {
		notes[2] = st.highlight.Render(notes[2])
	}

	return st.memo.Render(lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(d.Memo)+"  "+st.sub.Render("["+d.Screenshot+": s]"),
		strings.Join(notes, "\n"),
	))
}
