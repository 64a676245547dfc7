package memo

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/lowerentry/internal/domain"
	"github.com/vadiminshakov/lowerentry/internal/i18n"
	"github.com/vadiminshakov/lowerentry/internal/services/formatter"
	"github.com/vadiminshakov/lowerentry/internal/state"
	"go.uber.org/zap"
)

func newTestExporter(t *testing.T) (*Exporter, string) {
	t.Helper()
	dir := t.TempDir()
	e, err := NewExporter(dir, zap.NewNop())
	require.NoError(t, err)
	return e, dir
}

func snapshot(s state.State) *state.Snapshot {
	snap := s.Snapshot(domain.DefaultRates(), domain.DefaultSpotPrices(), time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC))
	return &snap
}

func TestFileName(t *testing.T) {
	ts := time.Date(2026, 10, 14, 23, 30, 0, 0, time.FixedZone("UTC-3", -3*3600))
	// 23:30 at UTC-3 is already the 15th in UTC
	assert.Equal(t, "averaging-memo-2026-10-15.png", FileName(ts))
}

func TestExport_WritesDatedPNG(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	e, dir := newTestExporter(t)

	path, err := e.Export(snapshot(state.Default()), now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "averaging-memo-2026-10-14.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, width*scale, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), 0)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be renamed away")
}

func TestExport_NilSnapshotIsNoop(t *testing.T) {
	e, dir := newTestExporter(t)

	path, err := e.Export(nil, time.Now())
	require.NoError(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRender_UsesThemeBackground(t *testing.T) {
	e, _ := newTestExporter(t)

	light, err := e.Render(snapshot(state.Default()))
	require.NoError(t, err)
	dark, err := e.Render(snapshot(state.Default().WithTheme(domain.ThemeDark)))
	require.NoError(t, err)

	// a pixel inside the border and outside any text
	x, y := width*scale-padding, padding
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, light.RGBAAt(x, y))
	assert.Equal(t, color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}, dark.RGBAAt(x, y))
}

func TestRender_RussianText(t *testing.T) {
	e, _ := newTestExporter(t)

	img, err := e.Render(snapshot(state.Default().WithLanguage(domain.LanguageRU).WithCurrency(domain.RUB)))
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x16, G: 0xa3, B: 0x4a, A: 0xff}, hexColor("#16a34a"))
	assert.Equal(t, color.RGBA{A: 0xff}, hexColor("nope"))
}

func TestPrintable_FontsCoverMemoText(t *testing.T) {
	e, _ := newTestExporter(t)

	var texts []string
	for _, lang := range []domain.Language{domain.LanguageRU, domain.LanguageEN} {
		for _, c := range domain.Currencies {
			texts = append(texts, formatter.FormatMoney(decimal.RequireFromString("1234567.5"), c, lang))
		}
		texts = append(texts, formatter.FormatPercent(decimal.RequireFromString("1.37"), lang), i18n.For(lang).Memo3)
	}

	for _, text := range texts {
		for _, r := range e.printable(text) {
			assert.True(t, covered(e.regular, r), "regular font has no glyph for %q in %q", r, text)
			assert.True(t, covered(e.bold, r), "bold font has no glyph for %q in %q", r, text)
		}
	}
}

func TestPrintable_RubleSymbol(t *testing.T) {
	e, _ := newTestExporter(t)

	got := e.printable(formatter.FormatMoney(decimal.NewFromInt(8965000), domain.RUB, domain.LanguageRU))
	assert.NotContains(t, got, "₽")
	assert.Contains(t, got, "руб.")
}

func TestRender_NoteWhenBuyAboveEntry(t *testing.T) {
	e, _ := newTestExporter(t)

	effective := state.Default()
	img, err := e.Render(snapshot(effective))
	require.NoError(t, err)

	above := effective
	above.Action.BuyPrice = decimal.NewFromInt(120000)
	noted, err := e.Render(snapshot(above))
	require.NoError(t, err)

	assert.Greater(t, noted.Bounds().Dy(), img.Bounds().Dy())
}
