package state

import "github.com/vadiminshakov/lowerentry/internal/domain"

// Palette theme colors as #rrggbb.
type Palette struct {
	Bg        string
	Text      string
	Sub       string
	Border    string
	Muted     string
	Accent    string
	Highlight string
	InputBg   string
	InputText string
}

var (
	lightPalette = Palette{
		Bg:        "#ffffff",
		Text:      "#0f172a",
		Sub:       "#475569",
		Border:    "#e5e7eb",
		Muted:     "#f8fafc",
		Accent:    "#16a34a",
		Highlight: "#ca8a04",
		InputBg:   "#ffffff",
		InputText: "#0f172a",
	}
	darkPalette = Palette{
		Bg:        "#0a0a0a",
		Text:      "#e5e7eb",
		Sub:       "#9ca3af",
		Border:    "#1f2937",
		Muted:     "#111827",
		Accent:    "#22c55e",
		Highlight: "#facc15",
		InputBg:   "#0b0f19",
		InputText: "#e5e7eb",
	}
)

// PaletteFor returns the colors of theme.
func PaletteFor(theme domain.Theme) Palette {
	if theme.IsDark() {
		return darkPalette
	}
	return lightPalette
}
