// Package memo rasterizes the averaging memo summary into a PNG file.
package memo

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/vadiminshakov/lowerentry/internal/state"
)

const (
	filePrefix = "averaging-memo-"
	fileExt    = ".png"

	// scale device pixel ratio the memo is rendered at.
	scale   = 2
	width   = 560
	padding = 16
	gap     = 8
	dpi     = 72
)

// glyphFallbacks text drawn instead of runes the memo fonts have no glyph for.
var glyphFallbacks = map[rune]string{
	'₽':      "руб.",
	'\u00a0': " ",
	'ᵦ':      "b",
	'₀':      "0",
	'≥':      ">=",
	'—':      "-",
	'−':      "-",
}

// FileName returns the export file name for t, dated in UTC.
func FileName(t time.Time) string {
	return filePrefix + t.UTC().Format("2006-01-02") + fileExt
}

// Exporter writes memo images into a directory.
type Exporter struct {
	dir     string
	l       *zap.Logger
	regular *opentype.Font
	bold    *opentype.Font
	// fallback rewrites runes missing from the fonts.
	fallback *strings.Replacer
}

// NewExporter creates an exporter writing into dir, the working directory when empty.
func NewExporter(dir string, l *zap.Logger) (*Exporter, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse regular font")
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse bold font")
	}
	if dir == "" {
		dir = "."
	}

	var pairs []string
	for r, text := range glyphFallbacks {
		if !covered(regular, r) || !covered(bold, r) {
			pairs = append(pairs, string(r), text)
		}
	}

	return &Exporter{dir: dir, l: l, regular: regular, bold: bold, fallback: strings.NewReplacer(pairs...)}, nil
}

func covered(f *opentype.Font, r rune) bool {
	var buf sfnt.Buffer
	i, err := f.GlyphIndex(&buf, r)
	return err == nil && i != 0
}

// printable returns s with runes the fonts cannot draw replaced.
func (e *Exporter) printable(s string) string {
	return e.fallback.Replace(s)
}

// Export renders snap and saves it as a PNG dated by now, returning the file path.
// A nil snapshot means there is nothing on screen to capture and is a no-op.
func (e *Exporter) Export(snap *state.Snapshot, now time.Time) (string, error) {
	if snap == nil {
		return "", nil
	}

	img, err := e.Render(snap)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create export dir %s", e.dir)
	}

	path := filepath.Join(e.dir, FileName(now))
	tmp := filepath.Join(e.dir, fmt.Sprintf(".%s%s.tmp", filePrefix, uuid.NewString()))

	f, err := os.Create(tmp)
	if err != nil {
		return "", errors.Wrap(err, "create memo temp file")
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", errors.Wrap(err, "encode memo png")
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", errors.Wrap(err, "close memo temp file")
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", errors.Wrap(err, "persist memo png")
	}

	e.l.Info("memo exported", zap.String("path", path), zap.String("coin", snap.State.Coin.String()))
	return path, nil
}

type faces struct {
	title font.Face
	label font.Face
	big   font.Face
	small font.Face
}

func (e *Exporter) faces() (*faces, error) {
	face := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{Size: size * scale, DPI: dpi, Hinting: font.HintingFull})
	}

	var fs faces
	var err error
	if fs.title, err = face(e.bold, 16); err != nil {
		return nil, errors.Wrap(err, "title face")
	}
	if fs.label, err = face(e.regular, 14); err != nil {
		return nil, errors.Wrap(err, "label face")
	}
	if fs.big, err = face(e.bold, 22); err != nil {
		return nil, errors.Wrap(err, "value face")
	}
	if fs.small, err = face(e.regular, 12); err != nil {
		return nil, errors.Wrap(err, "small face")
	}
	return &fs, nil
}

func (fs *faces) Close() {
	for _, f := range []font.Face{fs.title, fs.label, fs.big, fs.small} {
		f.Close()
	}
}

// Render draws the memo region: the inputs grid, a rule, then the outcome grid.
func (e *Exporter) Render(snap *state.Snapshot) (*image.RGBA, error) {
	fs, err := e.faces()
	if err != nil {
		return nil, err
	}
	defer fs.Close()

	pal := palette{
		bg:        hexColor(snap.Palette.Bg),
		text:      hexColor(snap.Palette.Text),
		sub:       hexColor(snap.Palette.Sub),
		border:    hexColor(snap.Palette.Border),
		accent:    hexColor(snap.Palette.Accent),
		highlight: hexColor(snap.Palette.Highlight),
	}

	d := snap.Dict
	coin := snap.State.Coin.String()

	inputs := [][2]string{
		{d.EntryPrice, snap.EntryPrice},
		{d.Qty, snap.Quantity + " " + coin},
		{d.BuyFor, snap.Profit},
		{d.BuyPrice, snap.BuyPrice},
	}

	titleH := lineHeight(fs.title)
	labelH := lineHeight(fs.label)
	bigH := lineHeight(fs.big)
	smallH := lineHeight(fs.small)
	g := gap * scale
	pad := padding * scale

	inputsH := 2 * (2*labelH + g)
	outcomeH := labelH + bigH + g + labelH
	height := pad + titleH + g + inputsH + 12*scale*2 + outcomeH + pad
	// a buy at or above the entry gets the "effect is tiny" note
	noteEffect := !snap.Outcome.Effective()
	if noteEffect {
		height += g + smallH
	}

	w := width * scale
	img := image.NewRGBA(image.Rect(0, 0, w, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(pal.bg), image.Point{}, draw.Src)
	text := func(f font.Face, c color.Color, x, y int, s string) {
		drawText(img, f, c, x, y, e.printable(s))
	}
	strokeRect(img, img.Bounds(), pal.border, scale)

	colW := (w - 2*pad - g) / 2
	x0 := pad
	x1 := pad + colW + g

	y := pad
	text(fs.title, pal.text, x0, y, d.Title+" · "+coin)
	y += titleH + g

	for i, cell := range inputs {
		x := x0
		if i%2 == 1 {
			x = x1
		}
		text(fs.label, pal.sub, x, y, cell[0])
		text(fs.label, pal.text, x, y+labelH, cell[1])
		if i%2 == 1 {
			y += 2*labelH + g
		}
	}

	y += 12 * scale
	fillRect(img, image.Rect(pad, y, w-pad, y+scale), pal.border)
	y += 12 * scale

	text(fs.label, pal.sub, x0, y, d.NewEntry)
	text(fs.big, pal.text, x0, y+labelH, snap.NewEntry)
	text(fs.label, pal.sub, x1, y, d.NewQty)
	text(fs.big, pal.text, x1, y+labelH, snap.NewQuantity+" "+coin)
	y += labelH + bigH + g

	text(fs.label, pal.accent, x0, y, snap.Drop)
	dateW := font.MeasureString(fs.small, e.printable(snap.Date)).Ceil()
	text(fs.small, pal.sub, w-pad-dateW, y+labelH-smallH, snap.Date)

	if noteEffect {
		y += labelH + g
		text(fs.small, pal.highlight, x0, y, d.Memo3)
	}

	return img, nil
}

type palette struct {
	bg, text, sub, border, accent, highlight color.RGBA
}

func lineHeight(f font.Face) int {
	m := f.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// drawText draws s with its line box top-left at (x, y).
func drawText(dst draw.Image, f font.Face, c color.Color, x, y int, s string) {
	dr := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + f.Metrics().Ascent},
	}
	dr.DrawString(s)
}

func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func strokeRect(dst draw.Image, r image.Rectangle, c color.Color, thickness int) {
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// hexColor parses #rrggbb, black on malformed input.
func hexColor(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
