package certgen

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"luma/apperrors"
)

// Defaults used when a course has no layout record or the record leaves a
// field unset. Positions are fractions of the template dimensions.
const (
	BaseFontSize = 120
	FontSizeStep = 4
	MinFontSize  = 48
	DateFontSize = 36

	nameWidthRatio = 0.7
	nameYRatio     = 0.52
	dateXRatio     = 0.175
	dateYRatio     = 0.815

	DefaultNameColor = "#D4AF37" // gold
	DefaultDateColor = "#D4AF37"
)

// Layout overrides the default text placement. Zero values fall back to the
// defaults above, so a partially filled database row still renders.
type Layout struct {
	NameX           int
	NameY           int
	NameMaxWidth    int
	NameFontSize    int
	NameMinFontSize int
	DateX           int
	DateY           int
	NameColor       string
	DateColor       string
}

// Result is a rendered certificate
type Result struct {
	PNG          []byte
	Width        int
	Height       int
	NameFontSize int // Final size chosen by the shrink-to-fit loop
}

// Render draws the learner's name and the issue date onto the template image
// and returns the encoded PNG. The canvas matches the template's pixel
// dimensions exactly; nothing is resized or cropped.
func Render(templateBytes []byte, fnt *opentype.Font, name string, layout *Layout, now time.Time) (*Result, error) {
	img, _, err := image.Decode(bytes.NewReader(templateBytes))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRender, err, "failed to decode certificate template")
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, img, bounds.Min, draw.Src)

	if layout == nil {
		layout = &Layout{}
	}

	nameX := orDefault(layout.NameX, width/2)
	nameY := orDefault(layout.NameY, int(float64(height)*nameYRatio))
	maxWidth := orDefault(layout.NameMaxWidth, int(float64(width)*nameWidthRatio))
	baseSize := orDefault(layout.NameFontSize, BaseFontSize)
	minSize := orDefault(layout.NameMinFontSize, MinFontSize)
	dateX := orDefault(layout.DateX, int(float64(width)*dateXRatio))
	dateY := orDefault(layout.DateY, int(float64(height)*dateYRatio))

	nameColor := parseHexColor(layout.NameColor, parseHexColor(DefaultNameColor, color.RGBA{A: 255}))
	dateColor := parseHexColor(layout.DateColor, parseHexColor(DefaultDateColor, color.RGBA{A: 255}))

	size, face, err := FitFontSize(fnt, name, maxWidth, baseSize, FontSizeStep, minSize)
	if err != nil {
		return nil, err
	}

	// Name is centered on nameX; the fitted width may still overflow for
	// pathological names once the floor size is reached, which is accepted.
	nameAdvance := font.MeasureString(face, name)
	drawText(canvas, face, name, fixed.I(nameX)-nameAdvance/2, fixed.I(nameY), nameColor)

	dateFace, err := newFace(fnt, DateFontSize)
	if err != nil {
		return nil, err
	}
	dateText := now.Format("January 2, 2006")
	drawText(canvas, dateFace, dateText, fixed.I(dateX), fixed.I(dateY), dateColor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, apperrors.Wrap(apperrors.KindRender, err, "failed to encode certificate image")
	}

	return &Result{
		PNG:          buf.Bytes(),
		Width:        width,
		Height:       height,
		NameFontSize: size,
	}, nil
}

// FitFontSize shrinks the font size in fixed steps until the rendered text
// fits within maxWidth or the size reaches min. The loop always terminates:
// the size is clamped at min, and overflow past that point is accepted rather
// than treated as an error.
func FitFontSize(fnt *opentype.Font, text string, maxWidth, base, step, min int) (int, font.Face, error) {
	if min > base {
		min = base
	}
	if step < 1 {
		step = 1
	}

	size := base
	for {
		face, err := newFace(fnt, size)
		if err != nil {
			return 0, nil, err
		}
		if textWidth(face, text) <= maxWidth || size <= min {
			return size, face, nil
		}
		next := size - step
		if next < min {
			next = min
		}
		size = next
	}
}

func drawText(dst draw.Image, face font.Face, text string, x, y fixed.Int26_6, col color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(text)
}

// parseHexColor parses a #RRGGBB string, returning fallback on malformed input
func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexVal(s[1+i*2])
		lo, ok2 := hexVal(s[2+i*2])
		if !ok1 || !ok2 {
			return fallback
		}
		rgb[i] = hi<<4 | lo
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func hexVal(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
