package certgen

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templatePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 245, G: 240, B: 225, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFitFontSizeShortNameKeepsBase(t *testing.T) {
	fnt := DefaultFont()

	size, face, err := FitFontSize(fnt, "Al", 840, BaseFontSize, FontSizeStep, MinFontSize)
	require.NoError(t, err)
	require.NotNil(t, face)

	assert.Equal(t, BaseFontSize, size)
}

func TestFitFontSizeLongNameShrinks(t *testing.T) {
	fnt := DefaultFont()
	maxWidth := 840 // 70% of a 1200px template

	name := "Alexandra Johnson-Smitherton the Third"
	size, face, err := FitFontSize(fnt, name, maxWidth, BaseFontSize, FontSizeStep, MinFontSize)
	require.NoError(t, err)

	assert.Less(t, size, BaseFontSize)
	assert.GreaterOrEqual(t, size, MinFontSize)

	// At the chosen size the text fits, unless the floor was hit
	if size > MinFontSize {
		assert.LessOrEqual(t, textWidth(face, name), maxWidth)
	}
}

func TestFitFontSizeStopsAtFloor(t *testing.T) {
	fnt := DefaultFont()

	name := "An Impossibly Long Name That Can Never Fit In Ten Pixels At Any Size"
	size, _, err := FitFontSize(fnt, name, 10, BaseFontSize, FontSizeStep, MinFontSize)
	require.NoError(t, err)

	assert.Equal(t, MinFontSize, size)
}

func TestFitFontSizeNonIncreasing(t *testing.T) {
	fnt := DefaultFont()

	prev := BaseFontSize
	for _, name := range []string{"Jo", "Jonathan", "Jonathan Archibald", "Jonathan Archibald Featherstonehaugh"} {
		size, _, err := FitFontSize(fnt, name, 600, BaseFontSize, FontSizeStep, MinFontSize)
		require.NoError(t, err)
		assert.LessOrEqual(t, size, prev, "longer name %q should not get a larger font", name)
		prev = size
	}
}

func TestFitFontSizeClampsBadArguments(t *testing.T) {
	fnt := DefaultFont()

	// min above base collapses to base
	size, _, err := FitFontSize(fnt, "Test Name", 5, 40, 4, 100)
	require.NoError(t, err)
	assert.Equal(t, 40, size)

	// non-positive step still terminates
	size, _, err = FitFontSize(fnt, "A Rather Long Test Name", 50, BaseFontSize, 0, MinFontSize)
	require.NoError(t, err)
	assert.Equal(t, MinFontSize, size)
}

func TestRenderKeepsTemplateDimensions(t *testing.T) {
	template := templatePNG(t, 1200, 800)

	result, err := Render(template, DefaultFont(), "Jane Doe", nil, time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 1200, result.Width)
	assert.Equal(t, 800, result.Height)
	assert.Equal(t, BaseFontSize, result.NameFontSize)

	decoded, _, err := image.Decode(bytes.NewReader(result.PNG))
	require.NoError(t, err)
	assert.Equal(t, 1200, decoded.Bounds().Dx())
	assert.Equal(t, 800, decoded.Bounds().Dy())
}

func TestRenderLongNameShrinksOnSmallTemplate(t *testing.T) {
	template := templatePNG(t, 900, 600)

	result, err := Render(template, DefaultFont(), "Alexandra Johnson-Smitherton the Third", nil, time.Now())
	require.NoError(t, err)

	assert.Less(t, result.NameFontSize, BaseFontSize)
	assert.GreaterOrEqual(t, result.NameFontSize, MinFontSize)
}

func TestRenderHonorsLayoutOverrides(t *testing.T) {
	template := templatePNG(t, 1000, 700)
	layout := &Layout{
		NameX:        480,
		NameY:        350,
		NameMaxWidth: 400,
		NameFontSize: 72,
		DateX:        120,
		DateY:        600,
		NameColor:    "#1A2B3C",
	}

	result, err := Render(template, DefaultFont(), "Sam Lee", layout, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 72, result.NameFontSize)
}

func TestRenderRejectsGarbageTemplate(t *testing.T) {
	_, err := Render([]byte("not an image"), DefaultFont(), "Jane Doe", nil, time.Now())
	require.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	assert.Equal(t, color.RGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 255}, parseHexColor("#D4AF37", fallback))
	assert.Equal(t, fallback, parseHexColor("", fallback))
	assert.Equal(t, fallback, parseHexColor("D4AF37", fallback))
	assert.Equal(t, fallback, parseHexColor("#GGGGGG", fallback))
}
