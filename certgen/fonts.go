package certgen

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"luma/apperrors"
)

var (
	defaultFontOnce sync.Once
	defaultFont     *opentype.Font
)

// DefaultFont returns the bundled serif-style fallback font. It is used when
// no custom font has been uploaded to storage.
func DefaultFont() *opentype.Font {
	defaultFontOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			// The embedded font is a compile-time asset; failing to parse it
			// is a programming error.
			panic("certgen: failed to parse bundled font: " + err.Error())
		}
		defaultFont = f
	})
	return defaultFont
}

// ParseFont parses TTF/OTF bytes, e.g. a custom font downloaded from storage
func ParseFont(ttf []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRender, err, "invalid font file")
	}
	return f, nil
}

func newFace(f *opentype.Font, size int) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRender, err, "failed to create font face at size %d", size)
	}
	return face, nil
}

// textWidth measures the advance width of s in whole pixels
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
