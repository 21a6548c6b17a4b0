package typeset

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
)

// Typeface represents a loaded font file. One Typeface can be shared by any
// number of spans, Typesetters and sizes; it is heavyweight and should be
// created once per font and reused.
//
// A Typeface is read-only after creation and safe for concurrent use by
// layout requests. Constructing multiple Typesetters that share one Typeface
// concurrently is not supported: shaping during construction uses a per-call
// font.Face, but face creation touches shared glyph caches.
type Typeface struct {
	font *font.Font
}

// NewTypeface parses TTF/OTF font data into a Typeface.
// The data is fully parsed up front; the slice may be reused afterwards.
func NewTypeface(data []byte) (*Typeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("typeset: parse font: %w", err)
	}

	return &Typeface{font: face.Font}, nil
}

// NewTypefaceFromFile loads a Typeface from a font file path.
func NewTypefaceFromFile(path string) (*Typeface, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("typeset: read font file: %w", err)
	}

	return NewTypeface(data)
}

// face creates a lightweight shaping face for this typeface.
// font.Face is not safe for concurrent use, so each construction pass
// creates its own instance. font.NewFace is cheap: it wraps the shared
// read-only *font.Font and initializes glyph caches.
func (t *Typeface) face() *font.Face {
	return font.NewFace(t.font)
}
