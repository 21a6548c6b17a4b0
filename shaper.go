package typeset

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shapingEngine wraps go-text/typesetting's HarfBuzz implementation.
// HarfbuzzShaper has internal mutable state and is not safe for concurrent
// use; one engine is created per Typesetter construction and discarded when
// construction finishes, so no pooling or locking is needed.
type shapingEngine struct {
	shaper shaping.HarfbuzzShaper
	lang   language.Language
}

func newShapingEngine(lang language.Language) *shapingEngine {
	return &shapingEngine{lang: lang}
}

// shapeRun shapes the character range [start, end) of text with the given
// typeface, size and bidi level, producing one GlyphRun. Cluster indices in
// the result are absolute character indices because the full text is passed
// as shaping context.
func (e *shapingEngine) shapeRun(text []rune, start, end int, level uint8, tf *Typeface, size float64) *GlyphRun {
	dir := di.DirectionLTR
	if level&1 == 1 {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      text,
		RunStart:  start,
		RunEnd:    end,
		Direction: dir,
		Face:      tf.face(),
		Size:      floatToFixed(size),
		Script:    runScript(text[start:end]),
		Language:  e.lang,
	}

	out := e.shaper.Shape(input)

	glyphs := make([]Glyph, len(out.Glyphs))
	for i, g := range out.Glyphs {
		glyphs[i] = Glyph{
			ID:        GlyphID(g.GlyphID),
			Cluster:   g.ClusterIndex,
			RuneCount: g.RuneCount,
			Advance:   fixedToFloat(g.XAdvance),
			XOffset:   fixedToFloat(g.XOffset),
			YOffset:   fixedToFloat(g.YOffset),
		}
	}

	descent := fixedToFloat(out.LineBounds.Descent)
	if descent < 0 {
		descent = -descent
	}

	return &GlyphRun{
		Start:    start,
		End:      end,
		Level:    level,
		Typeface: tf,
		Size:     size,
		Glyphs:   glyphs,
		Ascent:   fixedToFloat(out.LineBounds.Ascent),
		Descent:  descent,
		LineGap:  fixedToFloat(out.LineBounds.Gap),
	}
}

// runScript inspects the runes and returns the script of the first
// non-space character. Runs arrive here already split by direction, so a
// single script per run is a workable approximation.
func runScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
