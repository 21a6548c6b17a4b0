package typeset

import (
	"math"
	"testing"

	"github.com/go-text/typesetting/language"
)

// shapeTestRun shapes text as one run and returns it.
func shapeTestRun(t *testing.T, text string, level uint8) *GlyphRun {
	t.Helper()

	runes := []rune(text)
	engine := newShapingEngine(language.NewLanguage("en"))
	return engine.shapeRun(runes, 0, len(runes), level, testTypeface(t), 16)
}

// TestShapeRunLTR tests basic left-to-right shaping output.
func TestShapeRunLTR(t *testing.T) {
	run := shapeTestRun(t, "Hello", 0)

	if run.Start != 0 || run.End != 5 {
		t.Errorf("run range [%d..%d), want [0..5)", run.Start, run.End)
	}
	if run.IsRTL() {
		t.Error("IsRTL() = true for an even level")
	}
	if len(run.Glyphs) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(run.Glyphs))
	}
	for i, g := range run.Glyphs {
		if g.Cluster != i {
			t.Errorf("glyph %d cluster = %d, want %d", i, g.Cluster, i)
		}
		if g.Advance <= 0 {
			t.Errorf("glyph %d advance = %v, want > 0", i, g.Advance)
		}
	}
	if run.Ascent <= 0 || run.Descent <= 0 {
		t.Errorf("ascent=%v descent=%v, want both > 0", run.Ascent, run.Descent)
	}
}

// TestGlyphRunMeasure tests sub-range measurement and clamping.
func TestGlyphRunMeasure(t *testing.T) {
	run := shapeTestRun(t, "Hello", 0)

	full := run.measure(0, 5)
	if full <= 0 {
		t.Fatalf("measure(0, 5) = %v, want > 0", full)
	}
	if got := run.measure(0, 2) + run.measure(2, 5); math.Abs(got-full) > 1e-6 {
		t.Errorf("split measurement %v, want %v", got, full)
	}
	if got := run.measure(-3, 9); math.Abs(got-full) > 1e-6 {
		t.Errorf("measure with out-of-range bounds = %v, want clamped %v", got, full)
	}
	if run.measure(3, 3) != 0 {
		t.Error("empty range must measure 0")
	}
	if run.measure(7, 9) != 0 {
		t.Error("range past the run must measure 0")
	}
}

// TestGlyphRangeLTR tests glyph index lookup for character sub-ranges.
func TestGlyphRangeLTR(t *testing.T) {
	run := shapeTestRun(t, "Hello", 0)

	lo, hi := run.glyphRange(1, 4)
	if lo != 1 || hi != 4 {
		t.Errorf("glyphRange(1, 4) = [%d, %d), want [1, 4)", lo, hi)
	}
}

// TestShapeRunFixedConversion tests the 26.6 fixed-point helpers.
func TestShapeRunFixedConversion(t *testing.T) {
	for _, v := range []float64{0, 1, 16, 12.5, 0.25} {
		if got := fixedToFloat(floatToFixed(v)); got != v {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}
