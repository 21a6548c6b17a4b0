package typeset

import "sort"

// GlyphID is a glyph index within a typeface.
type GlyphID uint32

// Glyph is one shaped glyph of a GlyphRun.
type Glyph struct {
	// ID is the glyph index in the run's typeface.
	ID GlyphID

	// Cluster is the character index of the first character this glyph
	// maps to. Several glyphs may share a cluster (e.g. base + mark) and
	// one glyph may cover several characters (e.g. a ligature).
	Cluster int

	// RuneCount is the number of characters in the glyph's cluster.
	RuneCount int

	// Advance is the horizontal pen advance to the next glyph.
	Advance float64

	// XOffset and YOffset are fine positioning adjustments applied on top
	// of the pen position, without affecting the advance.
	XOffset float64
	YOffset float64
}

// GlyphRun is the shaped output for one maximal sub-range of the text
// sharing a single directional run, typeface and size. GlyphRuns are built
// at construction, ordered by Start, and exactly partition the text.
//
// Glyph order within the run is visual: for right-to-left runs the glyphs
// are stored reversed relative to logical character order.
type GlyphRun struct {
	// Start and End delimit the half-open character range of the run.
	Start int
	End   int

	// Level is the bidirectional level of the run: even levels read
	// left-to-right, odd levels right-to-left.
	Level uint8

	// Typeface and Size identify the formatting the run was shaped with.
	Typeface *Typeface
	Size     float64

	// Glyphs is the shaped glyph sequence in visual order.
	Glyphs []Glyph

	// Ascent, Descent and LineGap are the line metrics of the typeface at
	// the run's size. Descent is stored as a positive distance.
	Ascent  float64
	Descent float64
	LineGap float64
}

// IsRTL reports whether the run reads right-to-left.
func (r *GlyphRun) IsRTL() bool {
	return r.Level&1 == 1
}

// glyphRange returns the half-open glyph index interval whose clusters
// start inside the character range [start, end). Clusters are monotonic in
// storage order (ascending for LTR runs, descending for RTL runs), so the
// interval is contiguous. A cut inside a cluster attributes the whole
// cluster to its starting character.
func (r *GlyphRun) glyphRange(start, end int) (int, int) {
	if r.IsRTL() {
		lo := sort.Search(len(r.Glyphs), func(i int) bool { return r.Glyphs[i].Cluster < end })
		hi := sort.Search(len(r.Glyphs), func(i int) bool { return r.Glyphs[i].Cluster < start })
		return lo, hi
	}
	lo := sort.Search(len(r.Glyphs), func(i int) bool { return r.Glyphs[i].Cluster >= start })
	hi := sort.Search(len(r.Glyphs), func(i int) bool { return r.Glyphs[i].Cluster >= end })
	return lo, hi
}

// measure sums the glyph advances over the character range [start, end),
// clamped to the run's own range.
func (r *GlyphRun) measure(start, end int) float64 {
	start = max(start, r.Start)
	end = min(end, r.End)
	if start >= end {
		return 0
	}

	lo, hi := r.glyphRange(start, end)
	var width float64
	for _, g := range r.Glyphs[lo:hi] {
		width += g.Advance
	}
	return width
}
