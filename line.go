package typeset

// TextRun is a slice of one glyph run appearing on a line. It borrows the
// glyph run's shaped data and narrows it to the run's character range.
type TextRun struct {
	run        *GlyphRun
	start, end int
}

// Start returns the first character index of the run.
func (r *TextRun) Start() int { return r.start }

// End returns the character index just past the run.
func (r *TextRun) End() int { return r.end }

// Level returns the directional level of the run.
func (r *TextRun) Level() uint8 { return r.run.Level }

// IsRTL reports whether the run reads right-to-left.
func (r *TextRun) IsRTL() bool { return r.run.IsRTL() }

// Typeface returns the typeface the run was shaped with.
func (r *TextRun) Typeface() *Typeface { return r.run.Typeface }

// Size returns the type size the run was shaped at.
func (r *TextRun) Size() float64 { return r.run.Size }

// Glyphs returns the run's glyphs in visual order. The slice aliases the
// underlying glyph run; callers must not modify it.
func (r *TextRun) Glyphs() []Glyph {
	lo, hi := r.run.glyphRange(r.start, r.end)
	return r.run.Glyphs[lo:hi]
}

// Width returns the sum of the run's glyph advances.
func (r *TextRun) Width() float64 {
	return r.run.measure(r.start, r.end)
}

// Ascent, Descent and LineGap report the run's line metrics.
func (r *TextRun) Ascent() float64 { return r.run.Ascent }

func (r *TextRun) Descent() float64 { return r.run.Descent }

func (r *TextRun) LineGap() float64 { return r.run.LineGap }

// TextLine is a single laid-out line: an ordered list of text runs in
// visual order plus aggregate metrics. Lines are immutable except for their
// origin, which frame composition assigns.
type TextLine struct {
	start, end int
	baseLevel  uint8
	runs       []TextRun

	width   float64
	ascent  float64
	descent float64
	lineGap float64

	originX float64
	originY float64
}

// newTextLine aggregates run widths and line metrics. Ascent, descent and
// gap are the maxima over the runs so mixed typefaces and sizes coexist on
// one baseline.
func newTextLine(start, end int, baseLevel uint8, runs []TextRun) *TextLine {
	l := &TextLine{
		start:     start,
		end:       end,
		baseLevel: baseLevel,
		runs:      runs,
	}
	for i := range runs {
		r := &runs[i]
		l.width += r.Width()
		l.ascent = max(l.ascent, r.Ascent())
		l.descent = max(l.descent, r.Descent())
		l.lineGap = max(l.lineGap, r.LineGap())
	}
	return l
}

// Start returns the first character index of the line.
func (l *TextLine) Start() int { return l.start }

// End returns the character index just past the line.
func (l *TextLine) End() int { return l.end }

// IsRTL reports whether the line's paragraph base direction is
// right-to-left.
func (l *TextLine) IsRTL() bool { return l.baseLevel&1 == 1 }

// Runs returns the line's text runs in visual order. The slice aliases the
// line; callers must not modify it.
func (l *TextLine) Runs() []TextRun { return l.runs }

// Width returns the typographic width of the line.
func (l *TextLine) Width() float64 { return l.width }

// Ascent returns the distance from the baseline up to the line's top.
func (l *TextLine) Ascent() float64 { return l.ascent }

// Descent returns the distance from the baseline down to the line's bottom,
// as a positive value.
func (l *TextLine) Descent() float64 { return l.descent }

// LineGap returns the recommended spacing to the next line's top.
func (l *TextLine) LineGap() float64 { return l.lineGap }

// Height returns ascent plus descent.
func (l *TextLine) Height() float64 { return l.ascent + l.descent }

// Origin returns the pen origin assigned by frame composition, or (0, 0)
// for a free-standing line.
func (l *TextLine) Origin() (x, y float64) { return l.originX, l.originY }

// FlushPenOffset returns the horizontal pen offset that aligns the line
// within flushExtent according to align.
func (l *TextLine) FlushPenOffset(align Alignment, flushExtent float64) float64 {
	return (flushExtent - l.width) * align.flushFactor()
}
