package typeset

import (
	"iter"
	"slices"
)

// continuousRuns yields the visual-order directional runs covering
// [start, end), paragraph by paragraph. A line spanning a paragraph break
// keeps each paragraph's internal visual order and places the paragraphs in
// logical sequence.
func (t *Typesetter) continuousRuns(start, end int) iter.Seq[bidiRun] {
	return func(yield func(bidiRun) bool) {
		pi := t.paragraphIndex(start)
		for start < end {
			bp := t.paragraphs[pi]
			segEnd := min(end, bp.end)
			for _, vr := range bp.visualRuns(start, segEnd) {
				if !yield(vr) {
					return
				}
			}
			start = segEnd
			pi++
		}
	}
}

// appendVisualRuns splits one visual-order directional run [visualStart,
// visualEnd) along the glyph run partition and appends the pieces to runs in
// visual order. The glyph runs are walked in logical order; pieces of an
// odd-level run are inserted at a fixed index so their visual sequence comes
// out reversed, while even-level pieces and level changes append.
func (t *Typesetter) appendVisualRuns(visualStart, visualEnd int, runs []TextRun) []TextRun {
	insertIndex := len(runs)
	var previous *GlyphRun

	for visualStart < visualEnd {
		gr := t.glyphRuns[t.glyphRunIndex(visualStart)]
		segStart := max(gr.Start, visualStart)
		segEnd := min(gr.End, visualEnd)

		if previous != nil && (gr.Level != previous.Level || gr.Level&1 == 0) {
			insertIndex = len(runs)
		}
		runs = slices.Insert(runs, insertIndex, TextRun{run: gr, start: segStart, end: segEnd})

		previous = gr
		visualStart = segEnd
	}

	return runs
}
