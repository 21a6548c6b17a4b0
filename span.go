package typeset

import "iter"

// charRange is a half-open character (rune) range.
type charRange struct {
	start, end int
}

// TypefaceSpan assigns a typeface to a character range.
type TypefaceSpan struct {
	Start    int
	End      int
	Typeface *Typeface
}

// TypeSizeSpan assigns a type size to a character range.
type TypeSizeSpan struct {
	Start int
	End   int
	Size  float64
}

// SpanList holds the formatting attributes for a text. Spans added later
// take precedence over earlier ones where they overlap, so callers can set
// a whole-text span first and refine sub-ranges afterwards.
//
// Every character handed to a Typesetter must be covered by a typeface
// span; type size spans are optional and default to the nominal size.
type SpanList struct {
	typefaces []TypefaceSpan
	sizes     []TypeSizeSpan
}

// NewSpanList creates an empty span list.
func NewSpanList() *SpanList {
	return &SpanList{}
}

// AddTypeface assigns a typeface to the half-open range [start, end).
// It returns the list for chaining.
func (s *SpanList) AddTypeface(start, end int, tf *Typeface) *SpanList {
	s.typefaces = append(s.typefaces, TypefaceSpan{Start: start, End: end, Typeface: tf})
	return s
}

// AddSize assigns a type size to the half-open range [start, end).
// It returns the list for chaining.
func (s *SpanList) AddSize(start, end int, size float64) *SpanList {
	s.sizes = append(s.sizes, TypeSizeSpan{Start: start, End: end, Size: size})
	return s
}

// typefaceRuns yields the maximal sub-ranges of [start, end) sharing one
// active typeface. The active typeface at a position is the latest-added
// span covering it, or nil when no span does.
func (s *SpanList) typefaceRuns(start, end int) iter.Seq2[charRange, *Typeface] {
	return func(yield func(charRange, *Typeface) bool) {
		pos := start
		for pos < end {
			var active *Typeface
			activeIdx := -1
			for i := len(s.typefaces) - 1; i >= 0; i-- {
				if sp := s.typefaces[i]; sp.Start <= pos && pos < sp.End {
					active = sp.Typeface
					activeIdx = i
					break
				}
			}

			next := end
			if activeIdx >= 0 && s.typefaces[activeIdx].End < next {
				next = s.typefaces[activeIdx].End
			}
			// A later-added span starting inside the stretch overrides it.
			for i := activeIdx + 1; i < len(s.typefaces); i++ {
				if sp := s.typefaces[i]; sp.Start > pos && sp.Start < next && sp.End > sp.Start {
					next = sp.Start
				}
			}

			if !yield(charRange{pos, next}, active) {
				return
			}
			pos = next
		}
	}
}

// sizeRuns yields the maximal sub-ranges of [start, end) sharing one active
// type size span. The span is nil where no size span covers the range.
func (s *SpanList) sizeRuns(start, end int) iter.Seq2[charRange, *TypeSizeSpan] {
	return func(yield func(charRange, *TypeSizeSpan) bool) {
		pos := start
		for pos < end {
			var active *TypeSizeSpan
			activeIdx := -1
			for i := len(s.sizes) - 1; i >= 0; i-- {
				if sp := s.sizes[i]; sp.Start <= pos && pos < sp.End {
					active = &s.sizes[i]
					activeIdx = i
					break
				}
			}

			next := end
			if activeIdx >= 0 && s.sizes[activeIdx].End < next {
				next = s.sizes[activeIdx].End
			}
			for i := activeIdx + 1; i < len(s.sizes); i++ {
				if sp := s.sizes[i]; sp.Start > pos && sp.Start < next && sp.End > sp.Start {
					next = sp.Start
				}
			}

			if !yield(charRange{pos, next}, active) {
				return
			}
			pos = next
		}
	}
}
