package typeset

import (
	"unicode"

	"github.com/go-text/typesetting/segmenter"
)

// breakFlag is a per-character bitmask of break opportunities. A character
// at the end of a segment carries the forward flag for the boundary after
// it; the character starting the next segment carries the backward flag for
// the same boundary.
type breakFlag uint8

const (
	breakLineForward breakFlag = 1 << iota
	breakLineBackward
	breakCharForward
	breakCharBackward
	breakParagraphForward
	breakParagraphBackward
)

// breakRecord holds one breakFlag per character of the source text.
// It is computed once at construction and read-only afterwards.
type breakRecord []breakFlag

// classifyBreaks runs UAX #14 line segmentation and UAX #29 grapheme
// segmentation over the whole text and records the resulting boundaries.
// Paragraph flags are set later by the directional resolver, which owns
// paragraph boundaries.
func classifyBreaks(runes []rune) breakRecord {
	rec := make(breakRecord, len(runes))
	if len(runes) == 0 {
		return rec
	}

	var seg segmenter.Segmenter
	seg.Init(runes)

	lines := seg.LineIterator()
	for lines.Next() {
		rec.markBoundary(lines.Line().Offset, breakLineForward, breakLineBackward)
	}
	rec[len(runes)-1] |= breakLineForward

	graphemes := seg.GraphemeIterator()
	for graphemes.Next() {
		rec.markBoundary(graphemes.Grapheme().Offset, breakCharForward, breakCharBackward)
	}
	rec[len(runes)-1] |= breakCharForward

	return rec
}

// markBoundary records the boundary starting the segment at offset: the
// previous character may break forward across it and the segment's first
// character may break backward to it.
func (r breakRecord) markBoundary(offset int, forward, backward breakFlag) {
	if offset > 0 {
		r[offset-1] |= forward
	}
	r[offset] |= backward
}

// trailingWhitespaceStart returns the index of the first character of the
// whitespace run ending at end, or end itself when [start, end) has no
// trailing whitespace.
func trailingWhitespaceStart(runes []rune, start, end int) int {
	for end > start && unicode.IsSpace(runes[end-1]) {
		end--
	}
	return end
}

// leadingWhitespaceEnd returns the index just past the whitespace run
// starting at start, or start itself when [start, end) has no leading
// whitespace.
func leadingWhitespaceEnd(runes []rune, start, end int) int {
	for start < end && unicode.IsSpace(runes[start]) {
		start++
	}
	return start
}
