package typeset

import "slices"

// CreateTruncatedLine lays out [start, end) as a single line constrained to
// maxWidth, replacing the overflowing part with the runs of token at the
// requested truncation place. The token is usually a line created from an
// ellipsis with CreateLine on a separate Typesetter.
//
// When the range already fits in the width left over for it, the line is
// composed without the token, exactly as CreateLine would.
func (t *Typesetter) CreateTruncatedLine(start, end int, maxWidth float64, trunc Truncation, token *TextLine) (*TextLine, error) {
	if err := t.checkRange(start, end); err != nil {
		return nil, err
	}
	if maxWidth <= 0 {
		return nil, ErrNonPositiveWidth
	}
	if token == nil {
		return nil, ErrNilToken
	}
	if token.Width() > maxWidth {
		return nil, &TokenTooWideError{TokenWidth: token.Width(), MaxWidth: maxWidth}
	}

	tokenlessWidth := maxWidth - token.Width()

	switch trunc.Place {
	case TruncateStart:
		return t.startTruncatedLine(start, end, tokenlessWidth, trunc.Mode, token), nil
	case TruncateMiddle:
		return t.middleTruncatedLine(start, end, tokenlessWidth, trunc.Mode, token), nil
	default:
		return t.endTruncatedLine(start, end, tokenlessWidth, trunc.Mode, token), nil
	}
}

// startTruncatedLine keeps the rightmost-fitting suffix of the range and
// places the token at the reading start of the line.
func (t *Typesetter) startTruncatedLine(charStart, charEnd int, tokenlessWidth float64, mode TruncationMode, token *TextLine) *TextLine {
	truncatedStart := t.backwardTruncationBreak(mode, charStart, charEnd, tokenlessWidth)
	if truncatedStart == charStart {
		return t.makeLine(charStart, charEnd)
	}

	var runs []TextRun
	for vr := range t.continuousRuns(truncatedStart, charEnd) {
		runs = t.appendVisualRuns(vr.start, vr.end, runs)
	}

	insertIndex := 0
	if anchor := slices.IndexFunc(runs, func(r TextRun) bool { return r.start == truncatedStart }); anchor >= 0 {
		insertIndex = anchor
		piece := &runs[anchor]
		if piece.run.Start < truncatedStart {
			// The character before the cut belongs to the same glyph run;
			// follow the run's direction.
			if piece.run.Level&1 == 1 {
				insertIndex++
			}
		} else if t.paragraphLevel(truncatedStart)&1 == 1 {
			// Otherwise follow the paragraph direction.
			insertIndex++
		}
	}
	runs = spliceTokenRuns(runs, insertIndex, token)

	return newTextLine(truncatedStart, charEnd, t.paragraphLevel(truncatedStart), runs)
}

// middleTruncatedLine keeps a fitting prefix and suffix of the range and
// places the token between them. Whitespace adjacent to the cut is dropped
// since the token stands in for it.
func (t *Typesetter) middleTruncatedLine(charStart, charEnd int, tokenlessWidth float64, mode TruncationMode, token *TextLine) *TextLine {
	halfWidth := tokenlessWidth / 2
	firstMidEnd := t.forwardTruncationBreak(mode, charStart, charEnd, halfWidth)
	secondMidStart := t.backwardTruncationBreak(mode, charStart, charEnd, halfWidth)

	if firstMidEnd >= secondMidStart {
		// The halves meet or overlap: everything fits.
		return t.makeLine(charStart, charEnd)
	}

	firstMidEnd = trailingWhitespaceStart(t.runes, charStart, firstMidEnd)
	secondMidStart = leadingWhitespaceEnd(t.runes, secondMidStart, charEnd)

	var runs []TextRun
	for vr := range t.continuousRuns(charStart, firstMidEnd) {
		runs = t.appendVisualRuns(vr.start, vr.end, runs)
	}
	runs = spliceTokenRuns(runs, len(runs), token)
	for vr := range t.continuousRuns(secondMidStart, charEnd) {
		runs = t.appendVisualRuns(vr.start, vr.end, runs)
	}

	return newTextLine(charStart, charEnd, t.paragraphLevel(charStart), runs)
}

// endTruncatedLine keeps the leftmost-fitting prefix of the range and places
// the token at the reading end of the line. Trailing whitespace before the
// cut is dropped since the token stands in for it.
func (t *Typesetter) endTruncatedLine(charStart, charEnd int, tokenlessWidth float64, mode TruncationMode, token *TextLine) *TextLine {
	truncatedEnd := t.forwardTruncationBreak(mode, charStart, charEnd, tokenlessWidth)
	if truncatedEnd == charEnd {
		return t.makeLine(charStart, charEnd)
	}

	truncatedEnd = trailingWhitespaceStart(t.runes, charStart, truncatedEnd)

	var runs []TextRun
	for vr := range t.continuousRuns(charStart, truncatedEnd) {
		runs = t.appendVisualRuns(vr.start, vr.end, runs)
	}

	insertIndex := 0
	if anchor := slices.IndexFunc(runs, func(r TextRun) bool { return r.end == truncatedEnd }); anchor >= 0 {
		insertIndex = anchor
		piece := &runs[anchor]
		if piece.run.End > truncatedEnd {
			// The character after the cut belongs to the same glyph run;
			// follow the run's direction.
			if piece.run.Level&1 == 0 {
				insertIndex++
			}
		} else if t.paragraphLevel(charStart)&1 == 0 {
			// Otherwise follow the paragraph direction.
			insertIndex++
		}
	}
	runs = spliceTokenRuns(runs, insertIndex, token)

	return newTextLine(charStart, truncatedEnd, t.paragraphLevel(charStart), runs)
}

// spliceTokenRuns inserts the token line's runs at insertIndex, keeping
// their own visual order.
func spliceTokenRuns(runs []TextRun, insertIndex int, token *TextLine) []TextRun {
	return slices.Insert(runs, insertIndex, token.Runs()...)
}
