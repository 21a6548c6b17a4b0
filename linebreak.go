package typeset

// breakMode selects which boundaries a break search may use.
type breakMode uint8

const (
	breakModeCharacter breakMode = iota
	breakModeLine
)

func (m breakMode) forwardFlag() breakFlag {
	if m == breakModeLine {
		return breakLineForward
	}
	return breakCharForward
}

func (m breakMode) backwardFlag() breakFlag {
	if m == breakModeLine {
		return breakLineBackward
	}
	return breakCharBackward
}

// findForwardBreak scans [charStart, charEnd) left to right and returns the
// largest boundary whose measured prefix, excluding trailing whitespace,
// fits within extent. A mandatory paragraph break stops the scan and is
// honored when its segment fits. Returns charStart when no boundary fits.
func (t *Typesetter) findForwardBreak(mode breakMode, charStart, charEnd int, extent float64) int {
	forwardBreak := charStart
	measured := 0.0
	optional := mode.forwardFlag()

	for charIndex := charStart; charIndex < charEnd; charIndex++ {
		flags := t.breaks[charIndex]
		segmentEnd := charIndex + 1

		if flags&breakParagraphForward != 0 {
			measured += t.measureChars(forwardBreak, segmentEnd)
			if measured <= extent {
				forwardBreak = segmentEnd
			}
			break
		}

		if flags&optional != 0 {
			measured += t.measureChars(forwardBreak, segmentEnd)
			if measured > extent {
				// Whitespace adjacent to the boundary adds no visible
				// width; break anyway if that is all that overflows.
				wsStart := trailingWhitespaceStart(t.runes, charStart, segmentEnd)
				wsWidth := t.measureChars(wsStart, segmentEnd)
				if measured-wsWidth <= extent {
					forwardBreak = segmentEnd
				}
				break
			}
			forwardBreak = segmentEnd
		}
	}

	return forwardBreak
}

// findBackwardBreak scans [charStart, charEnd) right to left and returns the
// smallest boundary whose measured suffix, excluding whitespace adjacent to
// the boundary, fits within extent. Returns charEnd when no boundary fits.
func (t *Typesetter) findBackwardBreak(mode breakMode, charStart, charEnd int, extent float64) int {
	backwardBreak := charEnd
	measured := 0.0
	optional := mode.backwardFlag()

	for charIndex := charEnd - 1; charIndex >= charStart; charIndex-- {
		flags := t.breaks[charIndex]
		segmentStart := charIndex

		if flags&breakParagraphBackward != 0 {
			measured += t.measureChars(segmentStart, backwardBreak)
			if measured <= extent {
				backwardBreak = segmentStart
			}
			break
		}

		if flags&optional != 0 {
			measured += t.measureChars(segmentStart, backwardBreak)
			if measured > extent {
				wsEnd := leadingWhitespaceEnd(t.runes, segmentStart, charEnd)
				wsWidth := t.measureChars(segmentStart, wsEnd)
				if measured-wsWidth <= extent {
					backwardBreak = segmentStart
				}
				break
			}
			backwardBreak = segmentStart
		}
	}

	return backwardBreak
}

// suggestForwardCharBreak is the grapheme-boundary break with forced
// progress: when not even one cluster fits, the first cluster is consumed
// regardless of width.
func (t *Typesetter) suggestForwardCharBreak(charStart, charEnd int, extent float64) int {
	forwardBreak := t.findForwardBreak(breakModeCharacter, charStart, charEnd, extent)
	if forwardBreak != charStart {
		return forwardBreak
	}

	for i := charStart; i < charEnd; i++ {
		if t.breaks[i]&breakCharForward != 0 {
			return i + 1
		}
	}
	return min(charStart+1, charEnd)
}

// suggestBackwardCharBreak mirrors suggestForwardCharBreak: when not even
// the last cluster fits, the scan falls back to the start of the last
// cluster so the result still lies on a cluster boundary where one exists.
func (t *Typesetter) suggestBackwardCharBreak(charStart, charEnd int, extent float64) int {
	backwardBreak := t.findBackwardBreak(breakModeCharacter, charStart, charEnd, extent)
	if backwardBreak != charEnd {
		return backwardBreak
	}

	for i := charEnd - 1; i >= charStart; i-- {
		if t.breaks[i]&breakCharBackward != 0 {
			return i
		}
	}
	return max(charEnd-1, charStart)
}

// suggestForwardLineBreak prefers line break opportunities and degrades to
// cluster boundaries when no line opportunity fits.
func (t *Typesetter) suggestForwardLineBreak(charStart, charEnd int, extent float64) int {
	forwardBreak := t.findForwardBreak(breakModeLine, charStart, charEnd, extent)
	if forwardBreak == charStart {
		return t.suggestForwardCharBreak(charStart, charEnd, extent)
	}
	return forwardBreak
}

// suggestBackwardLineBreak mirrors suggestForwardLineBreak.
func (t *Typesetter) suggestBackwardLineBreak(charStart, charEnd int, extent float64) int {
	backwardBreak := t.findBackwardBreak(breakModeLine, charStart, charEnd, extent)
	if backwardBreak == charEnd {
		return t.suggestBackwardCharBreak(charStart, charEnd, extent)
	}
	return backwardBreak
}

// forwardTruncationBreak picks the break routine for a truncation mode.
func (t *Typesetter) forwardTruncationBreak(mode TruncationMode, charStart, charEnd int, extent float64) int {
	if mode == TruncateWord {
		return t.suggestForwardLineBreak(charStart, charEnd, extent)
	}
	return t.suggestForwardCharBreak(charStart, charEnd, extent)
}

// backwardTruncationBreak picks the break routine for a truncation mode.
func (t *Typesetter) backwardTruncationBreak(mode TruncationMode, charStart, charEnd int, extent float64) int {
	if mode == TruncateWord {
		return t.suggestBackwardLineBreak(charStart, charEnd, extent)
	}
	return t.suggestBackwardCharBreak(charStart, charEnd, extent)
}
