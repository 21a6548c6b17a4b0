package typeset

import (
	"slices"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// bidiRun is a maximal sub-range of one paragraph at a single directional
// level: even levels read left-to-right, odd levels right-to-left.
type bidiRun struct {
	start, end int
	level      uint8
}

// bidiParagraph is one paragraph of the text as partitioned by the bidi
// engine: a contiguous character range with a base level and its logical
// directional runs. Paragraphs exactly partition the text.
type bidiParagraph struct {
	start, end int
	baseLevel  uint8
	runs       []bidiRun // logical order, contiguous
}

// resolveParagraphs partitions text into bidi paragraphs. The engine
// consumes one paragraph (including its separator) per pass; the default
// base direction applies to paragraphs without a strong directional
// character.
func resolveParagraphs(text string, base Direction) ([]*bidiParagraph, error) {
	defaultDir := bidi.LeftToRight
	defaultLevel := uint8(0)
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
		defaultLevel = 1
	}

	var paragraphs []*bidiParagraph
	byteOff, runeOff := 0, 0

	for byteOff < len(text) {
		var p bidi.Paragraph
		n, err := p.SetString(text[byteOff:], bidi.DefaultDirection(defaultDir))
		if err != nil {
			return nil, err
		}
		paraText := text[byteOff : byteOff+n]
		paraLen := utf8.RuneCountInString(paraText)

		bp := &bidiParagraph{
			start:     runeOff,
			end:       runeOff + paraLen,
			baseLevel: firstStrongLevel(paraText, defaultLevel),
		}

		ordering, err := p.Order()
		if err != nil {
			return nil, err
		}

		for i := 0; i < ordering.NumRuns(); i++ {
			run := ordering.Run(i)
			s, e := run.Pos() // paragraph-relative rune indices, end inclusive
			level := uint8(0)
			if run.Direction() == bidi.RightToLeft {
				level = 1
			}
			// The engine resolves runs up to the paragraph separator but
			// reports the final run as extending through the remaining
			// text; clamp it and let the separator join that run.
			bp.runs = append(bp.runs, bidiRun{
				start: runeOff + s,
				end:   min(runeOff+e+1, bp.end),
				level: level,
			})
		}
		if len(bp.runs) == 0 {
			// Separator-only paragraph: no resolvable characters.
			bp.runs = []bidiRun{{start: bp.start, end: bp.end, level: bp.baseLevel}}
		}

		paragraphs = append(paragraphs, bp)
		byteOff += n
		runeOff += paraLen
	}

	return paragraphs, nil
}

// firstStrongLevel derives the paragraph base level from the first strong
// directional character, or returns def when the paragraph has none.
func firstStrongLevel(text string, def uint8) uint8 {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return 0
		case bidi.R, bidi.AL:
			return 1
		}
	}
	return def
}

// visualRuns returns the directional runs overlapping [start, end) in
// visual order, clipped to the range. With the two-level model the visual
// sequence equals the logical one for left-to-right paragraphs and its
// reverse for right-to-left paragraphs; character-order reversal inside
// right-to-left runs is the shaper's concern.
func (p *bidiParagraph) visualRuns(start, end int) []bidiRun {
	var out []bidiRun
	for _, r := range p.runs {
		if r.end <= start || r.start >= end {
			continue
		}
		out = append(out, bidiRun{
			start: max(r.start, start),
			end:   min(r.end, end),
			level: r.level,
		})
	}
	if p.baseLevel&1 == 1 {
		slices.Reverse(out)
	}
	return out
}
