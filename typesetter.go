package typeset

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"unicode/utf8"

	"github.com/go-text/typesetting/language"
)

// defaultTypeSize is the type size used for characters not covered by a
// size span.
const defaultTypeSize = 16.0

type config struct {
	direction Direction
	typeSize  float64
	lang      language.Language
}

// Option configures a Typesetter at construction.
type Option func(*config)

// WithBaseDirection sets the base direction applied to paragraphs without a
// strong directional character. The default is DirectionLTR.
func WithBaseDirection(d Direction) Option {
	return func(c *config) { c.direction = d }
}

// WithDefaultTypeSize sets the type size used where no size span applies.
func WithDefaultTypeSize(size float64) Option {
	return func(c *config) { c.typeSize = size }
}

// WithLanguage sets the BCP 47 language tag passed to the shaper, which can
// affect language-specific glyph selection.
func WithLanguage(tag string) Option {
	return func(c *config) { c.lang = language.NewLanguage(tag) }
}

// Typesetter analyzes a single text once at construction (break
// classification, directional resolution, shaping) and then serves any
// number of boundary, line, truncation and frame requests against that
// analysis. All positions in its API are rune indices into Text.
//
// A Typesetter is immutable after construction and safe for concurrent use.
type Typesetter struct {
	text       string
	runes      []rune
	spans      *SpanList
	breaks     breakRecord
	paragraphs []*bidiParagraph
	glyphRuns  []*GlyphRun
}

// New creates a Typesetter for text rendered entirely with one typeface at
// one size.
func New(text string, tf *Typeface, size float64, opts ...Option) (*Typesetter, error) {
	if tf == nil {
		return nil, ErrNilTypeface
	}
	n := utf8.RuneCountInString(text)
	spans := NewSpanList().AddTypeface(0, n, tf).AddSize(0, n, size)
	return NewAttributed(text, spans, opts...)
}

// NewAttributed creates a Typesetter for text with per-range formatting.
// Every character must be covered by a typeface span.
func NewAttributed(text string, spans *SpanList, opts ...Option) (*Typesetter, error) {
	if len(text) == 0 {
		return nil, ErrEmptyText
	}
	if spans == nil {
		spans = NewSpanList()
	}

	cfg := config{
		direction: DirectionLTR,
		typeSize:  defaultTypeSize,
		lang:      language.NewLanguage("en"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.typeSize < 0 {
		cfg.typeSize = 0
	}

	t := &Typesetter{
		text:  text,
		runes: []rune(text),
		spans: spans,
	}
	t.breaks = classifyBreaks(t.runes)

	paragraphs, err := resolveParagraphs(text, cfg.direction)
	if err != nil {
		return nil, err
	}
	t.paragraphs = paragraphs

	if err := t.shapeAll(cfg); err != nil {
		return nil, err
	}
	t.verifyCoverage()

	Logger().Debug("typesetter created",
		slog.Int("chars", len(t.runes)),
		slog.Int("paragraphs", len(t.paragraphs)),
		slog.Int("glyphRuns", len(t.glyphRuns)))
	return t, nil
}

// shapeAll splits every directional run by typeface and size spans and
// shapes each piece, producing the glyph run list in logical order. It also
// stamps paragraph break flags now that paragraph boundaries are known.
func (t *Typesetter) shapeAll(cfg config) error {
	engine := newShapingEngine(cfg.lang)

	for _, bp := range t.paragraphs {
		t.breaks[bp.start] |= breakParagraphBackward
		t.breaks[bp.end-1] |= breakParagraphForward

		for _, run := range bp.runs {
			for rng, tf := range t.spans.typefaceRuns(run.start, run.end) {
				if tf == nil {
					return &MissingTypefaceError{Start: rng.start, End: rng.end}
				}
				for srng, ss := range t.spans.sizeRuns(rng.start, rng.end) {
					size := cfg.typeSize
					if ss != nil {
						size = ss.Size
					}
					if size < 0 {
						size = 0
					}
					gr := engine.shapeRun(t.runes, srng.start, srng.end, run.level, tf, size)
					if len(gr.Glyphs) == 0 {
						return &ShapingError{
							Start: srng.start,
							End:   srng.end,
							Err:   errors.New("shaper produced no glyphs"),
						}
					}
					t.glyphRuns = append(t.glyphRuns, gr)
				}
			}
		}
	}
	return nil
}

// verifyCoverage panics unless the glyph runs exactly partition the text.
// Every downstream lookup relies on this.
func (t *Typesetter) verifyCoverage() {
	pos := 0
	for _, gr := range t.glyphRuns {
		if gr.Start != pos {
			panic(fmt.Sprintf("typeset: glyph run starts at %d, want %d", gr.Start, pos))
		}
		pos = gr.End
	}
	if pos != len(t.runes) {
		panic(fmt.Sprintf("typeset: glyph runs cover %d of %d characters", pos, len(t.runes)))
	}
}

// Text returns the source text.
func (t *Typesetter) Text() string { return t.text }

// Len returns the length of the text in characters (runes).
func (t *Typesetter) Len() int { return len(t.runes) }

// checkRange validates a half-open character range against the text.
func (t *Typesetter) checkRange(start, end int) error {
	if start < 0 || end > len(t.runes) || start >= end {
		return &RangeError{Start: start, End: end, Length: len(t.runes)}
	}
	return nil
}

// paragraphIndex returns the index of the paragraph containing pos.
func (t *Typesetter) paragraphIndex(pos int) int {
	return sort.Search(len(t.paragraphs), func(i int) bool {
		return t.paragraphs[i].end > pos
	})
}

// glyphRunIndex returns the index of the glyph run containing pos.
func (t *Typesetter) glyphRunIndex(pos int) int {
	return sort.Search(len(t.glyphRuns), func(i int) bool {
		return t.glyphRuns[i].End > pos
	})
}

// paragraphLevel returns the base level of the paragraph containing pos.
func (t *Typesetter) paragraphLevel(pos int) uint8 {
	return t.paragraphs[t.paragraphIndex(pos)].baseLevel
}

// measureChars sums the advances of the glyphs attributed to the character
// range [start, end), crossing glyph run boundaries as needed.
func (t *Typesetter) measureChars(start, end int) float64 {
	var width float64
	for start < end {
		gr := t.glyphRuns[t.glyphRunIndex(start)]
		segEnd := min(end, gr.End)
		width += gr.measure(start, segEnd)
		start = segEnd
	}
	return width
}

// SuggestCharBoundary returns the position of the last grapheme cluster
// boundary in [start, end) that keeps the measured prefix within maxWidth.
// At least one cluster is always consumed, so the result is strictly greater
// than start even when nothing fits.
func (t *Typesetter) SuggestCharBoundary(start, end int, maxWidth float64) (int, error) {
	if err := t.checkRange(start, end); err != nil {
		return 0, err
	}
	if maxWidth <= 0 {
		return 0, ErrNonPositiveWidth
	}
	return t.suggestForwardCharBreak(start, end, maxWidth), nil
}

// SuggestLineBoundary returns the position of the last line break
// opportunity in [start, end) that keeps the measured prefix within
// maxWidth; trailing whitespace before the boundary is excluded from the
// measurement. A mandatory break inside the range is always honored. When
// not even one unbreakable segment fits, the boundary falls back to a
// grapheme cluster boundary so forward progress is still guaranteed.
func (t *Typesetter) SuggestLineBoundary(start, end int, maxWidth float64) (int, error) {
	if err := t.checkRange(start, end); err != nil {
		return 0, err
	}
	if maxWidth <= 0 {
		return 0, ErrNonPositiveWidth
	}
	return t.suggestForwardLineBreak(start, end, maxWidth), nil
}

// CreateLine lays out the character range [start, end) as a single line,
// composing its runs in visual order.
func (t *Typesetter) CreateLine(start, end int) (*TextLine, error) {
	if err := t.checkRange(start, end); err != nil {
		return nil, err
	}
	return t.makeLine(start, end), nil
}

func (t *Typesetter) makeLine(start, end int) *TextLine {
	var runs []TextRun
	for vr := range t.continuousRuns(start, end) {
		runs = t.appendVisualRuns(vr.start, vr.end, runs)
	}
	return newTextLine(start, end, t.paragraphLevel(start), runs)
}
