// Package typeset performs visual text layout: it turns a character
// sequence plus per-range formatting (typeface, size) into visually
// ordered lines and multi-line frames.
//
// The layout pipeline follows a separation of concerns:
//
//   - Typeface: heavyweight, shared font resource (parses TTF/OTF data)
//   - SpanList: per-range typeface and type size attributes
//   - Typesetter: immutable per-text layout session
//   - TextLine / TextFrame: per-request layout results
//
// A Typesetter resolves break opportunities, bidirectional paragraphs
// and shaped glyph runs once at construction. Line breaking, truncation
// and frame filling are then pure computations over that state, so
// concurrent layout requests against the same Typesetter are safe.
//
// # Example usage
//
//	tf, err := typeset.NewTypefaceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ts, err := typeset.New("Hello, World!", tf, 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	end, _ := ts.SuggestLineBoundary(0, ts.Len(), 120)
//	line, _ := ts.CreateLine(0, end)
//	for _, run := range line.Runs() {
//	    draw(run.Typeface(), run.Size(), run.Glyphs())
//	}
//
// Character indices throughout the API are rune indices into the
// source text, not byte offsets.
//
// Shaping is performed by go-text/typesetting's HarfBuzz port,
// bidirectional analysis by golang.org/x/text/unicode/bidi, and break
// classification by go-text/typesetting's UAX #14 / UAX #29 segmenter.
// Rendering is out of scope: lines expose positioned glyph runs for a
// rasterizer or GPU text pipeline to consume.
package typeset
