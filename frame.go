package typeset

// TextFrame is a rectangle filled with lines. Composition stops when the
// text runs out or the next line no longer fits vertically, so the frame's
// character range may end before the requested one.
type TextFrame struct {
	start, end int
	rect       Rect
	lines      []*TextLine
}

// Start returns the first character index of the frame.
func (f *TextFrame) Start() int { return f.start }

// End returns the character index just past the last line that fit.
func (f *TextFrame) End() int { return f.end }

// Rect returns the rectangle the frame was composed into.
func (f *TextFrame) Rect() Rect { return f.rect }

// Lines returns the frame's lines in top-to-bottom order, each with its
// origin assigned. The slice aliases the frame; callers must not modify it.
func (f *TextFrame) Lines() []*TextLine { return f.lines }

// CreateFrame fills rect with lines from the character range [start, end),
// breaking at the frame width and aligning each line horizontally. Lines are
// stacked by their own ascent and descent; a line whose bottom would cross
// the rectangle is not added.
func (t *Typesetter) CreateFrame(start, end int, rect Rect, align Alignment) (*TextFrame, error) {
	if err := t.checkRange(start, end); err != nil {
		return nil, err
	}
	if rect.Empty() {
		return nil, ErrEmptyFrame
	}

	frameWidth := rect.Width()
	lineStart := start
	lineY := rect.MinY

	var lines []*TextLine
	for lineStart < end {
		lineEnd := t.suggestForwardLineBreak(lineStart, end, frameWidth)
		line := t.makeLine(lineStart, lineEnd)

		if lineY+line.Height() > rect.MaxY {
			break
		}

		line.originX = rect.MinX + line.FlushPenOffset(align, frameWidth)
		line.originY = lineY + line.Ascent()
		lines = append(lines, line)

		lineStart = lineEnd
		lineY += line.Height()
	}

	return &TextFrame{start: start, end: lineStart, rect: rect, lines: lines}, nil
}
