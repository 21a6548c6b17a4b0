package typeset

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies a base text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Alignment specifies the horizontal placement of lines inside a frame.
type Alignment int

const (
	// AlignStart aligns lines to the leading frame edge (default).
	AlignStart Alignment = iota
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignEnd aligns lines to the trailing frame edge.
	AlignEnd
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "Start"
	case AlignCenter:
		return "Center"
	case AlignEnd:
		return "End"
	default:
		return unknownStr
	}
}

// flushFactor maps an alignment to the fraction of leftover line width
// placed before the line: 0 flush-start, 0.5 centered, 1 flush-end.
func (a Alignment) flushFactor() float64 {
	switch a {
	case AlignEnd:
		return 1.0
	case AlignCenter:
		return 0.5
	default:
		return 0.0
	}
}

// TruncationMode selects the boundary kind used to cut a truncated line.
type TruncationMode uint8

const (
	// TruncateWord cuts at line break opportunities, falling back to
	// grapheme boundaries when no word boundary fits.
	TruncateWord TruncationMode = iota
	// TruncateCharacter cuts at grapheme boundaries.
	TruncateCharacter
)

// String returns the string representation of the truncation mode.
func (m TruncationMode) String() string {
	switch m {
	case TruncateWord:
		return "Word"
	case TruncateCharacter:
		return "Character"
	default:
		return unknownStr
	}
}

// TruncationPlace selects where the truncation token is placed.
type TruncationPlace uint8

const (
	// TruncateEnd removes text from the end of the line (default).
	TruncateEnd TruncationPlace = iota
	// TruncateStart removes text from the beginning of the line.
	TruncateStart
	// TruncateMiddle removes text from the middle of the line.
	TruncateMiddle
)

// String returns the string representation of the truncation place.
func (p TruncationPlace) String() string {
	switch p {
	case TruncateEnd:
		return "End"
	case TruncateStart:
		return "Start"
	case TruncateMiddle:
		return "Middle"
	default:
		return unknownStr
	}
}

// Truncation combines a truncation mode and place.
type Truncation struct {
	Mode  TruncationMode
	Place TruncationPlace
}

// String returns the string representation of the truncation.
func (t Truncation) String() string {
	return t.Place.String() + t.Mode.String()
}

// Rect is an axis-aligned rectangle used as a frame target.
type Rect struct {
	// Min is the top-left corner.
	MinX, MinY float64
	// Max is the bottom-right corner.
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}
