package typeset

import (
	"errors"
	"fmt"
)

// Sentinel errors for the typeset package.
var (
	// ErrEmptyText is returned when a Typesetter is constructed from empty text.
	ErrEmptyText = errors.New("typeset: text is empty")

	// ErrEmptyFontData is returned when typeface data is empty.
	ErrEmptyFontData = errors.New("typeset: empty font data")

	// ErrNilTypeface is returned when a nil typeface is supplied.
	ErrNilTypeface = errors.New("typeset: typeface is nil")

	// ErrNilToken is returned when a nil truncation token is supplied.
	ErrNilToken = errors.New("typeset: truncation token is nil")

	// ErrEmptyFrame is returned when a frame rect has no area.
	ErrEmptyFrame = errors.New("typeset: frame rect is empty")

	// ErrNonPositiveWidth is returned when a break suggestion is requested
	// with a max width of zero or less.
	ErrNonPositiveWidth = errors.New("typeset: max width must be positive")
)

// RangeError is returned when a character range is out of bounds or inverted.
type RangeError struct {
	Start  int
	End    int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("typeset: invalid char range [%d..%d) for text of length %d",
		e.Start, e.End, e.Length)
}

// MissingTypefaceError is returned when no typeface span covers a sub-range
// of the text during resolution.
type MissingTypefaceError struct {
	Start int
	End   int
}

func (e *MissingTypefaceError) Error() string {
	return fmt.Sprintf("typeset: no typeface specified for range [%d..%d)", e.Start, e.End)
}

// TokenTooWideError is returned when a truncation token is wider than the
// max width it must fit inside.
type TokenTooWideError struct {
	TokenWidth float64
	MaxWidth   float64
}

func (e *TokenTooWideError) Error() string {
	return fmt.Sprintf("typeset: truncation token width %g exceeds max width %g",
		e.TokenWidth, e.MaxWidth)
}

// ShapingError is returned when the shaping collaborator cannot process a
// sub-range of the text with the resolved typeface.
type ShapingError struct {
	Start int
	End   int
	Err   error
}

func (e *ShapingError) Error() string {
	return fmt.Sprintf("typeset: shaping failed for range [%d..%d): %v", e.Start, e.End, e.Err)
}

func (e *ShapingError) Unwrap() error { return e.Err }
