package typeset

import "testing"

// TestDirectionString tests Direction.String method.
func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{DirectionLTR, "LTR"},
		{DirectionRTL, "RTL"},
		{Direction(99), unknownStr},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("Direction(%d).String() = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

// TestAlignmentString tests Alignment.String method.
func TestAlignmentString(t *testing.T) {
	tests := []struct {
		a    Alignment
		want string
	}{
		{AlignStart, "Start"},
		{AlignCenter, "Center"},
		{AlignEnd, "End"},
		{Alignment(99), unknownStr},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.a.String(); got != tt.want {
				t.Errorf("Alignment(%d).String() = %q, want %q", tt.a, got, tt.want)
			}
		})
	}
}

// TestAlignmentFlushFactor tests the alignment to flush factor mapping.
func TestAlignmentFlushFactor(t *testing.T) {
	tests := []struct {
		a    Alignment
		want float64
	}{
		{AlignStart, 0},
		{AlignCenter, 0.5},
		{AlignEnd, 1},
	}

	for _, tt := range tests {
		t.Run(tt.a.String(), func(t *testing.T) {
			if got := tt.a.flushFactor(); got != tt.want {
				t.Errorf("flushFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestTruncationString tests the truncation enum String methods.
func TestTruncationString(t *testing.T) {
	if got := (Truncation{Mode: TruncateWord, Place: TruncateEnd}).String(); got != "EndWord" {
		t.Errorf("Truncation.String() = %q, want %q", got, "EndWord")
	}
	if got := (Truncation{Mode: TruncateCharacter, Place: TruncateMiddle}).String(); got != "MiddleCharacter" {
		t.Errorf("Truncation.String() = %q, want %q", got, "MiddleCharacter")
	}
	if got := TruncationMode(99).String(); got != unknownStr {
		t.Errorf("TruncationMode(99).String() = %q, want %q", got, unknownStr)
	}
	if got := TruncationPlace(99).String(); got != unknownStr {
		t.Errorf("TruncationPlace(99).String() = %q, want %q", got, unknownStr)
	}
}

// TestRect tests Rect geometry helpers.
func TestRect(t *testing.T) {
	r := Rect{MinX: 10, MinY: 20, MaxX: 110, MaxY: 70}
	if got := r.Width(); got != 100 {
		t.Errorf("Width() = %v, want 100", got)
	}
	if got := r.Height(); got != 50 {
		t.Errorf("Height() = %v, want 50", got)
	}
	if r.Empty() {
		t.Error("Empty() = true for a non-empty rect")
	}
	if !(Rect{MinX: 5, MinY: 5, MaxX: 5, MaxY: 10}).Empty() {
		t.Error("Empty() = false for a zero-width rect")
	}
	if !(Rect{MinX: 0, MinY: 10, MaxX: 10, MaxY: 10}).Empty() {
		t.Error("Empty() = false for a zero-height rect")
	}
}
