package typeset

import "testing"

// TestFindForwardBreakNoFit tests that the scan reports no boundary when
// nothing fits, leaving forced progress to the suggest layer.
func TestFindForwardBreakNoFit(t *testing.T) {
	ts := newTestTypesetter(t, "Hello World")

	if got := ts.findForwardBreak(breakModeLine, 0, 11, 0.001); got != 0 {
		t.Errorf("findForwardBreak = %d, want 0", got)
	}
}

// TestFindBackwardBreak tests the right-to-left scan used by start
// truncation, including whitespace exclusion at the cut.
func TestFindBackwardBreak(t *testing.T) {
	ts := newTestTypesetter(t, "Hello World")
	worldWidth := ts.measureChars(6, 11)

	if got := ts.findBackwardBreak(breakModeLine, 0, 11, worldWidth+0.1); got != 6 {
		t.Errorf("findBackwardBreak = %d, want 6", got)
	}
	if got := ts.findBackwardBreak(breakModeLine, 0, 11, 0.001); got != 11 {
		t.Errorf("findBackwardBreak with no fit = %d, want 11", got)
	}
}

// TestFindBackwardBreakMandatory tests that a paragraph start is honored by
// the backward scan.
func TestFindBackwardBreakMandatory(t *testing.T) {
	ts := newTestTypesetter(t, "ab\ncd")

	if got := ts.findBackwardBreak(breakModeLine, 0, 5, 1e6); got != 3 {
		t.Errorf("findBackwardBreak = %d, want 3 (paragraph start)", got)
	}
}

// TestSuggestBackwardCharBreakFallback tests forced progress from the end:
// when nothing fits the cut falls on the last cluster boundary, never
// inside a combining sequence.
func TestSuggestBackwardCharBreakFallback(t *testing.T) {
	plain := newTestTypesetter(t, "abc")
	if got := plain.suggestBackwardCharBreak(0, 3, 0.001); got != 2 {
		t.Errorf("suggestBackwardCharBreak = %d, want 2", got)
	}

	// "ab" + "e" with combining acute: clusters [0,1), [1,2), [2,4).
	marked := newTestTypesetter(t, "abe\u0301")
	if got := marked.suggestBackwardCharBreak(0, 4, 0.001); got != 2 {
		t.Errorf("suggestBackwardCharBreak = %d, want 2 (cluster start, not 3)", got)
	}
}

// TestSuggestBackwardLineBreakFallsBack tests degradation to cluster
// boundaries when no line opportunity fits.
func TestSuggestBackwardLineBreakFallsBack(t *testing.T) {
	ts := newTestTypesetter(t, "Hello")

	if got := ts.suggestBackwardLineBreak(0, 5, 0.001); got != 4 {
		t.Errorf("suggestBackwardLineBreak = %d, want 4", got)
	}
}

// TestSuggestForwardLineBreakProgress tests that a single oversized word
// still yields a boundary past the start.
func TestSuggestForwardLineBreakProgress(t *testing.T) {
	ts := newTestTypesetter(t, "Hello")

	if got := ts.suggestForwardLineBreak(0, 5, 0.001); got != 1 {
		t.Errorf("suggestForwardLineBreak = %d, want 1", got)
	}
}
