package typeset

import "testing"

type typefaceRunResult struct {
	start, end int
	tf         *Typeface
}

func collectTypefaceRuns(s *SpanList, start, end int) []typefaceRunResult {
	var out []typefaceRunResult
	for rng, tf := range s.typefaceRuns(start, end) {
		out = append(out, typefaceRunResult{rng.start, rng.end, tf})
	}
	return out
}

// TestTypefaceRunsOverride tests that later spans win where they overlap
// earlier ones.
func TestTypefaceRunsOverride(t *testing.T) {
	base := &Typeface{}
	accent := &Typeface{}

	spans := NewSpanList().
		AddTypeface(0, 10, base).
		AddTypeface(3, 6, accent)

	got := collectTypefaceRuns(spans, 0, 10)
	want := []typefaceRunResult{
		{0, 3, base},
		{3, 6, accent},
		{6, 10, base},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d runs, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = {%d,%d,%p}, want {%d,%d,%p}",
				i, got[i].start, got[i].end, got[i].tf,
				want[i].start, want[i].end, want[i].tf)
		}
	}
}

// TestTypefaceRunsGap tests that uncovered stretches yield a nil typeface.
func TestTypefaceRunsGap(t *testing.T) {
	tf := &Typeface{}
	spans := NewSpanList().AddTypeface(2, 4, tf)

	got := collectTypefaceRuns(spans, 0, 6)
	want := []typefaceRunResult{
		{0, 2, nil},
		{2, 4, tf},
		{4, 6, nil},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d runs, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestTypefaceRunsSubRange tests querying a window narrower than the spans.
func TestTypefaceRunsSubRange(t *testing.T) {
	tf := &Typeface{}
	spans := NewSpanList().AddTypeface(0, 10, tf)

	got := collectTypefaceRuns(spans, 3, 7)
	if len(got) != 1 || got[0].start != 3 || got[0].end != 7 || got[0].tf != tf {
		t.Errorf("got %+v, want single run {3,7}", got)
	}
}

// TestSizeRuns tests size span resolution with an override and a default gap.
func TestSizeRuns(t *testing.T) {
	spans := NewSpanList().
		AddSize(0, 8, 16).
		AddSize(2, 4, 24)

	type sizeRun struct {
		start, end int
		size       float64
		hasSpan    bool
	}
	var got []sizeRun
	for rng, ss := range spans.sizeRuns(0, 10) {
		sr := sizeRun{start: rng.start, end: rng.end}
		if ss != nil {
			sr.size = ss.Size
			sr.hasSpan = true
		}
		got = append(got, sr)
	}

	want := []sizeRun{
		{0, 2, 16, true},
		{2, 4, 24, true},
		{4, 8, 16, true},
		{8, 10, 0, false},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d runs, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
