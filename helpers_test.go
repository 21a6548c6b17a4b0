package typeset

import (
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

var (
	testTypefaceOnce sync.Once
	testTypefaceVal  *Typeface
	testTypefaceErr  error
)

// testTypeface parses Go Regular once and shares it across tests. The font
// covers Latin, Cyrillic and Greek; characters outside its coverage shape to
// the missing glyph, which is fine for structural assertions.
func testTypeface(t *testing.T) *Typeface {
	t.Helper()

	testTypefaceOnce.Do(func() {
		testTypefaceVal, testTypefaceErr = NewTypeface(goregular.TTF)
	})
	if testTypefaceErr != nil {
		t.Fatalf("failed to parse test font: %v", testTypefaceErr)
	}
	return testTypefaceVal
}

// newTestTypesetter creates a Typesetter over text with the shared test
// typeface at size 16.
func newTestTypesetter(t *testing.T, text string, opts ...Option) *Typesetter {
	t.Helper()

	ts, err := New(text, testTypeface(t), 16, opts...)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", text, err)
	}
	return ts
}
