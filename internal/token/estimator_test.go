package token

import "testing"

func TestEstimator_Count(t *testing.T) {
	e := NewEstimator()
	if got := e.Count(""); got != 0 {
		t.Errorf("empty text: got %d, want 0", got)
	}
	if got := e.Count("one two three"); got != 3 {
		t.Errorf("three short words: got %d, want 3", got)
	}
	// Long words contribute extra tokens.
	if got := e.Count("internationalization"); got < 2 {
		t.Errorf("long word: got %d, want >= 2", got)
	}
	if got := e.Count("  \n\t  "); got != 0 {
		t.Errorf("whitespace only: got %d, want 0", got)
	}
}

func TestEstimator_Monotonic(t *testing.T) {
	e := NewEstimator()
	short := e.Count("alpha beta")
	long := e.Count("alpha beta gamma delta")
	if long <= short {
		t.Errorf("longer text should count more tokens: %d <= %d", long, short)
	}
}
