package normalize

import "testing"

func TestCode(t *testing.T) {
	cases := map[string]string{
		"  99213 ": "99213",
		"e11.9":    "E11.9",
		"":         "",
		"  ":       "",
	}
	for in, want := range cases {
		if got := Code(in); got != want {
			t.Errorf("Code(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStripDots(t *testing.T) {
	if got := StripDots("E11.9"); got != "E119" {
		t.Errorf("StripDots: got %q", got)
	}
}

func TestDescription(t *testing.T) {
	if got := Description("  Complete   Blood\tCount "); got != "complete blood count" {
		t.Errorf("Description: got %q", got)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(1.005); got != 1.0 && got != 1.01 {
		t.Errorf("Round2(1.005) = %v", got)
	}
	if got := Round2(2.675); got > 2.69 || got < 2.66 {
		t.Errorf("Round2(2.675) = %v", got)
	}
	if got := Round2(10.0/3.0); got != 3.33 {
		t.Errorf("Round2(10/3) = %v, want 3.33", got)
	}
}

func TestAmountsMatch(t *testing.T) {
	if !AmountsMatch(100.00, 100.01, 0.01) {
		t.Error("difference of exactly the tolerance should match")
	}
	if AmountsMatch(100.00, 100.02, 0.01) {
		t.Error("difference above the tolerance should not match")
	}
	if !AmountsMatch(-5, -5, 0) {
		t.Error("equal amounts should match at zero tolerance")
	}
}
