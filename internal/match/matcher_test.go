package match

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gyeh/billaudit/internal/benchmark"
)

func TestTokenSortRatio(t *testing.T) {
	if got := TokenSortRatio("Laparoscopic Cholecystectomy", "cholecystectomy LAPAROSCOPIC"); got != 100 {
		t.Errorf("reordered tokens score %d, want 100", got)
	}
	if got := TokenSortRatio("MRI Brain", "MRI Brain"); got != 100 {
		t.Errorf("identical strings score %d, want 100", got)
	}
	if got := TokenSortRatio("", ""); got != 100 {
		t.Errorf("two empty strings score %d, want 100", got)
	}
	if got := TokenSortRatio("appendectomy", "cataract surgery"); got >= 60 {
		t.Errorf("unrelated strings score %d, want below threshold", got)
	}

	partial := TokenSortRatio("CBC blood test", "Complete Blood Count (CBC)")
	if partial <= 0 || partial >= 100 {
		t.Errorf("partial match score %d, want strictly between 0 and 100", partial)
	}
}

func TestBest(t *testing.T) {
	store := benchmark.Open(t.TempDir(), zerolog.Nop())
	m := New(store, DefaultThreshold)

	got, err := m.Best("Laparoscopic Cholecystectomy")
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if got == nil {
		t.Fatal("no match for an indexed description")
	}
	if got.Score != 100 || got.Confidence != 1 {
		t.Errorf("score/confidence = %d/%v, want 100/1", got.Score, got.Confidence)
	}
	if got.Procedure.Description != "Laparoscopic Cholecystectomy" {
		t.Errorf("matched %q", got.Procedure.Description)
	}
}

func TestBestBelowThreshold(t *testing.T) {
	store := benchmark.Open(t.TempDir(), zerolog.Nop())
	m := New(store, DefaultThreshold)

	got, err := m.Best("zzzz qqqq completely unrelated xxxx")
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if got != nil {
		t.Errorf("below-threshold query matched %q (score %d)", got.Procedure.Description, got.Score)
	}
}

func TestBestEmptyQuery(t *testing.T) {
	store := benchmark.Open(t.TempDir(), zerolog.Nop())
	m := New(store, DefaultThreshold)

	if _, err := m.Best("   "); err == nil {
		t.Error("empty query should be an error")
	}
}

func TestBestTieKeepsFirstSeen(t *testing.T) {
	dir := t.TempDir()
	cghs := `{
		"aaa": {"first": {"description": "Knee Surgery", "rate": 100}},
		"bbb": {"second": {"description": "Knee Surgery", "rate": 200}}
	}`
	if err := os.WriteFile(filepath.Join(dir, "cghs_rates.json"), []byte(cghs), 0o644); err != nil {
		t.Fatal(err)
	}
	store := benchmark.Open(dir, zerolog.Nop())
	m := New(store, DefaultThreshold)

	got, err := m.Best("knee surgery")
	if err != nil || got == nil {
		t.Fatalf("Best: %v, %v", got, err)
	}
	if got.Procedure.CGHSRate != 100 {
		t.Errorf("tie resolved to rate %v, want first-seen entry (100)", got.Procedure.CGHSRate)
	}
}

func TestSearchRankingAndLimit(t *testing.T) {
	store := benchmark.Open(t.TempDir(), zerolog.Nop())
	m := New(store, DefaultThreshold)

	matches, err := m.Search("consultation", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Score < matches[i].Score {
			t.Fatalf("matches not ranked: %d before %d", matches[i-1].Score, matches[i].Score)
		}
	}

	if _, err := m.Search("", 3); err == nil {
		t.Error("empty query should be an error")
	}
}

func TestNewClampsThreshold(t *testing.T) {
	store := benchmark.Open(t.TempDir(), zerolog.Nop())
	m := New(store, 500)
	if m.threshold != DefaultThreshold {
		t.Errorf("threshold = %d, want default %d", m.threshold, DefaultThreshold)
	}
}
