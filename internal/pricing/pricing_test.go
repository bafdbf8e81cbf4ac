package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gyeh/billaudit/internal/benchmark"
	"github.com/gyeh/billaudit/internal/match"
)

func TestNormalizeHospitalType(t *testing.T) {
	cases := map[string]string{
		"government": "government",
		"Govt":       "government",
		"public":     "government",
		"cghs":       "cghs_empaneled",
		"empaneled":  "cghs_empaneled",
		"corporate":  "corporate",
		"chain":      "corporate",
		"NABH":       "nabh_accredited",
		"private":    "private",
		"":           "private",
		"clinic":     "private",
	}
	for in, want := range cases {
		if got := NormalizeHospitalType(in); got != want {
			t.Errorf("NormalizeHospitalType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCityTier(t *testing.T) {
	cases := map[string]string{
		"Mumbai":     "metro",
		"NEW DELHI":  "metro",
		"Jaipur":     "tier1",
		"Mysore":     "tier2",
		"":           "tier2",
		"tier3":      "tier3", // explicit tier label honored
		"metro":      "metro",
		"Chandigarh": "tier1",
	}
	for in, want := range cases {
		if got := CityTier(in); got != want {
			t.Errorf("CityTier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMultipliers(t *testing.T) {
	if got := HospitalMultiplier("govt"); got != 1.0 {
		t.Errorf("government multiplier = %v, want 1.0", got)
	}
	if got := HospitalMultiplier(""); got != 2.0 {
		t.Errorf("default hospital multiplier = %v, want 2.0 (private)", got)
	}
	if got := CityMultiplier("Mumbai"); got != 1.5 {
		t.Errorf("metro multiplier = %v, want 1.5", got)
	}
	if got := CityMultiplier("somewhere"); got != 1.0 {
		t.Errorf("tier2 multiplier = %v, want 1.0", got)
	}
}

func TestUSQuoteFromFeeSchedule(t *testing.T) {
	store := benchmark.Open(t.TempDir(), zerolog.Nop())
	s := NewUS(store, 1.5)

	q, ok := s.Quote("99214", "Office visit", 1)
	if !ok {
		t.Fatal("no quote for 99214")
	}
	if q.Expected != 165 || q.Threshold != 247.5 {
		t.Errorf("quote = %v/%v, want 165/247.5", q.Expected, q.Threshold)
	}
	if q.Confidence != 1 {
		t.Errorf("confidence = %v, want 1", q.Confidence)
	}

	q, ok = s.Quote("99214", "Office visit", 2)
	if !ok || q.Expected != 330 {
		t.Errorf("quantity-scaled quote = %v, want 330", q.Expected)
	}
}

func TestUSQuoteLegacyDefault(t *testing.T) {
	store := benchmark.Open(t.TempDir(), zerolog.Nop())
	s := NewUS(store, 1.5)

	q, ok := s.Quote("99999", "Mystery procedure", 1)
	if !ok {
		t.Fatal("coded item should always quote")
	}
	if q.Expected != 500 || q.Threshold != 500 {
		t.Errorf("legacy default quote = %v/%v, want 500/500", q.Expected, q.Threshold)
	}
}

func TestUSQuoteLegacyPerCode(t *testing.T) {
	// A store whose only table is a CPT entry without a fair price forces
	// the per-code legacy threshold path.
	dir := t.TempDir()
	cpt := `{"99213": {"description": "Office visit", "category": "E/M"}}`
	if err := os.WriteFile(filepath.Join(dir, "cpt_hcpcs_codes.json"), []byte(cpt), 0o644); err != nil {
		t.Fatal(err)
	}
	store := benchmark.Open(dir, zerolog.Nop())
	s := NewUS(store, 1.5)

	q, ok := s.Quote("99213", "Office visit", 1)
	if !ok {
		t.Fatal("no quote")
	}
	if q.Expected != 175 || q.Threshold != 175 {
		t.Errorf("legacy per-code quote = %v/%v, want 175/175", q.Expected, q.Threshold)
	}
}

func TestUSQuoteNoCode(t *testing.T) {
	store := benchmark.Open(t.TempDir(), zerolog.Nop())
	s := NewUS(store, 1.5)
	if _, ok := s.Quote("", "Uncoded service", 1); ok {
		t.Error("uncoded item should not quote")
	}
}

func TestIndiaQuote(t *testing.T) {
	store := benchmark.Open(t.TempDir(), zerolog.Nop())
	m := match.New(store, match.DefaultThreshold)

	s := NewIndia(m, 1.5, "corporate", "Mumbai")
	q, ok := s.Quote("", "Laparoscopic Cholecystectomy", 1)
	if !ok {
		t.Fatal("no quote for an indexed procedure")
	}
	// PMJAY base 27000 x corporate 3.0 x metro 1.5.
	if q.Expected != 121500 {
		t.Errorf("expected = %v, want 121500", q.Expected)
	}
	if q.Threshold != 182250 {
		t.Errorf("threshold = %v, want 182250", q.Threshold)
	}
	if q.Confidence != 1 {
		t.Errorf("confidence = %v, want 1", q.Confidence)
	}

	s = NewIndia(m, 1.5, "government", "tier3")
	q, ok = s.Quote("", "Laparoscopic Cholecystectomy", 1)
	if !ok || q.Expected != 27000*1.0*0.8 {
		t.Errorf("government/tier3 expected = %v, want 21600", q.Expected)
	}
}

func TestIndiaQuoteNoMatch(t *testing.T) {
	store := benchmark.Open(t.TempDir(), zerolog.Nop())
	m := match.New(store, match.DefaultThreshold)
	s := NewIndia(m, 1.5, "private", "")

	if _, ok := s.Quote("", "zzzz qqqq unmatched xxxx", 1); ok {
		t.Error("unmatched description should not quote")
	}
	if _, ok := s.Quote("", "   ", 1); ok {
		t.Error("blank description should not quote")
	}
}

func TestIndiaQuoteIgnoresQuantity(t *testing.T) {
	store := benchmark.Open(t.TempDir(), zerolog.Nop())
	m := match.New(store, match.DefaultThreshold)
	s := NewIndia(m, 1.5, "government", "tier2")

	q1, _ := s.Quote("", "Laparoscopic Cholecystectomy", 1)
	q3, _ := s.Quote("", "Laparoscopic Cholecystectomy", 3)
	if q1.Expected != q3.Expected {
		t.Errorf("package rate scaled by quantity: %v vs %v", q1.Expected, q3.Expected)
	}
}
