package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestOpenEmptyDirFallsBackToSamples(t *testing.T) {
	s := Open(t.TempDir(), zerolog.Nop())
	st := s.Stats()
	if !st.USSample || !st.IndiaSample {
		t.Fatalf("expected sample fallback, got %+v", st)
	}
	if st.ICD10Count == 0 || st.CPTHCPCSCount == 0 || st.ProcedureCount == 0 {
		t.Errorf("sample tables empty: %+v", st)
	}
}

func TestOpenLoadsDataFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, icd10File, `{"E11.9": {"description": "Type 2 diabetes", "category": "Endocrine"}}`)
	writeFile(t, dir, cptFile, `{"99213": {"description": "Office visit", "category": "E/M", "fair_price": 110}}`)
	writeFile(t, dir, feeFile, `{"99213": {"rvu": 1.3, "national_payment": 110}}`)
	writeFile(t, dir, cghsFile, `{
		"meta": {"year": 2024},
		"consultations": {"specialist": {"description": "Specialist Consultation", "rate": 700}}
	}`)
	writeFile(t, dir, pmjayFile, `{
		"packages": {"surgery": {"appendectomy": {"description": "Appendectomy", "package_rate": 20000}}}
	}`)

	s := Open(dir, zerolog.Nop())
	st := s.Stats()
	if st.USSample || st.IndiaSample {
		t.Fatalf("unexpected sample fallback: %+v", st)
	}
	if st.ICD10Count != 1 || st.CPTHCPCSCount != 1 || st.FeeScheduleCount != 1 {
		t.Errorf("US table counts wrong: %+v", st)
	}
	if st.ProcedureCount != 2 || st.CGHSCount != 1 || st.PMJAYCount != 1 {
		t.Errorf("procedure counts wrong: %+v", st)
	}
}

func TestOpenCorruptFileDegrades(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, cptFile, `{not json`)

	s := Open(dir, zerolog.Nop())
	if !s.Stats().USSample {
		t.Error("corrupt table should degrade to sample data")
	}
}

func TestNestedCGHSSubcategories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, cghsFile, `{
		"diagnostics": {
			"imaging": {
				"mri_brain": {"description": "MRI Brain", "rate": 5000, "max_private": 14000},
				"xray_chest": {"description": "X-Ray Chest", "rate": 230}
			},
			"cbc": {"description": "Complete Blood Count", "rate": 110}
		}
	}`)

	s := Open(dir, zerolog.Nop())
	procs := s.Procedures()
	if len(procs) != 3 {
		t.Fatalf("got %d procedures, want 3", len(procs))
	}
	var mri *Procedure
	for _, p := range procs {
		if p.Name == "mri_brain" {
			mri = p
		}
	}
	if mri == nil {
		t.Fatal("nested mri_brain not indexed")
	}
	if mri.CGHSRate != 5000 || mri.MaxPrivate != 14000 {
		t.Errorf("mri rates = %v/%v", mri.CGHSRate, mri.MaxPrivate)
	}
	if mri.Category != "diagnostics/imaging" {
		t.Errorf("category = %q", mri.Category)
	}
}

func TestPMJAYMergesOntoCGHS(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, cghsFile, `{
		"surgical": {"lap_chole": {"description": "Laparoscopic Cholecystectomy", "rate": 23100}}
	}`)
	writeFile(t, dir, pmjayFile, `{
		"packages": {"general_surgery": {"laparoscopic_cholecystectomy": {"description": "Laparoscopic Cholecystectomy", "package_rate": 27000}}}
	}`)

	s := Open(dir, zerolog.Nop())
	procs := s.Procedures()
	if len(procs) != 1 {
		t.Fatalf("got %d procedures, want 1 merged entry", len(procs))
	}
	p := procs[0]
	if p.Source != "cghs+pmjay" {
		t.Errorf("source = %q, want cghs+pmjay", p.Source)
	}
	if p.CGHSRate != 23100 || p.PMJAYRate != 27000 {
		t.Errorf("rates = %v/%v", p.CGHSRate, p.PMJAYRate)
	}
}

func TestProcedureIndexOrderStable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, cghsFile, `{
		"ward": {"icu_day": {"description": "ICU per day", "rate": 5400}},
		"consultations": {"specialist": {"description": "Specialist Consultation", "rate": 700}},
		"surgical": {"appendectomy": {"description": "Appendectomy", "rate": 17250}}
	}`)

	first := Open(dir, zerolog.Nop()).Procedures()
	second := Open(dir, zerolog.Nop()).Procedures()
	if len(first) != len(second) {
		t.Fatalf("index sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Key != second[i].Key {
			t.Fatalf("index order differs at %d: %s vs %s", i, first[i].Key, second[i].Key)
		}
	}
	// Sorted category walk: consultations before surgical before ward.
	if first[0].Name != "specialist" || first[2].Name != "icu_day" {
		t.Errorf("unexpected order: %s, %s, %s", first[0].Name, first[1].Name, first[2].Name)
	}
}
