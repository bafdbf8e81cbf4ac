// Package benchmark loads official reference-rate tables (US ICD-10,
// CPT/HCPCS and the Medicare fee schedule; Indian CGHS/PMJAY rates) from
// static JSON files and exposes read-only in-memory lookups. A Store is
// built once at process start and shared across concurrent audit runs;
// it is never mutated after Open returns.
package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// File names expected under the data directory.
const (
	icd10File = "icd10_codes.json"
	cptFile   = "cpt_hcpcs_codes.json"
	feeFile   = "fee_schedule.json"
	cghsFile  = "cghs_rates.json"
	pmjayFile = "pmjay_packages.json"
)

// CodeEntry is one US code record (ICD-10 diagnosis or CPT/HCPCS procedure).
type CodeEntry struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	RVU         float64 `json:"rvu,omitempty"`
	FairPrice   float64 `json:"fair_price,omitempty"`
}

// FeeEntry is one Medicare fee-schedule record.
type FeeEntry struct {
	RVU             float64 `json:"rvu"`
	NationalPayment float64 `json:"national_payment"`
	FairPriceLow    float64 `json:"fair_price_low"`
	FairPriceHigh   float64 `json:"fair_price_high"`
}

// Store holds every benchmark table. All maps and slices are
// immutable-by-convention once Open returns.
type Store struct {
	dataDir string

	icd10 map[string]CodeEntry
	cpt   map[string]CodeEntry
	fees  map[string]FeeEntry

	// Indian procedure index: slice preserves first-seen order so that
	// fuzzy-match tie-breaks are stable; the map serves exact-key lookups.
	procedures []*Procedure
	procByKey  map[string]*Procedure

	usSample    bool // US tables fell back to the built-in sample
	indiaSample bool // Indian index fell back to the built-in sample
}

// Open loads all benchmark tables from dataDir. Missing or corrupt files
// degrade to the built-in sample tables rather than failing: a running
// engine with fewer benchmarks beats a crashed one. Open never returns an
// error for data problems.
func Open(dataDir string, log zerolog.Logger) *Store {
	s := &Store{
		dataDir:   dataDir,
		icd10:     map[string]CodeEntry{},
		cpt:       map[string]CodeEntry{},
		fees:      map[string]FeeEntry{},
		procByKey: map[string]*Procedure{},
	}

	loadJSON(filepath.Join(dataDir, icd10File), &s.icd10, log)
	loadJSON(filepath.Join(dataDir, cptFile), &s.cpt, log)
	loadJSON(filepath.Join(dataDir, feeFile), &s.fees, log)

	var cghs, pmjay map[string]any
	loadJSON(filepath.Join(dataDir, cghsFile), &cghs, log)
	loadJSON(filepath.Join(dataDir, pmjayFile), &pmjay, log)
	s.buildProcedureIndex(cghs, pmjay)

	if len(s.icd10) == 0 && len(s.cpt) == 0 {
		log.Warn().Str("dir", dataDir).Msg("no US code tables found, using built-in sample data")
		s.loadUSSample()
	}
	if len(s.procedures) == 0 {
		log.Warn().Str("dir", dataDir).Msg("no Indian rate tables found, using built-in sample data")
		s.loadIndiaSample()
	}

	log.Info().
		Int("icd10", len(s.icd10)).
		Int("cpt_hcpcs", len(s.cpt)).
		Int("fee_schedule", len(s.fees)).
		Int("procedures", len(s.procedures)).
		Msg("benchmark database loaded")

	return s
}

// loadJSON decodes one table file into out. Problems are logged and the
// target left untouched; absence of a file is not an error.
func loadJSON(path string, out any, log zerolog.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("file", path).Msg("cannot read benchmark file")
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("cannot parse benchmark file")
	}
}

// Procedures returns the Indian procedure index in stable first-seen order.
// Callers must not modify the returned slice.
func (s *Store) Procedures() []*Procedure {
	return s.procedures
}

// Stats describes the loaded database.
type Stats struct {
	ICD10Count       int    `json:"icd10_count"`
	CPTHCPCSCount    int    `json:"cpt_hcpcs_count"`
	FeeScheduleCount int    `json:"fee_schedule_count"`
	ProcedureCount   int    `json:"procedure_count"`
	CGHSCount        int    `json:"cghs_count"`
	PMJAYCount       int    `json:"pmjay_count"`
	DataDir          string `json:"data_dir"`
	USSample         bool   `json:"us_sample_fallback"`
	IndiaSample      bool   `json:"india_sample_fallback"`
}

// Stats returns counts for every loaded table.
func (s *Store) Stats() Stats {
	st := Stats{
		ICD10Count:       len(s.icd10),
		CPTHCPCSCount:    len(s.cpt),
		FeeScheduleCount: len(s.fees),
		ProcedureCount:   len(s.procedures),
		DataDir:          s.dataDir,
		USSample:         s.usSample,
		IndiaSample:      s.indiaSample,
	}
	for _, p := range s.procedures {
		if p.CGHSRate > 0 {
			st.CGHSCount++
		}
		if p.PMJAYRate > 0 {
			st.PMJAYCount++
		}
	}
	return st
}

func (st Stats) String() string {
	return fmt.Sprintf(
		"icd10=%d cpt_hcpcs=%d fee_schedule=%d procedures=%d (cghs=%d pmjay=%d) dir=%s",
		st.ICD10Count, st.CPTHCPCSCount, st.FeeScheduleCount,
		st.ProcedureCount, st.CGHSCount, st.PMJAYCount, st.DataDir)
}
