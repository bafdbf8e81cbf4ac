package benchmark

import (
	"strings"
	"unicode"

	"github.com/gyeh/billaudit/internal/normalize"
)

// CodeType is the lexical class of a US medical code.
type CodeType string

const (
	CodeICD10   CodeType = "icd10" // diagnosis codes
	CodeCPT     CodeType = "cpt"   // AMA procedure codes
	CodeHCPCS   CodeType = "hcpcs" // HCPCS Level II
	CodeUnknown CodeType = "unknown"
)

// hcpcsPrefixes are the section letters used by HCPCS Level II codes.
const hcpcsPrefixes = "ABCDEGHJKLMPQRSTV"

// DetectCodeType classifies a code purely from its lexical shape. Callers
// never tag codes with an explicit type: a 5-digit numeric is CPT, a HCPCS
// section letter plus exactly four digits is HCPCS Level II, and any other
// letter+digit shape (optionally dotted) is ICD-10. Undotted ICD-10 codes
// that happen to have the HCPCS shape are indistinguishable and classify
// as HCPCS.
func DetectCodeType(code string) CodeType {
	code = normalize.Code(code)
	if code == "" {
		return CodeUnknown
	}

	if len(code) == 5 && allDigits(code) {
		return CodeCPT
	}

	if len(code) == 5 && allDigits(code[1:]) &&
		strings.ContainsRune(hcpcsPrefixes, rune(code[0])) {
		return CodeHCPCS
	}

	if len(code) >= 3 && isLetter(code[0]) && isDigit(code[1]) {
		return CodeICD10
	}

	return CodeUnknown
}

// CodeInfo is the result of validating a US medical code.
type CodeInfo struct {
	Code        string   `json:"code"`
	Type        CodeType `json:"code_type"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Valid       bool     `json:"is_valid"`
}

// ValidateCode looks a code up in the appropriate US table. Absence from
// the database is not an error: it is reported as Valid=false and left to
// the caller to decide whether it matters.
func (s *Store) ValidateCode(code string) CodeInfo {
	code = normalize.Code(code)
	if code == "" {
		return CodeInfo{Type: CodeUnknown, Description: "empty code"}
	}

	ct := DetectCodeType(code)
	info := CodeInfo{Code: code, Type: ct}

	switch ct {
	case CodeICD10:
		entry, ok := s.icd10[code]
		if !ok {
			entry, ok = s.icd10[normalize.StripDots(code)]
		}
		if ok {
			info.Description = entry.Description
			info.Category = entry.Category
			info.Valid = true
			return info
		}
	case CodeCPT, CodeHCPCS:
		if entry, ok := s.cpt[code]; ok {
			info.Description = entry.Description
			info.Category = entry.Category
			info.Valid = true
			return info
		}
	}

	info.Description = "code not found in database"
	return info
}

// CodeDescription returns the benchmark description for a valid code, or
// ok=false when the code is unknown.
func (s *Store) CodeDescription(code string) (string, bool) {
	info := s.ValidateCode(code)
	if !info.Valid {
		return "", false
	}
	return info.Description, true
}

// PriceInfo is the fair-price band for a US procedure code.
type PriceInfo struct {
	Code         string   `json:"code"`
	FairLow      float64  `json:"fair_price_low"`
	FairMedian   float64  `json:"fair_price_median"`
	FairHigh     float64  `json:"fair_price_high"`
	MedicareRate *float64 `json:"medicare_rate,omitempty"`
	RVU          float64  `json:"rvu,omitempty"`
}

// Band ratios applied when a table carries only a single reference price.
// The median is treated as fair; -40%/+50% bounds the plausible range.
const (
	fairLowRatio  = 0.6
	fairHighRatio = 1.5
)

// FairPrice returns the fair-price band for a CPT/HCPCS code, preferring
// the Medicare fee schedule and falling back to the per-code fair_price in
// the CPT/HCPCS table. ok=false means no pricing data exists for the code.
func (s *Store) FairPrice(code string) (PriceInfo, bool) {
	code = normalize.Code(code)
	if code == "" {
		return PriceInfo{}, false
	}

	if fee, ok := s.fees[code]; ok {
		p := PriceInfo{
			Code:       code,
			FairMedian: fee.NationalPayment,
			FairLow:    fee.FairPriceLow,
			FairHigh:   fee.FairPriceHigh,
			RVU:        fee.RVU,
		}
		rate := fee.NationalPayment
		p.MedicareRate = &rate
		if p.FairLow == 0 {
			p.FairLow = fee.NationalPayment * fairLowRatio
		}
		if p.FairHigh == 0 {
			p.FairHigh = fee.NationalPayment * fairHighRatio
		}
		return p, true
	}

	if entry, ok := s.cpt[code]; ok && entry.FairPrice > 0 {
		return PriceInfo{
			Code:       code,
			FairLow:    entry.FairPrice * fairLowRatio,
			FairMedian: entry.FairPrice,
			FairHigh:   entry.FairPrice * fairHighRatio,
			RVU:        entry.RVU,
		}, true
	}

	return PriceInfo{}, false
}

func isLetter(b byte) bool { return unicode.IsLetter(rune(b)) }
func isDigit(b byte) bool  { return unicode.IsDigit(rune(b)) }

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
