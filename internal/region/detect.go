// Package region classifies a bill as US or Indian market using a fixed
// priority cascade of heuristics. The cascade is deterministic: the first
// rule that fires wins, and explicit hints always beat inference.
package region

import (
	"math"
	"strings"

	"github.com/gyeh/billaudit/internal/benchmark"
	"github.com/gyeh/billaudit/internal/model"
)

// indianCities is the metro/major-city set used by the city-name rule.
var indianCities = map[string]bool{
	"delhi": true, "new delhi": true, "mumbai": true, "bombay": true,
	"bangalore": true, "bengaluru": true, "chennai": true, "madras": true,
	"kolkata": true, "calcutta": true, "hyderabad": true, "pune": true,
	"ahmedabad": true, "jaipur": true, "lucknow": true, "surat": true,
	"kanpur": true, "nagpur": true, "indore": true, "thane": true,
	"bhopal": true, "patna": true, "gurgaon": true, "gurugram": true,
	"noida": true, "ghaziabad": true, "chandigarh": true,
}

// indianHospitalTerms appear in hospital-type strings only for Indian
// facilities.
var indianHospitalTerms = []string{"cghs", "government", "ayushman", "pmjay"}

// gstRates are the Indian GST brackets as fractional rates.
var gstRates = []float64{0.05, 0.12, 0.18, 0.28}

// Rule 8 cutoff: totals above this magnitude lean INR, reflecting the
// rupee's smaller unit value. A last-resort heuristic only.
const largeAmountCutoff = 50000

// Detect classifies the bill's market. override short-circuits everything
// when it names a concrete region; otherwise the cascade runs: explicit
// bill region, currency, city, hospital type, GST-shaped tax rate, CPT-shaped
// line codes, amount magnitude, then a US default.
func Detect(bill *model.ParsedBill, override model.Region) model.Region {
	if override == model.RegionUS || override == model.RegionIN {
		return override
	}

	if r, ok := model.ParseRegion(bill.Region); ok && r != model.RegionAuto {
		return r
	}

	switch strings.ToUpper(strings.TrimSpace(bill.Currency)) {
	case "INR":
		return model.RegionIN
	case "USD":
		return model.RegionUS
	}

	if indianCities[strings.ToLower(strings.TrimSpace(bill.City))] {
		return model.RegionIN
	}

	hospType := strings.ToLower(bill.HospitalType)
	for _, term := range indianHospitalTerms {
		if strings.Contains(hospType, term) {
			return model.RegionIN
		}
	}

	if bill.TaxRate != nil && isGSTRate(*bill.TaxRate) {
		return model.RegionIN
	}

	for i := range bill.LineItems {
		if benchmark.DetectCodeType(bill.LineItems[i].Code) == benchmark.CodeCPT {
			return model.RegionUS
		}
	}

	if bill.TotalAmount != nil && *bill.TotalAmount > largeAmountCutoff {
		return model.RegionIN
	}

	return model.RegionUS
}

func isGSTRate(rate float64) bool {
	for _, g := range gstRates {
		if math.Abs(rate-g) < 1e-9 {
			return true
		}
	}
	return false
}
