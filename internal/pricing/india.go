package pricing

import (
	"strings"

	"github.com/gyeh/billaudit/internal/match"
)

// Hospital-type multipliers over the government reference rate. Private and
// corporate hospitals legitimately charge a multiple of CGHS rates.
var hospitalMultipliers = map[string]float64{
	"government":      1.0,
	"cghs_empaneled":  1.2,
	"private":         2.0,
	"corporate":       3.0,
	"nabh_accredited": 2.5,
}

// City-tier multipliers: metro markets run hotter than small towns.
var cityMultipliers = map[string]float64{
	"metro": 1.5,
	"tier1": 1.2,
	"tier2": 1.0,
	"tier3": 0.8,
}

var metroCities = map[string]bool{
	"delhi": true, "new delhi": true, "mumbai": true, "bombay": true,
	"bangalore": true, "bengaluru": true, "chennai": true, "madras": true,
	"kolkata": true, "calcutta": true, "hyderabad": true, "pune": true,
	"ahmedabad": true, "gurgaon": true, "gurugram": true, "noida": true,
	"ghaziabad": true,
}

var tier1Cities = map[string]bool{
	"jaipur": true, "lucknow": true, "kanpur": true, "nagpur": true,
	"indore": true, "thane": true, "bhopal": true, "patna": true,
	"vadodara": true, "ludhiana": true, "agra": true, "nashik": true,
	"coimbatore": true, "kochi": true, "visakhapatnam": true,
	"chandigarh": true, "surat": true,
}

// NormalizeHospitalType maps a free-text hospital-type string onto one of
// the multiplier classes. Unrecognized or empty input defaults to private.
func NormalizeHospitalType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "government", "govt", "public":
		return "government"
	case "cghs", "cghs_empaneled", "empaneled":
		return "cghs_empaneled"
	case "corporate", "chain":
		return "corporate"
	case "nabh", "nabh_accredited", "accredited":
		return "nabh_accredited"
	default:
		return "private"
	}
}

// CityTier classifies a city for pricing. Explicit tier labels are honored
// first; otherwise the metro and tier-1 sets apply and everything else is
// tier2.
func CityTier(city string) string {
	c := strings.ToLower(strings.TrimSpace(city))
	if _, ok := cityMultipliers[c]; ok {
		return c
	}
	if metroCities[c] {
		return "metro"
	}
	if tier1Cities[c] {
		return "tier1"
	}
	return "tier2"
}

// HospitalMultiplier returns the expected-price multiplier for a hospital
// type string.
func HospitalMultiplier(hospitalType string) float64 {
	return hospitalMultipliers[NormalizeHospitalType(hospitalType)]
}

// CityMultiplier returns the expected-price multiplier for a city.
func CityMultiplier(city string) float64 {
	return cityMultipliers[CityTier(city)]
}

// India prices line items by fuzzy-matching descriptions against the
// CGHS/PMJAY procedure index and scaling the government base rate by
// hospital type and city tier.
type India struct {
	matcher      *match.Matcher
	multiplier   float64
	hospitalMult float64
	cityMult     float64
}

// NewIndia builds the India strategy for one bill's hospital type and city.
func NewIndia(matcher *match.Matcher, multiplier float64, hospitalType, city string) *India {
	return &India{
		matcher:      matcher,
		multiplier:   multiplier,
		hospitalMult: HospitalMultiplier(hospitalType),
		cityMult:     CityMultiplier(city),
	}
}

// Quote fuzzy-matches the description and scales the matched base rate.
// Indian package rates already cover the full procedure, so quantity does
// not scale the expectation. ok=false when the description is blank or no
// procedure matches above the threshold.
func (s *India) Quote(code, description string, quantity float64) (Quote, bool) {
	if strings.TrimSpace(description) == "" {
		return Quote{}, false
	}

	m, err := s.matcher.Best(description)
	if err != nil || m == nil {
		return Quote{}, false
	}

	low, median, _ := m.Procedure.Band()
	base := low
	if base == 0 {
		base = median
	}
	if base == 0 {
		return Quote{}, false
	}

	expected := base * s.hospitalMult * s.cityMult
	return Quote{
		Expected:   expected,
		Threshold:  expected * s.multiplier,
		Reference:  m.Procedure.Description,
		Confidence: m.Confidence,
	}, true
}
