package model

import "strings"

// Region identifies the healthcare market a bill belongs to.
type Region string

const (
	RegionUS   Region = "US"
	RegionIN   Region = "IN"
	RegionAuto Region = "AUTO"
)

// ParseRegion maps common spellings onto a Region. Unrecognized values
// (including the empty string) return RegionAuto and ok=false.
func ParseRegion(s string) (Region, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "US", "USA":
		return RegionUS, true
	case "IN", "INDIA":
		return RegionIN, true
	case "AUTO":
		return RegionAuto, true
	}
	return RegionAuto, false
}

// CurrencySymbol returns the display symbol for amounts in this region.
func (r Region) CurrencySymbol() string {
	if r == RegionIN {
		return "₹"
	}
	return "$"
}

// CurrencyCode returns the ISO currency code assumed for this region.
func (r Region) CurrencyCode() string {
	if r == RegionIN {
		return "INR"
	}
	return "USD"
}
