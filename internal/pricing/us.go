package pricing

import (
	"github.com/gyeh/billaudit/internal/benchmark"
	"github.com/gyeh/billaudit/internal/normalize"
)

// legacyThresholds are per-code flag thresholds used when the fee schedule
// has no entry for a code. They predate the benchmark database and are kept
// as a safety net for degraded deployments.
var legacyThresholds = map[string]float64{
	// Office visits
	"99211": 50, "99212": 100, "99213": 175, "99214": 250, "99215": 350,
	// Lab tests
	"85025": 75, "80053": 150, "80061": 100, "81001": 50,
	// Imaging
	"71046": 300, "70553": 2500, "72148": 2000,
}

// legacyDefaultThreshold applies to coded items with no benchmark at all.
const legacyDefaultThreshold = 500

// US prices line items by exact CPT/HCPCS lookup against the Medicare fee
// schedule.
type US struct {
	store      *benchmark.Store
	multiplier float64
}

// NewUS builds the US strategy. multiplier is the overcharge threshold
// multiple applied to the fair median.
func NewUS(store *benchmark.Store, multiplier float64) *US {
	return &US{store: store, multiplier: multiplier}
}

// Quote resolves the fair price for a coded US line item. The per-unit
// charge is compared against the fair median, so the quote scales the
// median by quantity. Items without a code have no US benchmark.
func (s *US) Quote(code, description string, quantity float64) (Quote, bool) {
	code = normalize.Code(code)
	if code == "" {
		return Quote{}, false
	}
	if quantity <= 0 {
		quantity = 1
	}

	if price, ok := s.store.FairPrice(code); ok {
		expected := price.FairMedian * quantity
		ref := description
		if desc, ok := s.store.CodeDescription(code); ok {
			ref = desc
		}
		return Quote{
			Expected:   expected,
			Threshold:  expected * s.multiplier,
			Reference:  ref,
			Confidence: 1,
		}, true
	}

	// Legacy fallback: flat threshold, no fair-price band.
	threshold, ok := legacyThresholds[code]
	if !ok {
		threshold = legacyDefaultThreshold
	}
	adjusted := threshold * quantity
	return Quote{
		Expected:   adjusted,
		Threshold:  adjusted,
		Reference:  description,
		Confidence: 1,
	}, true
}
