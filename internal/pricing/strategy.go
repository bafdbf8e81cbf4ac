// Package pricing resolves the expected fair price for a bill line item.
// The Strategy interface keeps the audit engine's overcharge check
// region-agnostic: the US variant works from exact code lookups, the India
// variant from fuzzy-matched procedure descriptions. Adding a third market
// means adding a strategy, not editing the engine.
package pricing

// Quote is a resolved fair-price expectation for one line item.
type Quote struct {
	Expected   float64 // fair total for the full line quantity
	Threshold  float64 // charges strictly above this are flagged
	Reference  string  // benchmark description the quote is based on
	Confidence float64 // 1.0 for exact code lookups, match score for fuzzy
}

// Strategy resolves a fair-price quote for a line item. ok=false means no
// benchmark data exists for the item; that is an expected outcome, never an
// error.
type Strategy interface {
	Quote(code, description string, quantity float64) (Quote, bool)
}
