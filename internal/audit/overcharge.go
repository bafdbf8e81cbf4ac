package audit

import (
	"fmt"

	"github.com/gyeh/billaudit/internal/model"
	"github.com/gyeh/billaudit/internal/pricing"
)

// Excess-over-fair-price percentages mapping to severities. A charge more
// than triple the fair price is critical.
const (
	excessCritical = 200.0
	excessHigh     = 100.0
	excessMedium   = 50.0
)

// checkOvercharges compares each charged line against its fair-price quote.
// The pricing strategy hides the US/India split: exact code lookups on one
// side, fuzzy procedure matching with hospital-type and city-tier scaling
// on the other. A line with no benchmark contributes nothing.
func (e *Engine) checkOvercharges(bill *model.ParsedBill, reg model.Region, c *collector, sym string) {
	var strat pricing.Strategy
	if reg == model.RegionIN {
		strat = pricing.NewIndia(e.matcher, e.cfg.OverchargeMultiplier, bill.HospitalType, bill.City)
	} else {
		strat = pricing.NewUS(e.store, e.cfg.OverchargeMultiplier)
	}

	for i := range bill.LineItems {
		item := &bill.LineItems[i]
		if item.Total == 0 {
			continue
		}

		quote, ok := strat.Quote(item.Code, item.Description, item.Qty())
		if !ok {
			e.log.Debug().
				Str("description", item.Description).
				Str("code", item.Code).
				Msg("no pricing benchmark for line item")
			continue
		}

		if item.Total <= quote.Threshold {
			continue
		}

		excess := item.Total - quote.Expected
		var excessPct float64
		if quote.Expected > 0 {
			excessPct = excess / quote.Expected * 100
		}

		c.add(model.AuditIssue{
			Type:     model.IssueOvercharge,
			Severity: overchargeSeverity(excessPct),
			Description: fmt.Sprintf(
				"Potential overcharge for '%s': %s is %.0f%% above fair price %s",
				quote.Reference, amount(sym, item.Total), excessPct, amount(sym, quote.Expected)),
			Field:        fmt.Sprintf("line_items[%d]", i),
			Expected:     "<=" + amount(sym, quote.Expected),
			Actual:       amount(sym, item.Total),
			AmountImpact: excess,
		})
	}
}

func overchargeSeverity(excessPct float64) model.Severity {
	switch {
	case excessPct > excessCritical:
		return model.SeverityCritical
	case excessPct > excessHigh:
		return model.SeverityHigh
	case excessPct > excessMedium:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}
