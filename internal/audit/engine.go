// Package audit runs a fixed, ordered sequence of independent checks over
// one parsed bill and aggregates the findings into a score and issue list.
// Every check is total: internal failures degrade to "no issue reported"
// for that check instead of aborting the run. The engine holds no per-run
// state and is safe to share across concurrent audits.
package audit

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gyeh/billaudit/internal/benchmark"
	"github.com/gyeh/billaudit/internal/config"
	"github.com/gyeh/billaudit/internal/match"
	"github.com/gyeh/billaudit/internal/model"
	"github.com/gyeh/billaudit/internal/region"
)

// Engine audits parsed bills against the benchmark store.
type Engine struct {
	store   *benchmark.Store
	matcher *match.Matcher
	cfg     *config.Config
	log     zerolog.Logger
}

// New builds an Engine. The store and matcher are read-only and shared; the
// config is captured by reference and must not change during audits.
func New(store *benchmark.Store, matcher *match.Matcher, log zerolog.Logger, cfg *config.Config) *Engine {
	return &Engine{store: store, matcher: matcher, cfg: cfg, log: log}
}

// Audit runs every check over the bill and returns the aggregated result.
// It never fails: a bill with nothing to check scores 100. Checks run in a
// fixed order so issue IDs are reproducible for identical input.
func (e *Engine) Audit(bill *model.ParsedBill) *model.AuditResult {
	reg := region.Detect(bill, e.cfg.RegionOverride())
	sym := reg.CurrencySymbol()

	e.log.Info().
		Str("region", string(reg)).
		Str("currency", reg.CurrencyCode()).
		Int("line_items", len(bill.LineItems)).
		Msg("starting audit")

	c := newCollector()

	e.checkMissingFields(bill, c)
	if reg == model.RegionUS || e.cfg.DuplicateAllRegions {
		e.checkDuplicates(bill.LineItems, c)
	}
	if reg == model.RegionUS {
		e.checkMedicalCodes(bill.LineItems, c)
	}
	e.checkArithmetic(bill, c, sym)
	e.checkTax(bill, c, sym)
	e.checkOvercharges(bill, reg, c, sym)
	e.checkQuantities(bill.LineItems, c)

	result := &model.AuditResult{
		Issues:      c.issues,
		Score:       Score(c.issues),
		TotalIssues: len(c.issues),
		Region:      reg,
		Currency:    reg.CurrencyCode(),
	}
	for _, iss := range c.issues {
		result.PotentialSavings += iss.AmountImpact
		switch iss.Severity {
		case model.SeverityCritical:
			result.CriticalCount++
		case model.SeverityHigh:
			result.HighCount++
		case model.SeverityMedium:
			result.MediumCount++
		case model.SeverityLow:
			result.LowCount++
		}
	}

	e.log.Info().
		Int("score", result.Score).
		Int("issues", result.TotalIssues).
		Float64("potential_savings", result.PotentialSavings).
		Msg("audit complete")

	return result
}

// amount formats a monetary value in the bill's currency: whole rupees for
// INR, cents for USD.
func amount(sym string, v float64) string {
	if sym == "₹" {
		return fmt.Sprintf("%s%.0f", sym, v)
	}
	return fmt.Sprintf("%s%.2f", sym, v)
}
