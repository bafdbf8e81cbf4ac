package audit

import (
	"fmt"
	"math"

	"github.com/gyeh/billaudit/internal/model"
	"github.com/gyeh/billaudit/internal/normalize"
)

// checkArithmetic reconciles line-item sums, the stated subtotal, and the
// grand total. A wrong grand total is the most consequential error type a
// bill can carry and is graded critical.
func (e *Engine) checkArithmetic(bill *model.ParsedBill, c *collector, sym string) {
	tol := e.cfg.ArithmeticTolerance

	var lineSum float64
	for i := range bill.LineItems {
		lineSum += bill.LineItems[i].Total
	}

	if bill.Subtotal != nil && len(bill.LineItems) > 0 {
		if !normalize.AmountsMatch(lineSum, *bill.Subtotal, tol) {
			diff := math.Abs(lineSum - *bill.Subtotal)
			c.add(model.AuditIssue{
				Type:     model.IssueArithmeticMismatch,
				Severity: model.SeverityHigh,
				Description: fmt.Sprintf(
					"Line items sum (%s) does not match subtotal (%s)",
					amount(sym, lineSum), amount(sym, *bill.Subtotal)),
				Field:        "subtotal",
				Expected:     amount(sym, lineSum),
				Actual:       amount(sym, *bill.Subtotal),
				AmountImpact: diff,
			})
		}
	}

	if bill.TotalAmount != nil {
		base := lineSum
		if bill.Subtotal != nil && *bill.Subtotal != 0 {
			base = *bill.Subtotal
		}
		calculated := base + deref(bill.TaxAmount) - deref(bill.Discount) - deref(bill.InsurancePaid)

		if calculated > 0 && !normalize.AmountsMatch(calculated, *bill.TotalAmount, tol) {
			diff := math.Abs(calculated - *bill.TotalAmount)
			c.add(model.AuditIssue{
				Type:     model.IssueArithmeticMismatch,
				Severity: model.SeverityCritical,
				Description: fmt.Sprintf(
					"Calculated total (%s) does not match stated total (%s)",
					amount(sym, calculated), amount(sym, *bill.TotalAmount)),
				Field:        "total_amount",
				Expected:     amount(sym, calculated),
				Actual:       amount(sym, *bill.TotalAmount),
				AmountImpact: diff,
			})
		}
	}

	for i := range bill.LineItems {
		item := &bill.LineItems[i]
		qty := item.Qty()
		if qty == 0 || item.UnitPrice == nil || *item.UnitPrice == 0 {
			continue
		}
		expected := qty * *item.UnitPrice
		if !normalize.AmountsMatch(expected, item.Total, tol) {
			diff := math.Abs(expected - item.Total)
			c.add(model.AuditIssue{
				Type:     model.IssueArithmeticMismatch,
				Severity: model.SeverityMedium,
				Description: fmt.Sprintf(
					"Line item '%s': %g x %s does not equal %s",
					item.Description, qty, amount(sym, *item.UnitPrice), amount(sym, item.Total)),
				Field:        fmt.Sprintf("line_items[%d]", i),
				Expected:     amount(sym, expected),
				Actual:       amount(sym, item.Total),
				AmountImpact: diff,
			})
		}
	}
}

// checkTax verifies the tax computation and that the rate itself is sane
// for medical billing.
func (e *Engine) checkTax(bill *model.ParsedBill, c *collector, sym string) {
	tol := e.cfg.ArithmeticTolerance

	if bill.TaxAmount != nil && bill.TaxRate != nil && bill.Subtotal != nil && *bill.Subtotal != 0 {
		expected := *bill.Subtotal * *bill.TaxRate
		if !normalize.AmountsMatch(expected, *bill.TaxAmount, tol) {
			diff := math.Abs(expected - *bill.TaxAmount)
			c.add(model.AuditIssue{
				Type:     model.IssueTaxMismatch,
				Severity: model.SeverityHigh,
				Description: fmt.Sprintf(
					"Tax calculation mismatch: %s x %.1f%% = %s, but stated tax is %s",
					amount(sym, *bill.Subtotal), *bill.TaxRate*100,
					amount(sym, expected), amount(sym, *bill.TaxAmount)),
				Field:        "tax_amount",
				Expected:     amount(sym, expected),
				Actual:       amount(sym, *bill.TaxAmount),
				AmountImpact: diff,
			})
		}
	}

	if bill.TaxRate != nil {
		rate := *bill.TaxRate
		if rate < e.cfg.MinTaxRate || rate > e.cfg.MaxTaxRate {
			c.add(model.AuditIssue{
				Type:     model.IssueTaxMismatch,
				Severity: model.SeverityMedium,
				Description: fmt.Sprintf(
					"Tax rate %.1f%% is outside normal range (%.0f%%-%.0f%%)",
					rate*100, e.cfg.MinTaxRate*100, e.cfg.MaxTaxRate*100),
				Field:    "tax_rate",
				Expected: fmt.Sprintf("%.0f%%-%.0f%%", e.cfg.MinTaxRate*100, e.cfg.MaxTaxRate*100),
				Actual:   fmt.Sprintf("%.1f%%", rate*100),
			})
		}
	}

	if bill.TaxRate == nil && bill.TaxAmount != nil && *bill.TaxAmount != 0 &&
		bill.Subtotal != nil && *bill.Subtotal != 0 {
		implied := *bill.TaxAmount / *bill.Subtotal
		if implied > e.cfg.MaxTaxRate {
			c.add(model.AuditIssue{
				Type:     model.IssueTaxMismatch,
				Severity: model.SeverityMedium,
				Description: fmt.Sprintf(
					"Implied tax rate (%.1f%%) seems high for medical billing", implied*100),
				Field: "tax_amount",
			})
		}
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
