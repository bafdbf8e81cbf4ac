package audit

import (
	"fmt"
	"strings"

	"github.com/gyeh/billaudit/internal/model"
	"github.com/gyeh/billaudit/internal/normalize"
)

// checkMissingFields flags bill-level fields the audit cannot do without.
func (e *Engine) checkMissingFields(bill *model.ParsedBill, c *collector) {
	missing := func(field string) {
		c.add(model.AuditIssue{
			Type:        model.IssueMissingField,
			Severity:    model.SeverityMedium,
			Description: fmt.Sprintf("Required field '%s' is missing or empty", field),
			Field:       field,
		})
	}

	if bill.TotalAmount == nil {
		missing("total_amount")
	}
	if strings.TrimSpace(bill.InvoiceNumber) == "" {
		missing("invoice_number")
	}
	if strings.TrimSpace(bill.PatientName) == "" {
		missing("patient_name")
	}
	if strings.TrimSpace(bill.BillDate) == "" {
		missing("bill_date")
	}
}

// Keyword-overlap window: the leading words of a benchmark description
// versus the billed description. No shared word suggests a miscoded line.
const (
	benchmarkKeywords = 3
	billedKeywords    = 5
)

// checkMedicalCodes validates CPT/HCPCS/ICD-10 codes against the benchmark
// tables and cross-checks descriptions for miscoding. US bills only.
func (e *Engine) checkMedicalCodes(items []model.LineItem, c *collector) {
	for i := range items {
		item := &items[i]
		code := normalize.Code(item.Code)
		desc := strings.TrimSpace(item.Description)

		if code == "" {
			if desc != "" {
				c.add(model.AuditIssue{
					Type:        model.IssueMissingField,
					Severity:    model.SeverityLow,
					Description: fmt.Sprintf("No procedure code for line item: '%s'", desc),
					Field:       fmt.Sprintf("line_items[%d].code", i),
				})
			}
			continue
		}

		info := e.store.ValidateCode(code)
		if !info.Valid {
			c.add(model.AuditIssue{
				Type:     model.IssueUnknownCode,
				Severity: model.SeverityLow,
				Description: fmt.Sprintf(
					"Code '%s' not found in medical code database; may be a custom/facility code or a data entry error", code),
				Field:  fmt.Sprintf("line_items[%d].code", i),
				Actual: code,
			})
			continue
		}

		if desc == "" || info.Description == "" {
			continue
		}
		keywords := firstWords(normalize.Description(info.Description), benchmarkKeywords)
		billed := firstWords(normalize.Description(desc), billedKeywords)
		if len(keywords) >= 2 && !anyOverlap(keywords, billed) {
			c.add(model.AuditIssue{
				Type:     model.IssueInvalidCode,
				Severity: model.SeverityMedium,
				Description: fmt.Sprintf(
					"Code '%s' (%s) may not match the described service: '%s'",
					code, info.Description, desc),
				Field:    fmt.Sprintf("line_items[%d]", i),
				Expected: info.Description,
				Actual:   desc,
			})
		}
	}
}

// checkQuantities flags impossible and suspicious quantities. Quantities
// above the threshold are a human-review hint, not an error.
func (e *Engine) checkQuantities(items []model.LineItem, c *collector) {
	for i := range items {
		item := &items[i]
		if item.Quantity == nil {
			continue
		}
		qty := *item.Quantity

		if qty <= 0 {
			c.add(model.AuditIssue{
				Type:        model.IssueQuantityError,
				Severity:    model.SeverityHigh,
				Description: fmt.Sprintf("Invalid quantity (%g) for '%s'", qty, item.Description),
				Field:       fmt.Sprintf("line_items[%d].quantity", i),
				Expected:    ">0",
				Actual:      fmt.Sprintf("%g", qty),
			})
			continue
		}

		if qty > e.cfg.HighQuantityThreshold {
			c.add(model.AuditIssue{
				Type:     model.IssueQuantityError,
				Severity: model.SeverityLow,
				Description: fmt.Sprintf(
					"Unusually high quantity (%g) for '%s', verify this is correct",
					qty, item.Description),
				Field:    fmt.Sprintf("line_items[%d].quantity", i),
				Expected: fmt.Sprintf("1-%g", e.cfg.HighQuantityThreshold),
				Actual:   fmt.Sprintf("%g", qty),
			})
		}
	}
}

func firstWords(s string, n int) []string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return words
}

func anyOverlap(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, w := range a {
		set[w] = true
	}
	for _, w := range b {
		if set[w] {
			return true
		}
	}
	return false
}
