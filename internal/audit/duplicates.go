package audit

import (
	"fmt"

	"github.com/gyeh/billaudit/internal/model"
	"github.com/gyeh/billaudit/internal/normalize"
)

// checkDuplicates groups line items by (code, normalized description) and
// flags every group billed more than once. The impact is the cost of all
// occurrences beyond the first.
func (e *Engine) checkDuplicates(items []model.LineItem, c *collector) {
	if len(items) == 0 {
		return
	}

	type group struct {
		count int
		first *model.LineItem
	}
	counts := make(map[string]*group, len(items))
	order := make([]string, 0, len(items))

	for i := range items {
		key := normalize.Code(items[i].Code) + "|" + normalize.Description(items[i].Description)
		g, ok := counts[key]
		if !ok {
			g = &group{first: &items[i]}
			counts[key] = g
			order = append(order, key)
		}
		g.count++
	}

	for _, key := range order {
		g := counts[key]
		if g.count < 2 {
			continue
		}
		impact := g.first.Total * float64(g.count-1)
		c.add(model.AuditIssue{
			Type:     model.IssueDuplicateCharge,
			Severity: model.SeverityHigh,
			Description: fmt.Sprintf(
				"Duplicate charge detected: '%s' appears %d times",
				g.first.Description, g.count),
			Field:        "line_items",
			Expected:     "1",
			Actual:       fmt.Sprintf("%d", g.count),
			AmountImpact: impact,
		})
	}
}
