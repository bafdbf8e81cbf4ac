package audit

import "github.com/gyeh/billaudit/internal/model"

// collector accumulates issues for one run, assigning sequence IDs in
// detection order.
type collector struct {
	issues []model.AuditIssue
	nextID int
}

func newCollector() *collector {
	return &collector{issues: make([]model.AuditIssue, 0, 8)}
}

func (c *collector) add(iss model.AuditIssue) {
	c.nextID++
	iss.ID = c.nextID
	c.issues = append(c.issues, iss)
}
