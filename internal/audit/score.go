package audit

import "github.com/gyeh/billaudit/internal/model"

// Point deductions per issue severity. The score starts at 100 and is
// floored at 0.
var deductions = map[model.Severity]int{
	model.SeverityCritical: 25,
	model.SeverityHigh:     15,
	model.SeverityMedium:   8,
	model.SeverityLow:      3,
}

// deductionUnknown covers issues carrying a severity outside the enum.
const deductionUnknown = 5

// Score converts an issue list into a 0-100 bill health score. It is
// deterministic and monotonic: adding issues never raises the score.
func Score(issues []model.AuditIssue) int {
	total := 0
	for _, iss := range issues {
		d, ok := deductions[iss.Severity]
		if !ok {
			d = deductionUnknown
		}
		total += d
	}
	if total > 100 {
		return 0
	}
	return 100 - total
}
