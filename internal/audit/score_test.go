package audit

import (
	"testing"

	"github.com/gyeh/billaudit/internal/model"
)

func TestScoreEmpty(t *testing.T) {
	if got := Score(nil); got != 100 {
		t.Errorf("Score(nil) = %d, want 100", got)
	}
}

func TestScoreDeductions(t *testing.T) {
	issues := []model.AuditIssue{
		{Severity: model.SeverityCritical},
		{Severity: model.SeverityHigh},
		{Severity: model.SeverityMedium},
		{Severity: model.SeverityLow},
	}
	if got := Score(issues); got != 100-25-15-8-3 {
		t.Errorf("Score = %d, want 49", got)
	}
}

func TestScoreUnknownSeverity(t *testing.T) {
	issues := []model.AuditIssue{{Severity: "weird"}}
	if got := Score(issues); got != 95 {
		t.Errorf("Score = %d, want 95", got)
	}
}

func TestScoreFloorsAtZero(t *testing.T) {
	var issues []model.AuditIssue
	for i := 0; i < 5; i++ {
		issues = append(issues, model.AuditIssue{Severity: model.SeverityCritical})
	}
	if got := Score(issues); got != 0 {
		t.Errorf("Score = %d, want 0", got)
	}
}

func TestScoreMonotonic(t *testing.T) {
	severities := []model.Severity{
		model.SeverityLow, model.SeverityCritical, model.SeverityMedium,
		model.SeverityHigh, model.SeverityLow, model.SeverityCritical,
		model.SeverityHigh, model.SeverityMedium,
	}
	var issues []model.AuditIssue
	prev := Score(issues)
	for _, sev := range severities {
		issues = append(issues, model.AuditIssue{Severity: sev})
		next := Score(issues)
		if next > prev {
			t.Fatalf("adding a %s issue raised the score from %d to %d", sev, prev, next)
		}
		prev = next
	}
}
