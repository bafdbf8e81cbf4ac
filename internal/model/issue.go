package model

// Severity grades how consequential an audit issue is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// IssueType classifies a billing issue.
type IssueType string

const (
	IssueDuplicateCharge    IssueType = "duplicate_charge"
	IssueArithmeticMismatch IssueType = "arithmetic_mismatch"
	IssueTaxMismatch        IssueType = "tax_mismatch"
	IssueOvercharge         IssueType = "overcharge"
	IssueMissingField       IssueType = "missing_field"
	IssueInvalidCode        IssueType = "invalid_code"
	IssueUnknownCode        IssueType = "unknown_code"
	IssueQuantityError      IssueType = "quantity_error"
	IssueUpcoding           IssueType = "upcoding" // billing a costlier service than provided
)

// AuditIssue is one finding from an audit run. Issues are created once,
// appended in detection order, and never mutated afterward.
type AuditIssue struct {
	ID           int       `json:"id"` // sequence number within the run
	Type         IssueType `json:"type"`
	Severity     Severity  `json:"severity"`
	Description  string    `json:"description"`
	Field        string    `json:"field,omitempty"` // pointer into the bill, e.g. "line_items[2]"
	Expected     string    `json:"expected,omitempty"`
	Actual       string    `json:"actual,omitempty"`
	AmountImpact float64   `json:"amount_impact,omitempty"` // monetary effect if resolved
}

// AuditResult is the output contract of one audit run.
type AuditResult struct {
	Issues           []AuditIssue `json:"issues"`
	Score            int          `json:"score"` // 0-100
	TotalIssues      int          `json:"total_issues"`
	CriticalCount    int          `json:"critical_count"`
	HighCount        int          `json:"high_count"`
	MediumCount      int          `json:"medium_count"`
	LowCount         int          `json:"low_count"`
	PotentialSavings float64      `json:"potential_savings"`
	Region           Region       `json:"region"`
	Currency         string       `json:"currency"`
}
