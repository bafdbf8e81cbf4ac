package audit

import (
	"fmt"
	"strings"

	"github.com/gyeh/billaudit/internal/model"
)

// Summary renders an AuditResult as a human-readable report for CLI output
// and dispute-letter collaborators.
func Summary(result *model.AuditResult) string {
	sym := result.Region.CurrencySymbol()

	var b strings.Builder
	fmt.Fprintf(&b, "Audit Score: %d/100\n", result.Score)
	fmt.Fprintf(&b, "Total Issues: %d\n\n", result.TotalIssues)
	b.WriteString("Issues by Severity:\n")
	fmt.Fprintf(&b, "  Critical: %d\n", result.CriticalCount)
	fmt.Fprintf(&b, "  High: %d\n", result.HighCount)
	fmt.Fprintf(&b, "  Medium: %d\n", result.MediumCount)
	fmt.Fprintf(&b, "  Low: %d\n\n", result.LowCount)
	fmt.Fprintf(&b, "Potential Savings: %s\n", amount(sym, result.PotentialSavings))

	if len(result.Issues) > 0 {
		b.WriteString("\nIssue Details:\n")
		for _, iss := range result.Issues {
			fmt.Fprintf(&b, "  [%s] %s: %s\n",
				strings.ToUpper(string(iss.Severity)), iss.Type, iss.Description)
		}
	}

	return b.String()
}
