package benchmark

import (
	"sort"
	"strings"

	"github.com/gyeh/billaudit/internal/normalize"
)

// SearchCodes finds US codes whose code or description contains the query,
// optionally filtered by code type. Results are sorted by code so output is
// stable across runs. limit <= 0 means no limit.
func (s *Store) SearchCodes(query string, typeFilter CodeType, limit int) []CodeInfo {
	query = normalize.Description(query)
	if query == "" {
		return nil
	}

	var results []CodeInfo

	if typeFilter == "" || typeFilter == CodeICD10 {
		for code, entry := range s.icd10 {
			if matchesQuery(code, entry.Description, query) {
				results = append(results, CodeInfo{
					Code: code, Type: CodeICD10,
					Description: entry.Description,
					Category:    entry.Category,
					Valid:       true,
				})
			}
		}
	}

	if typeFilter == "" || typeFilter == CodeCPT || typeFilter == CodeHCPCS {
		for code, entry := range s.cpt {
			ct := DetectCodeType(code)
			if typeFilter != "" && ct != typeFilter {
				continue
			}
			if matchesQuery(code, entry.Description, query) {
				results = append(results, CodeInfo{
					Code: code, Type: ct,
					Description: entry.Description,
					Category:    entry.Category,
					Valid:       true,
				})
			}
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Code < results[j].Code })
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func matchesQuery(code, description, query string) bool {
	return strings.Contains(strings.ToLower(code), query) ||
		strings.Contains(strings.ToLower(description), query)
}
