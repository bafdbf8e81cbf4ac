package benchmark

import (
	"sort"
	"strings"

	"github.com/gyeh/billaudit/internal/normalize"
)

// Procedure is one record in the flattened Indian procedure index. A single
// record can carry both a CGHS rate and a PMJAY package rate when the two
// schemes price the same procedure.
type Procedure struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Source      string  `json:"source"` // "cghs", "pmjay", or "cghs+pmjay"
	CGHSRate    float64 `json:"cghs_rate,omitempty"`
	PMJAYRate   float64 `json:"pmjay_rate,omitempty"`
	MaxPrivate  float64 `json:"max_private,omitempty"`
}

// Ratio between government reference rates and what private/corporate
// hospitals may legitimately charge.
const privateRateRatio = 3.0

// Band returns the fair-price band for the procedure:
// low is the PMJAY rate, else the CGHS rate, else 0; high is the explicit
// max-private rate, else 3x the CGHS rate, else 3x low; median is the
// midpoint.
func (p *Procedure) Band() (low, median, high float64) {
	low = p.PMJAYRate
	if low == 0 {
		low = p.CGHSRate
	}

	switch {
	case p.MaxPrivate > 0:
		high = p.MaxPrivate
	case p.CGHSRate > 0:
		high = p.CGHSRate * privateRateRatio
	default:
		high = low * privateRateRatio
	}

	if low > 0 {
		median = (low + high) / 2
	} else {
		median = high / 2
	}
	return low, median, high
}

// buildProcedureIndex flattens the nested CGHS category→subcategory→item
// JSON and the PMJAY category→package JSON into one searchable index.
// Keys are walked in sorted order so the index order (and therefore fuzzy
// tie-breaking) is identical on every load.
func (s *Store) buildProcedureIndex(cghs, pmjay map[string]any) {
	for _, category := range sortedKeys(cghs) {
		if category == "meta" {
			continue
		}
		subcats, ok := cghs[category].(map[string]any)
		if !ok {
			continue
		}
		for _, subcat := range sortedKeys(subcats) {
			item, ok := subcats[subcat].(map[string]any)
			if !ok {
				continue
			}
			if _, direct := item["rate"]; direct {
				s.addCGHS(category+"_"+subcat, subcat, category, item)
				continue
			}
			// One more nesting level: subcategory of items.
			for _, name := range sortedKeys(item) {
				nested, ok := item[name].(map[string]any)
				if !ok {
					continue
				}
				if _, hasRate := nested["rate"]; hasRate {
					s.addCGHS(category+"_"+subcat+"_"+name, name, category+"/"+subcat, nested)
				}
			}
		}
	}

	packages, _ := pmjay["packages"].(map[string]any)
	for _, category := range sortedKeys(packages) {
		procs, ok := packages[category].(map[string]any)
		if !ok {
			continue
		}
		for _, name := range sortedKeys(procs) {
			data, ok := procs[name].(map[string]any)
			if !ok {
				continue
			}
			rate := asFloat(data["package_rate"])
			if rate == 0 {
				continue
			}
			desc, _ := data["description"].(string)
			if desc == "" {
				desc = strings.ReplaceAll(name, "_", " ")
			}
			s.mergePMJAY("pmjay_"+category+"_"+name, name, category, desc, rate)
		}
	}
}

func (s *Store) addCGHS(key, name, category string, data map[string]any) {
	desc, _ := data["description"].(string)
	if desc == "" {
		desc = strings.ReplaceAll(name, "_", " ")
	}
	s.appendProcedure(&Procedure{
		Key:         strings.ToLower(key),
		Name:        name,
		Description: desc,
		Category:    category,
		Source:      "cghs",
		CGHSRate:    asFloat(data["rate"]),
		MaxPrivate:  asFloat(data["max_private"]),
	})
}

// mergePMJAY attaches a PMJAY package rate to an existing CGHS record when
// the two descriptions refer to the same procedure (best-effort substring
// match), otherwise indexes it as a new record.
func (s *Store) mergePMJAY(key, name, category, desc string, rate float64) {
	normDesc := normalize.Description(desc)
	for _, p := range s.procedures {
		if p.PMJAYRate > 0 {
			continue
		}
		existing := normalize.Description(p.Description)
		if existing == "" || normDesc == "" {
			continue
		}
		if strings.Contains(existing, normDesc) || strings.Contains(normDesc, existing) {
			p.PMJAYRate = rate
			p.Source = "cghs+pmjay"
			return
		}
	}
	s.appendProcedure(&Procedure{
		Key:         strings.ToLower(key),
		Name:        name,
		Description: desc,
		Category:    category,
		Source:      "pmjay",
		PMJAYRate:   rate,
	})
}

func (s *Store) appendProcedure(p *Procedure) {
	if _, exists := s.procByKey[p.Key]; exists {
		return
	}
	s.procedures = append(s.procedures, p)
	s.procByKey[p.Key] = p
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}
