package resume

import (
	"strings"

	"github.com/daniel/resume-mcp/internal/types"
)

// FilterWork returns the work entries whose company contains the filter,
// case-insensitively. An empty filter keeps every entry; no match yields an
// empty slice, never an error. Source order is preserved.
func FilterWork(doc *types.ResumeDocument, company string) []types.Work {
	entries := []types.Work{}
	folded := strings.ToLower(company)
	for _, w := range doc.Work {
		if company == "" || strings.Contains(strings.ToLower(w.Company), folded) {
			entries = append(entries, w)
		}
	}
	return entries
}

// FilterSkills returns the skill groups whose name contains the category
// filter, case-insensitively, with the same empty-filter and no-match
// semantics as FilterWork.
func FilterSkills(doc *types.ResumeDocument, category string) []types.SkillGroup {
	groups := []types.SkillGroup{}
	folded := strings.ToLower(category)
	for _, g := range doc.Skills {
		if category == "" || strings.Contains(strings.ToLower(g.Name), folded) {
			groups = append(groups, g)
		}
	}
	return groups
}
