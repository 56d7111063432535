package resume

import (
	"fmt"
	"strings"

	"github.com/daniel/resume-mcp/internal/types"
)

// Sections a search match can come from, in traversal order.
const (
	SectionSummary = "summary"
	SectionWork    = "work"
	SectionSkills  = "skills"
)

// Match is one search hit. Index is the entry's position inside its section
// list and is absent for the summary. Value holds the text the query was
// found in, and exactly one of Work/Skill/Summary carries the matched entity.
type Match struct {
	Section string            `json:"section"`
	Index   *int              `json:"index,omitempty"`
	Field   string            `json:"field"`
	Value   string            `json:"value"`
	Reason  string            `json:"reason"`
	Work    *types.Work       `json:"work,omitempty"`
	Skill   *types.SkillGroup `json:"skill,omitempty"`
	Summary string            `json:"summary,omitempty"`
}

// Search scans the document for a case-insensitive substring: the summary
// text, each work entry's company/position/summary, and each skill group's
// name and keywords. One match is emitted per field hit, in traversal order
// (summary, work, skills), unranked and undeduplicated.
func Search(doc *types.ResumeDocument, query string) []Match {
	folded := strings.ToLower(query)
	matches := []Match{}

	if containsFold(doc.Basics.Summary, folded) {
		matches = append(matches, Match{
			Section: SectionSummary,
			Field:   "summary",
			Value:   doc.Basics.Summary,
			Reason:  fmt.Sprintf("summary contains %q", query),
			Summary: doc.Basics.Summary,
		})
	}

	for i := range doc.Work {
		w := doc.Work[i]
		idx := i
		for _, field := range []struct {
			name  string
			value string
		}{
			{"company", w.Company},
			{"position", w.Position},
			{"summary", w.Summary},
		} {
			if containsFold(field.value, folded) {
				matches = append(matches, Match{
					Section: SectionWork,
					Index:   &idx,
					Field:   field.name,
					Value:   field.value,
					Reason:  fmt.Sprintf("%s contains %q", field.name, query),
					Work:    &w,
				})
			}
		}
	}

	for i := range doc.Skills {
		g := doc.Skills[i]
		idx := i
		if containsFold(g.Name, folded) {
			matches = append(matches, Match{
				Section: SectionSkills,
				Index:   &idx,
				Field:   "name",
				Value:   g.Name,
				Reason:  fmt.Sprintf("name contains %q", query),
				Skill:   &g,
			})
		}
		for _, kw := range g.Keywords {
			if containsFold(kw, folded) {
				matches = append(matches, Match{
					Section: SectionSkills,
					Index:   &idx,
					Field:   "keywords",
					Value:   kw,
					Reason:  fmt.Sprintf("keyword %q contains %q", kw, query),
					Skill:   &g,
				})
			}
		}
	}

	return matches
}

func containsFold(s, foldedQuery string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), foldedQuery)
}
