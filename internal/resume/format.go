// Package resume holds the pure document transforms: plain-text rendering,
// substring search, list filters, and job-match scoring. Nothing here
// performs I/O or mutates the document.
package resume

import (
	"strings"

	"github.com/daniel/resume-mcp/internal/types"
)

// FormatText renders the document as sectioned plain text. Section order is
// fixed (identity, summary, work, education, skills, languages); sections
// without entries are omitted entirely; entry order follows the source.
func FormatText(doc *types.ResumeDocument) string {
	sections := make([]string, 0, 6)
	for _, s := range []string{
		identityBlock(doc.Basics),
		summaryBlock(doc.Basics),
		workSection(doc.Work),
		educationSection(doc.Education),
		skillsSection(doc.Skills),
		languagesSection(doc.Languages),
	} {
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n\n")
}

// FormatSummary renders only the identity block and professional summary,
// the projection behind the summary resource.
func FormatSummary(doc *types.ResumeDocument) string {
	sections := make([]string, 0, 2)
	for _, s := range []string{identityBlock(doc.Basics), summaryBlock(doc.Basics)} {
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n\n")
}

func identityBlock(b types.Basics) string {
	var lines []string
	if b.Name != "" {
		lines = append(lines, b.Name)
	}
	if b.Label != "" {
		lines = append(lines, b.Label)
	}
	if b.Location.City != "" {
		lines = append(lines, b.Location.City)
	}
	if b.Email != "" {
		lines = append(lines, "Email: "+b.Email)
	}
	if b.URL != "" {
		lines = append(lines, "Website: "+b.URL)
	}
	return strings.Join(lines, "\n")
}

func summaryBlock(b types.Basics) string {
	if b.Summary == "" {
		return ""
	}
	return "PROFESSIONAL SUMMARY\n" + b.Summary
}

func workSection(entries []types.Work) string {
	if len(entries) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(entries))
	for _, w := range entries {
		blocks = append(blocks, workEntry(w))
	}
	return "WORK EXPERIENCE\n\n" + strings.Join(blocks, "\n\n")
}

func workEntry(w types.Work) string {
	var lines []string
	if header := joinNonEmpty(" - ", w.Company, w.Position); header != "" {
		lines = append(lines, header)
	}
	if dates := dateLine(w.StartDate, w.EndDate); dates != "" {
		lines = append(lines, dates)
	}
	if w.Summary != "" {
		lines = append(lines, w.Summary)
	}
	for _, h := range w.Highlights {
		if h != "" {
			lines = append(lines, "  - "+h)
		}
	}
	return strings.Join(lines, "\n")
}

func educationSection(entries []types.Education) string {
	if len(entries) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, educationEntry(e))
	}
	return "EDUCATION\n\n" + strings.Join(blocks, "\n\n")
}

func educationEntry(e types.Education) string {
	var lines []string
	degree := e.StudyType
	switch {
	case degree != "" && e.Area != "":
		degree += " in " + e.Area
	case e.Area != "":
		degree = e.Area
	}
	if header := joinNonEmpty(" - ", degree, e.Institution); header != "" {
		lines = append(lines, header)
	}
	if dates := dateLine(e.StartDate, e.EndDate); dates != "" {
		lines = append(lines, dates)
	}
	return strings.Join(lines, "\n")
}

func skillsSection(groups []types.SkillGroup) string {
	if len(groups) == 0 {
		return ""
	}
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, skillLine(g))
	}
	return "SKILLS\n\n" + strings.Join(lines, "\n")
}

func skillLine(g types.SkillGroup) string {
	name := g.Name
	if g.Level != "" {
		name += " (" + g.Level + ")"
	}
	if len(g.Keywords) == 0 {
		return name
	}
	return name + ": " + strings.Join(g.Keywords, ", ")
}

func languagesSection(entries []types.Language) string {
	if len(entries) == 0 {
		return ""
	}
	lines := make([]string, 0, len(entries))
	for _, l := range entries {
		line := l.Language
		if l.Fluency != "" {
			line += " (" + l.Fluency + ")"
		}
		lines = append(lines, line)
	}
	return "LANGUAGES\n\n" + strings.Join(lines, "\n")
}

// dateLine renders "start - end" with an empty end shown as Present. Both
// empty yields nothing; a missing start collapses to the end alone.
func dateLine(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	if end == "" {
		end = "Present"
	}
	if start == "" {
		return end
	}
	return start + " - " + end
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
