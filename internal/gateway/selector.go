package gateway

import (
	"context"
	"strings"

	"github.com/daniel/resume-mcp/internal/tools"
)

// Labels prefixed to the selected context so the model knows what slice of
// the resume it is looking at.
const (
	labelExperience = "Work Experience:"
	labelSkills     = "Skills:"
	labelSearch     = "Search Results:"
	labelSummary    = "Resume Summary:"
)

const maxSearchTerms = 3

var (
	experienceKeywords = []string{"experience", "work", "job", "career"}
	skillKeywords      = []string{"skill", "technology", "programming", "tech"}
	searchKeywords     = []string{"search", "find"}

	searchStopWords = map[string]struct{}{
		"search": {},
		"find":   {},
		"about":  {},
		"with":   {},
	}
)

// Selector picks the resume slice used to ground a chat turn. Rules are
// ordered and first-match: experience keywords beat skill keywords beat
// search keywords; anything else gets the plain-text summary.
type Selector struct {
	catalog *tools.Catalog
}

// NewSelector wraps the shared tool catalogue.
func NewSelector(catalog *tools.Catalog) *Selector {
	return &Selector{catalog: catalog}
}

// Select returns the labeled context slice for the message.
func (s *Selector) Select(ctx context.Context, message string) (string, error) {
	lower := strings.ToLower(message)

	if containsAny(lower, experienceKeywords) {
		return s.labeled(ctx, labelExperience, tools.ToolGetExperience, nil)
	}
	if containsAny(lower, skillKeywords) {
		return s.labeled(ctx, labelSkills, tools.ToolGetSkills, nil)
	}
	if containsAny(lower, searchKeywords) {
		// No usable terms means the search branch is skipped, not an
		// empty search.
		if terms := searchTerms(lower); terms != "" {
			return s.labeled(ctx, labelSearch, tools.ToolSearchResume, map[string]any{"query": terms})
		}
	}
	return s.labeled(ctx, labelSummary, tools.ToolGetResume, map[string]any{"format": "text"})
}

func (s *Selector) labeled(ctx context.Context, label, tool string, args map[string]any) (string, error) {
	out, err := s.catalog.Call(ctx, tool, args)
	if err != nil {
		return "", err
	}
	return label + "\n" + out, nil
}

func containsAny(message string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}

// searchTerms extracts up to three search words from the message, dropping
// stop words and anything two characters or shorter.
func searchTerms(message string) string {
	var terms []string
	for _, word := range strings.Fields(message) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := searchStopWords[word]; stop {
			continue
		}
		terms = append(terms, word)
		if len(terms) == maxSearchTerms {
			break
		}
	}
	return strings.Join(terms, " ")
}
