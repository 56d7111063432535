package resume

import (
	"fmt"
	"strings"

	"github.com/daniel/resume-mcp/internal/types"
)

// MatchReport scores how well the document's skills cover a job description.
type MatchReport struct {
	MatchScore    int      `json:"match_score"`
	MatchedSkills []string `json:"matched_skills"`
	Analysis      string   `json:"analysis"`
}

// AnalyzeMatch counts the skill keywords that appear, case-insensitively, in
// the job description. Ten points per matched keyword, capped at 100.
// Keywords listed under several groups count each time they match.
func AnalyzeMatch(doc *types.ResumeDocument, jobDescription string) *MatchReport {
	folded := strings.ToLower(jobDescription)
	matched := []string{}
	for _, group := range doc.Skills {
		for _, kw := range group.Keywords {
			if kw != "" && strings.Contains(folded, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}
	}

	score := len(matched) * 10
	if score > 100 {
		score = 100
	}

	return &MatchReport{
		MatchScore:    score,
		MatchedSkills: matched,
		Analysis:      fmt.Sprintf("Found %d matching skills. Match score: %d%%", len(matched), score),
	}
}
