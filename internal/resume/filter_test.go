package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/resume-mcp/internal/types"
)

func TestFilterWork(t *testing.T) {
	doc := testDoc()

	tests := []struct {
		name      string
		filter    string
		companies []string
	}{
		{name: "empty filter keeps all", filter: "", companies: []string{"Acme", "Globex"}},
		{name: "exact company", filter: "Acme", companies: []string{"Acme"}},
		{name: "case insensitive", filter: "ACME", companies: []string{"Acme"}},
		{name: "substring", filter: "lob", companies: []string{"Globex"}},
		{name: "no match is empty not error", filter: "initech", companies: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := FilterWork(doc, tt.filter)
			require.NotNil(t, entries)

			companies := make([]string, 0, len(entries))
			for _, w := range entries {
				companies = append(companies, w.Company)
			}
			assert.Equal(t, tt.companies, companies)
		})
	}
}

func TestFilterSkills(t *testing.T) {
	doc := testDoc()

	tests := []struct {
		name   string
		filter string
		groups []string
	}{
		{name: "empty filter keeps all", filter: "", groups: []string{"Backend", "Frontend"}},
		{name: "category match", filter: "back", groups: []string{"Backend"}},
		{name: "case insensitive", filter: "FRONT", groups: []string{"Frontend"}},
		{name: "shared substring", filter: "end", groups: []string{"Backend", "Frontend"}},
		{name: "no match is empty not error", filter: "devops", groups: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := FilterSkills(doc, tt.filter)
			require.NotNil(t, groups)

			names := make([]string, 0, len(groups))
			for _, g := range groups {
				names = append(names, g.Name)
			}
			assert.Equal(t, tt.groups, names)
		})
	}
}

func TestAnalyzeMatch(t *testing.T) {
	doc := testDoc()

	report := AnalyzeMatch(doc, "Looking for Go and PostgreSQL experience")
	assert.Equal(t, 20, report.MatchScore)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, report.MatchedSkills)
	assert.Equal(t, "Found 2 matching skills. Match score: 20%", report.Analysis)
}

func TestAnalyzeMatch_NoOverlap(t *testing.T) {
	report := AnalyzeMatch(testDoc(), "Haskell wizard wanted")
	assert.Equal(t, 0, report.MatchScore)
	assert.Empty(t, report.MatchedSkills)
}

func TestAnalyzeMatch_ScoreCappedAt100(t *testing.T) {
	keywords := []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8", "i9", "j10", "k11", "l12"}
	doc := &types.ResumeDocument{
		Skills: []types.SkillGroup{{Name: "Everything", Keywords: keywords}},
	}

	report := AnalyzeMatch(doc, "a1 b2 c3 d4 e5 f6 g7 h8 i9 j10 k11 l12")
	assert.Equal(t, 100, report.MatchScore)
	assert.Len(t, report.MatchedSkills, 12)
}
