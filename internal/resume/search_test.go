package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/resume-mcp/internal/types"
)

func TestSearch_TraversalOrder(t *testing.T) {
	doc := &types.ResumeDocument{
		Basics: types.Basics{Summary: "Go enthusiast."},
		Work: []types.Work{
			{Company: "Acme", Position: "Go Engineer"},
		},
		Skills: []types.SkillGroup{
			{Name: "Backend", Keywords: []string{"Go"}},
		},
	}

	matches := Search(doc, "go")
	require.Len(t, matches, 3)
	assert.Equal(t, SectionSummary, matches[0].Section)
	assert.Equal(t, SectionWork, matches[1].Section)
	assert.Equal(t, SectionSkills, matches[2].Section)
}

func TestSearch_Idempotent(t *testing.T) {
	doc := testDoc()

	first := Search(doc, "engineer")
	second := Search(doc, "engineer")

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	doc := testDoc()

	lower := Search(doc, "acme")
	upper := Search(doc, "ACME")

	require.Len(t, lower, 1)
	require.Len(t, upper, 1)
	assert.Equal(t, "Acme", lower[0].Value)
	assert.Equal(t, "Acme", upper[0].Value)
}

func TestSearch_MatchedFieldContainsQuery(t *testing.T) {
	doc := testDoc()

	for _, query := range []string{"go", "engineer", "backend", "services"} {
		for _, m := range Search(doc, query) {
			assert.Contains(t, strings.ToLower(m.Value), strings.ToLower(query),
				"query %q, section %s field %s", query, m.Section, m.Field)
		}
	}
}

func TestSearch_WorkFieldsAndIndexes(t *testing.T) {
	doc := &types.ResumeDocument{
		Work: []types.Work{
			{Company: "Acme", Position: "Engineer"},
			{Company: "Globex", Position: "Acme Liaison"},
		},
	}

	matches := Search(doc, "acme")
	require.Len(t, matches, 2)

	require.NotNil(t, matches[0].Index)
	assert.Equal(t, 0, *matches[0].Index)
	assert.Equal(t, "company", matches[0].Field)
	require.NotNil(t, matches[0].Work)
	assert.Equal(t, "Acme", matches[0].Work.Company)

	require.NotNil(t, matches[1].Index)
	assert.Equal(t, 1, *matches[1].Index)
	assert.Equal(t, "position", matches[1].Field)
}

func TestSearch_MultipleFieldHitsSameEntry(t *testing.T) {
	doc := &types.ResumeDocument{
		Work: []types.Work{
			{Company: "Go Systems", Position: "Go Engineer"},
		},
	}

	matches := Search(doc, "go")
	require.Len(t, matches, 2)
	assert.Equal(t, "company", matches[0].Field)
	assert.Equal(t, "position", matches[1].Field)
	assert.Equal(t, *matches[0].Index, *matches[1].Index)
}

func TestSearch_SkillNameAndKeywords(t *testing.T) {
	doc := &types.ResumeDocument{
		Skills: []types.SkillGroup{
			{Name: "Go Tooling", Keywords: []string{"Go", "Golang", "Python"}},
		},
	}

	matches := Search(doc, "go")
	require.Len(t, matches, 3)
	assert.Equal(t, "name", matches[0].Field)
	assert.Equal(t, "Go Tooling", matches[0].Value)
	assert.Equal(t, "keywords", matches[1].Field)
	assert.Equal(t, "Go", matches[1].Value)
	assert.Equal(t, "keywords", matches[2].Field)
	assert.Equal(t, "Golang", matches[2].Value)
}

func TestSearch_SummaryIndexAbsent(t *testing.T) {
	doc := &types.ResumeDocument{
		Basics: types.Basics{Summary: "Builds Go services."},
	}

	matches := Search(doc, "go")
	require.Len(t, matches, 1)
	assert.Nil(t, matches[0].Index)
	assert.Equal(t, "Builds Go services.", matches[0].Summary)
}

func TestSearch_NoMatches(t *testing.T) {
	matches := Search(testDoc(), "zzzzz")
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}
