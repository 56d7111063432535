package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResume = `{
  "basics": {
    "name": "Jane Doe",
    "label": "Software Engineer",
    "email": "jane@example.com",
    "summary": "Backend engineer focused on Go services.",
    "location": {"city": "Warsaw", "countryCode": "PL"}
  },
  "work": [
    {
      "company": "Acme Corp",
      "position": "Senior Engineer",
      "startDate": "2020-01",
      "highlights": ["Led the payments team"]
    }
  ],
  "skills": [
    {"name": "Backend", "keywords": ["Go", "PostgreSQL"]}
  ]
}`

func TestValidateResume_Valid(t *testing.T) {
	err := ValidateResume([]byte(validResume))
	assert.NoError(t, err)
}

func TestValidateResume_V1WorkEntries(t *testing.T) {
	// JSON Resume v1 uses "name" instead of "company" for the employer.
	doc := `{
  "basics": {"name": "Jane Doe"},
  "work": [{"name": "Acme Corp", "position": "Engineer"}]
}`
	err := ValidateResume([]byte(doc))
	assert.NoError(t, err)
}

func TestValidateResume_UnknownSectionsPass(t *testing.T) {
	doc := `{
  "basics": {"name": "Jane Doe"},
  "volunteer": [{"organization": "Code Club"}],
  "meta": {"version": "v1.0.0"}
}`
	err := ValidateResume([]byte(doc))
	assert.NoError(t, err)
}

func TestValidateResume_MissingBasics(t *testing.T) {
	err := ValidateResume([]byte(`{"work": []}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.Greater(t, len(validationErr.Errors), 0)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "basics")
}

func TestValidateResume_MissingName(t *testing.T) {
	err := ValidateResume([]byte(`{"basics": {"label": "Engineer"}}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.Greater(t, len(validationErr.Errors), 0)
	assert.Equal(t, "basics", validationErr.Errors[0].Field)
}

func TestValidateResume_WrongTypes(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "work not an array",
			doc:   `{"basics": {"name": "Jane"}, "work": {"company": "Acme"}}`,
			field: "work",
		},
		{
			name:  "highlights not strings",
			doc:   `{"basics": {"name": "Jane"}, "work": [{"company": "Acme", "highlights": [1, 2]}]}`,
			field: "work.0.highlights.0",
		},
		{
			name:  "keywords not an array",
			doc:   `{"basics": {"name": "Jane"}, "skills": [{"name": "Backend", "keywords": "Go"}]}`,
			field: "skills.0.keywords",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResume([]byte(tt.doc))
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError type")
			require.Greater(t, len(validationErr.Errors), 0)

			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateResume_MalformedJSON(t *testing.T) {
	err := ValidateResume([]byte("{ invalid json }"))
	require.Error(t, err)

	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Contains(t, docErr.Error(), "not valid JSON")
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "basics", Message: "name is required"},
		{Field: "work.0.highlights.1", Message: "Invalid type"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "1. basics: name is required")
	assert.Contains(t, msg, "2. work.0.highlights.1: Invalid type")
}
