// Package types provides type definitions for structured data used throughout the resume-mcp system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// ResumeDocument is a professional profile in canonical JSON Resume form.
// A decoded document is treated as immutable for the lifetime of a cache
// epoch, and every derived view must preserve the source order of its lists.
type ResumeDocument struct {
	Basics     Basics       `json:"basics"`
	Work       []Work       `json:"work,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Skills     []SkillGroup `json:"skills,omitempty"`
	Languages  []Language   `json:"languages,omitempty"`
	Projects   []Project    `json:"projects,omitempty"`
	References []Reference  `json:"references,omitempty"`
}

// Basics is the identity block: who the document describes and how to reach them.
type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label,omitempty"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	URL      string    `json:"url,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Location Location  `json:"location,omitempty"`
	Profiles []Profile `json:"profiles,omitempty"`
}

// Location is the city/country part of the identity block.
type Location struct {
	City        string `json:"city,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// Profile is a social or web profile reference.
type Profile struct {
	Network  string `json:"network,omitempty"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Work is a single employment entry. Older documents carry the employer under
// "company" while JSON Resume v1 uses "name"; decoding accepts both and
// Company always holds the result.
type Work struct {
	Company    string   `json:"company"`
	Position   string   `json:"position,omitempty"`
	Location   string   `json:"location,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// UnmarshalJSON maps the legacy "company" field and the v1 "name" field onto
// Company, preferring "company" when both are present.
func (w *Work) UnmarshalJSON(data []byte) error {
	type work Work
	var aux struct {
		work
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*w = Work(aux.work)
	if w.Company == "" {
		w.Company = aux.Name
	}
	return nil
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution"`
	Area        string `json:"area,omitempty"`
	StudyType   string `json:"studyType,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Location    string `json:"location,omitempty"`
}

// SkillGroup is one named skill category with an optional proficiency level
// and an ordered keyword list.
type SkillGroup struct {
	Name     string   `json:"name"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Language is a spoken language with a fluency level.
type Language struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency,omitempty"`
}

// Project is a single project entry.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Reference is a named reference with its quote.
type Reference struct {
	Name      string `json:"name"`
	Reference string `json:"reference,omitempty"`
}
