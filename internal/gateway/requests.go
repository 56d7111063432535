package gateway

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ChatRequest is one chat turn. Model is optional; an empty value picks
// the provider's default.
type ChatRequest struct {
	Message  string `json:"message" validate:"required,min=1"`
	Provider string `json:"provider" validate:"required"`
	Model    string `json:"model"`
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return wrapValidation(validate.Struct(r))
}

// ChatResponse carries the assistant reply together with the context slice
// that grounded it.
type ChatResponse struct {
	Response string `json:"response"`
	Context  string `json:"context"`
}

// MatchRequest asks for a keyword match of the resume against a job
// description.
type MatchRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=1"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return wrapValidation(validate.Struct(r))
}

// wrapValidation converts validator failures into the gateway's typed
// validation error so they map to 400 responses.
func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := strings.ToLower(verrs[0].Field())
		if verrs[0].Tag() == "required" {
			return &ValidationError{Field: field, Message: "is required"}
		}
		return &ValidationError{Field: field, Message: fmt.Sprintf("failed %s validation", verrs[0].Tag())}
	}
	return &ValidationError{Field: "request", Message: err.Error()}
}
