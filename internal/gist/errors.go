package gist

import "fmt"

// FetchError represents a failure to retrieve the resume bundle from the
// remote store: unreachable host, non-success status, or a bundle without
// the expected file.
type FetchError struct {
	GistID  string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for gist %s: %s: %v", e.GistID, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for gist %s: %s", e.GistID, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ParseError represents retrieved content that could not be decoded into a
// resume document.
type ParseError struct {
	File    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error in %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error in %s: %s", e.File, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
