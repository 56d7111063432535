package providers

import "fmt"

// UnknownProviderError reports a chat request naming no registered provider.
type UnknownProviderError struct {
	Name string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider: %s", e.Name)
}

// ProviderUnavailableError reports a provider whose availability probe
// failed. The probe runs per call, so the same provider can become
// available later without a restart.
type ProviderUnavailableError struct {
	Provider string
	Reason   string
	Cause    error
}

func (e *ProviderUnavailableError) Error() string {
	return fmt.Sprintf("provider %s is unavailable: %s", e.Provider, e.Reason)
}

func (e *ProviderUnavailableError) Unwrap() error {
	return e.Cause
}

// ProviderCallError reports a failed upstream generation call. StatusCode
// is the upstream HTTP status when one was received, zero otherwise.
type ProviderCallError struct {
	Provider   string
	Model      string
	StatusCode int
	Message    string
	Cause      error
}

func (e *ProviderCallError) Error() string {
	msg := fmt.Sprintf("provider %s request failed", e.Provider)
	if e.Model != "" {
		msg = fmt.Sprintf("provider %s request failed for model %s", e.Provider, e.Model)
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s with status %d", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ProviderCallError) Unwrap() error {
	return e.Cause
}
