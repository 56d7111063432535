package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/daniel/resume-mcp/internal/gist"
	"github.com/daniel/resume-mcp/internal/mcpserver"
	"github.com/daniel/resume-mcp/internal/providers"
	"github.com/daniel/resume-mcp/internal/tools"
)

// ValidationError reports a request that failed validation before any
// work was done.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s %s", e.Field, e.Message)
}

// HTTPStatus maps an error from the service layers to a response status.
// Client misuse maps to 400, a provider that is currently down to 503, and
// upstream failures (document store or generation back-end) to 502.
func HTTPStatus(err error) int {
	var (
		validationErr   *ValidationError
		unknownProvider *providers.UnknownProviderError
		unknownTool     *tools.UnknownToolError
		unknownResource *mcpserver.UnknownResourceError
		unavailableErr  *providers.ProviderUnavailableError
		fetchErr        *gist.FetchError
		parseErr        *gist.ParseError
		callErr         *providers.ProviderCallError
	)
	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &unknownProvider),
		errors.As(err, &unknownTool),
		errors.As(err, &unknownResource):
		return http.StatusBadRequest
	case errors.As(err, &unavailableErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &fetchErr),
		errors.As(err, &parseErr),
		errors.As(err, &callErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
