package cloudflare

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNetwork is a sentinel for transport-level failures (connection refused,
// timeout, malformed body). Wrap with fmt.Errorf("context: %w", ErrNetwork).
var ErrNetwork = errors.New("cloudflare: network error")

// APIError is a non-success response from the Cloudflare API. The message
// text is surfaced to the operator verbatim.
type APIError struct {
	StatusCode int
	Messages   []apiMessage
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("cloudflare API returned status %d", e.StatusCode)
	}
	parts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		parts = append(parts, fmt.Sprintf("[%d] %s", m.Code, m.Message))
	}
	return strings.Join(parts, "; ")
}

// Unauthorized reports whether the error indicates a rejected credential.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsUnauthorized reports whether err is an API error caused by an invalid
// or insufficiently scoped token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}
