package flightapi

import (
	"errors"
	"fmt"
	"strings"
)

// StatusError is returned when the flight API answers with a non-2xx status.
// Body holds the plain-text message the backend sent, if any.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("flight api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("flight api: status %d: %s", e.StatusCode, body)
}

// AsStatusError unwraps err into a *StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// ServerMessage returns the backend's text for a rejected call, or "".
func ServerMessage(err error) string {
	if statusErr, ok := AsStatusError(err); ok {
		return strings.TrimSpace(statusErr.Body)
	}
	return ""
}
