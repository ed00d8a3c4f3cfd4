package githubapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// APIError is returned for any response with a status outside of the 2xx
// range. Callers should check StatusCode (or use IsNotFound) rather than
// inspecting the error text.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the "message" property of GitHub's error document, if the
	// body was one.
	Message string
	Body    []byte
}

type errorDocument struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

func newAPIError(method, path string, statusCode int, body []byte) *APIError {
	e := &APIError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Body:       body,
	}
	var doc errorDocument
	if err := json.Unmarshal(body, &doc); err == nil {
		e.Message = doc.Message
	}
	return e
}

func (e *APIError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = strings.TrimSpace(string(e.Body))
	}
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if detail != "" {
		msg += ": " + detail
	}
	return msg
}

// StatusCode returns the HTTP status of an *APIError, or 0 if err did not come
// from an API response.
func StatusCode(err error) int {
	if e, ok := errors.Cause(err).(*APIError); ok {
		return e.StatusCode
	}
	return 0
}

// IsNotFound returns true if err is an *APIError with a 404 status.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsRateLimited returns true if err is a 403 or 429 caused by an exhausted
// rate limit.
func IsRateLimited(err error) bool {
	e, ok := errors.Cause(err).(*APIError)
	if !ok {
		return false
	}
	switch e.StatusCode {
	case http.StatusTooManyRequests:
		return true
	case http.StatusForbidden:
		return strings.Contains(strings.ToLower(e.Message), "rate limit")
	}
	return false
}
