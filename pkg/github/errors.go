package github

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v66/github"
)

// ErrorType tags the categories of failure this tool distinguishes
type ErrorType string

const (
	ErrorTypeAuth       ErrorType = "authentication"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypePermission ErrorType = "permission"
	ErrorTypeRateLimit  ErrorType = "rate_limit"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// GitHubError is the structured error produced at the client boundary.
// Downstream code branches on Type (via the Is* helpers), never on the
// message text.
type GitHubError struct {
	Type     ErrorType `json:"type"`
	Message  string    `json:"message"`
	Resource string    `json:"resource,omitempty"`
	Field    string    `json:"field,omitempty"`
	Cause    error     `json:"-"`
}

// Error implements the error interface
func (e *GitHubError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Resource, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *GitHubError) Unwrap() error {
	return e.Cause
}

// NewValidationError builds a validation error for rejected user input.
// It is constructed before any request is issued.
func NewValidationError(field, message string) *GitHubError {
	return &GitHubError{
		Type:    ErrorTypeValidation,
		Message: message,
		Field:   field,
	}
}

// WrapError classifies an error returned by the GitHub API or its transport
// into a GitHubError. Errors already classified pass through, gaining the
// resource label if they lack one.
func WrapError(err error, resource string) *GitHubError {
	if err == nil {
		return nil
	}

	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		if ghErr.Resource == "" {
			ghErr.Resource = resource
		}
		return ghErr
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &GitHubError{
			Type:     ErrorTypeRateLimit,
			Message:  fmt.Sprintf("API rate limit exceeded, resets at %s", rateErr.Rate.Reset.Time.Format("15:04:05 MST")),
			Resource: resource,
			Cause:    err,
		}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &GitHubError{
			Type:     ErrorTypeRateLimit,
			Message:  "secondary rate limit hit, slow down",
			Resource: resource,
			Cause:    err,
		}
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		return parseAPIError(respErr, resource)
	}

	if isNetworkError(err) {
		return &GitHubError{
			Type:     ErrorTypeNetwork,
			Message:  "network error, check your connection",
			Resource: resource,
			Cause:    err,
		}
	}

	return &GitHubError{
		Type:     ErrorTypeUnknown,
		Message:  err.Error(),
		Resource: resource,
		Cause:    err,
	}
}

// parseAPIError maps GitHub API error responses onto the taxonomy by status code
func parseAPIError(respErr *github.ErrorResponse, resource string) *GitHubError {
	out := &GitHubError{
		Resource: resource,
		Cause:    respErr,
	}

	status := 0
	if respErr.Response != nil {
		status = respErr.Response.StatusCode
	}

	switch status {
	case http.StatusUnauthorized:
		out.Type = ErrorTypeAuth
		out.Message = "authentication failed, token is invalid or expired"

	case http.StatusForbidden:
		if strings.Contains(strings.ToLower(respErr.Message), "rate limit") {
			out.Type = ErrorTypeRateLimit
			out.Message = "API rate limit exceeded, wait before trying again"
		} else {
			out.Type = ErrorTypePermission
			out.Message = "insufficient permissions, token may be missing the repo or delete_repo scope"
		}

	case http.StatusNotFound:
		out.Type = ErrorTypeNotFound
		out.Message = "not found or not accessible with this token"

	case http.StatusUnprocessableEntity:
		out.Type = ErrorTypeValidation
		out.Message = "rejected by the API"
		if len(respErr.Errors) > 0 {
			var parts []string
			for _, e := range respErr.Errors {
				if e.Field != "" {
					parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
					if out.Field == "" {
						out.Field = e.Field
					}
				} else if e.Message != "" {
					parts = append(parts, e.Message)
				}
			}
			if len(parts) > 0 {
				out.Message = strings.Join(parts, "; ")
			}
		}

	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		out.Type = ErrorTypeNetwork
		out.Message = "GitHub is temporarily unavailable"

	default:
		out.Type = ErrorTypeUnknown
		out.Message = respErr.Message
		if out.Message == "" {
			out.Message = fmt.Sprintf("unexpected status %d", status)
		}
	}

	return out
}

// isNetworkError reports whether err looks like a transport-level failure
func isNetworkError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, keyword := range []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no such host",
		"i/o timeout",
		"dial tcp",
		"tls handshake",
	} {
		if strings.Contains(msg, keyword) {
			return true
		}
	}
	return false
}

func hasType(err error, t ErrorType) bool {
	var ghErr *GitHubError
	return errors.As(err, &ghErr) && ghErr.Type == t
}

// IsAuthentication reports whether err is a credential failure. These are
// fatal: commands let them escape to the process boundary.
func IsAuthentication(err error) bool { return hasType(err, ErrorTypeAuth) }

// IsValidation reports whether err is a rejected-input error.
func IsValidation(err error) bool { return hasType(err, ErrorTypeValidation) }

// IsNotFound reports whether err means the target resource does not exist.
func IsNotFound(err error) bool { return hasType(err, ErrorTypeNotFound) }

// IsPermission reports whether err is an insufficient-rights error.
func IsPermission(err error) bool { return hasType(err, ErrorTypePermission) }

// IsRateLimit reports whether err is an API quota error.
func IsRateLimit(err error) bool { return hasType(err, ErrorTypeRateLimit) }

// IsNetwork reports whether err is a transport or provider-availability error.
func IsNetwork(err error) bool { return hasType(err, ErrorTypeNetwork) }

// IsClassified reports whether err carries one of the known error types other
// than unknown. Unclassified errors terminate the process.
func IsClassified(err error) bool {
	var ghErr *GitHubError
	return errors.As(err, &ghErr) && ghErr.Type != ErrorTypeUnknown
}
