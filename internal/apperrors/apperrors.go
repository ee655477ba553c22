// Package apperrors maps raw persistence and network failures into a
// closed taxonomy with retryability and user-facing remediation
// suggestions. Errors are classified once at the boundary; downstream
// code never probes ad hoc code/status/message shapes.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/lib/pq"
	"github.com/magazine-editorial-api/internal/validation"
)

// Kind is the failure taxonomy
type Kind string

const (
	KindValidation     Kind = "validation"
	KindNetwork        Kind = "network"
	KindDatabase       Kind = "database"
	KindAuthentication Kind = "authentication"
	KindPermission     Kind = "permission"
	KindUnknown        Kind = "unknown"
)

// Postgres error codes surfaced by lib/pq
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Classified annotates a raw failure for UI display and optional retry
type Classified struct {
	Kind        Kind     `json:"kind"`
	Message     string   `json:"message"`
	Retryable   bool     `json:"retryable"`
	Suggestions []string `json:"suggestions,omitempty"`
	err         error
}

// Error implements the error interface
func (c *Classified) Error() string {
	return c.Message
}

// Unwrap exposes the underlying error
func (c *Classified) Unwrap() error {
	return c.err
}

// HTTPError carries an HTTP-style status from an outbound call so the
// classifier never has to sniff response bodies downstream.
type HTTPError struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("http %d", e.Status)
}

// Classify maps a raw error into the taxonomy. Rules are evaluated in
// order; the first match wins.
func Classify(err error) *Classified {
	if err == nil {
		return nil
	}

	// Already classified
	var classified *Classified
	if errors.As(err, &classified) {
		return classified
	}

	// Constraint violations from Postgres
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return &Classified{
				Kind:      KindValidation,
				Message:   "An article with this slug already exists",
				Retryable: false,
				Suggestions: []string{
					"Choose a different slug",
					"Append a suffix such as -2 or the year",
				},
				err: err,
			}
		case pgForeignKeyViolation:
			return &Classified{
				Kind:      KindValidation,
				Message:   "The selected author or category no longer exists",
				Retryable: false,
				Suggestions: []string{
					"Refresh the form and pick the author again",
					"Check that the category has not been deleted",
				},
				err: err,
			}
		}
	}

	// Network failures
	if isNetworkError(err) {
		return &Classified{
			Kind:      KindNetwork,
			Message:   "Could not reach the server",
			Retryable: true,
			Suggestions: []string{
				"Check your internet connection",
				"Try again in a few seconds",
			},
			err: err,
		}
	}

	// HTTP-style statuses from outbound calls
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.Status == 401:
			return authClassified(err)
		case httpErr.Status == 403:
			return permissionClassified(err)
		case httpErr.Status >= 500 && httpErr.Status < 600:
			return &Classified{
				Kind:      KindDatabase,
				Message:   "The server encountered an error",
				Retryable: true,
				Suggestions: []string{
					"Try again in a few seconds",
					"Contact support if the problem persists",
				},
				err: err,
			}
		}
	}

	// Message signatures for auth failures that arrive without a status
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "jwt") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "not authenticated") {
		return authClassified(err)
	}
	if strings.Contains(msg, "permission denied") || strings.Contains(msg, "forbidden") {
		return permissionClassified(err)
	}

	// Schema validation errors
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return &Classified{
			Kind:      KindValidation,
			Message:   "Some fields are invalid",
			Retryable: false,
			Suggestions: []string{
				"Review the highlighted fields",
				"Correct the values and resubmit",
			},
			err: err,
		}
	}

	return &Classified{
		Kind:      KindUnknown,
		Message:   "An unexpected error occurred",
		Retryable: false,
		Suggestions: []string{
			"Try again",
			"Contact support if the problem persists",
		},
		err: err,
	}
}

// IsRetryable reports whether the classified form of err is worth
// retrying. This is the default retry condition.
func IsRetryable(err error) bool {
	c := Classify(err)
	return c != nil && c.Retryable
}

func authClassified(err error) *Classified {
	return &Classified{
		Kind:      KindAuthentication,
		Message:   "Your session has expired",
		Retryable: false,
		Suggestions: []string{
			"Log in again",
			"Check that your account is still active",
		},
		err: err,
	}
}

func permissionClassified(err error) *Classified {
	return &Classified{
		Kind:      KindPermission,
		Message:   "You do not have permission to perform this action",
		Retryable: false,
		Suggestions: []string{
			"Ask an administrator for access",
			"Verify you are logged into the right account",
		},
		err: err,
	}
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "network is unreachable")
}
