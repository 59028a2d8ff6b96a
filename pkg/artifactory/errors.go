package artifactory

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError represents a single error returned by the Artifactory API.
type APIError struct {
	Status  int    `json:"status"  yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.Status)
}

// ResponseError represents the error response body from the API.
type ResponseError struct {
	Errors []APIError `json:"errors"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return "unknown error"
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	return fmt.Sprintf("multiple errors: %v", e.Errors)
}

// FirstError returns the first error or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// NotFoundError indicates that a named resource or artifact path does not
// exist remotely. The API signals this with HTTP 404, and for some security
// resources with HTTP 400.
type NotFoundError struct {
	Kind string
	ID   string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s does not exist", e.Kind, e.ID)
}

// AlreadyExistsError indicates that Create was attempted on a name that
// already resolves remotely.
type AlreadyExistsError struct {
	Kind string
	ID   string
}

// Error implements the error interface.
func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Kind, e.ID)
}

// QueryError indicates that the search endpoint rejected a compiled AQL
// query.
type QueryError struct {
	Query string
	Cause error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("bad AQL query %q: %v", e.Query, e.Cause)
}

// Unwrap returns the underlying transport error.
func (e *QueryError) Unwrap() error {
	return e.Cause
}

// TokenError indicates that the token endpoint rejected an access token
// request. Message carries the error_description from the response when
// one was available.
type TokenError struct {
	Message string
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	return "invalid token request: " + e.Message
}

// Static errors for caller misuse, detected before any request is issued.
var (
	ErrConfigRequired          = errors.New("config is required")
	ErrBaseURLRequired         = errors.New("base URL is required")
	ErrTokenOrTokenIDRequired  = errors.New("either a token or a token id is required")
	ErrMultipleSortKeys        = errors.New("sort accepts at most one key")
	ErrDeprecatedConstructor   = errors.New("use github.com/fivetwenty-io/artifactory/pkg/artifactoryclient.New to create a client")
	ErrClientCertKeyIncomplete = errors.New("client certificate and key must both be provided")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	notFound := &NotFoundError{}

	return errors.As(err, &notFound)
}

// IsAlreadyExists checks if the error is an already exists error.
func IsAlreadyExists(err error) bool {
	exists := &AlreadyExistsError{}

	return errors.As(err, &exists)
}

// ParseResponseError parses an error response body from JSON.
func ParseResponseError(data []byte) (*ResponseError, error) {
	var errResp ResponseError

	err := json.Unmarshal(data, &errResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	return &errResp, nil
}
