package errors

import "fmt"

// NotFoundError reports a user or record the directory does not have.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFoundError returns a NotFoundError for resource id.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError reports a rejected value. Field may be empty.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

// Is matches ErrInvalidInput.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError returns a ValidationError for field.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// APIError is a failed directory call. StatusCode is zero when no response
// arrived; Err then holds the transport failure.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	call := e.Path
	if e.Method != "" {
		call = e.Method + " " + e.Path
	}
	if e.StatusCode == 0 {
		return fmt.Sprintf("directory API error on %s: %s", call, e.Message)
	}
	return fmt.Sprintf("directory API error on %s (status %d): %s", call, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// Is matches the sentinel for the response status: ErrNotFound for 404,
// ErrUnauthorized for 401/403, ErrRateLimited for 429, ErrUnavailable for 5xx.
func (e *APIError) Is(target error) bool {
	s := statusSentinel(e.StatusCode)
	return s != nil && target == s
}

// NewAPIError returns an APIError for a response with statusCode.
func NewAPIError(method, path string, statusCode int, message string) *APIError {
	return &APIError{Method: method, Path: path, StatusCode: statusCode, Message: message}
}

// ConfigError reports an unusable setting or config file.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Component == "" {
		return "configuration error: " + e.Message
	}
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Is matches ErrInvalidInput.
func (e *ConfigError) Is(target error) bool { return target == ErrInvalidInput }

// NewConfigError returns a ConfigError for component.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// ParseError reports a body or file that could not be decoded.
type ParseError struct {
	Format string // json, yaml
	File   string // path or API path; optional
	Err    error
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s parse error: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("parse error in %s %s: %v", e.Format, e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a failed read or write of a local file or stream.
type IOError struct {
	Operation string
	Path      string
	Err       error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Operation, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ResourceError reports a directory operation that failed, with the
// underlying cause in Err.
type ResourceError struct {
	Operation string // list, fetch, create, update, reset, ensure
	Resource  string
	ID        string
	Message   string
	Err       error
}

func (e *ResourceError) Error() string {
	subject := e.Resource
	if e.ID != "" {
		subject += " " + e.ID
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, subject, e.Message)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// NewResourceError returns a ResourceError whose message is err's text.
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	re := &ResourceError{Operation: operation, Resource: resource, ID: id, Err: err}
	if err != nil {
		re.Message = err.Error()
	}
	return re
}

// AuthenticationError reports credentials that could not be loaded.
type AuthenticationError struct {
	Method  string // token, token_file
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication error (%s): %s", e.Method, e.Message)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// Is matches ErrUnauthorized.
func (e *AuthenticationError) Is(target error) bool { return target == ErrUnauthorized }
