// Package errors defines the error types roster returns. Each type maps
// onto one of a few sentinels so callers can branch with errors.Is
// without caring which layer produced the failure.
package errors

import (
	"errors"
	"net/http"
)

// New, Is and As are the standard library functions, re-exported so
// packages importing this one need no second errors import.
var (
	New = errors.New
	Is  = errors.Is
	As  = errors.As
)

// Sentinels matched by the typed errors in this package.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("directory unavailable")
	ErrRateLimited  = errors.New("rate limited")
)

// statusSentinel maps an HTTP status to the sentinel it stands for, or nil.
func statusSentinel(status int) error {
	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status >= http.StatusInternalServerError:
		return ErrUnavailable
	default:
		return nil
	}
}

// IsNotFound reports whether err means the user or record does not exist.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidationError reports whether err is a rejected input or setting.
func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsUnauthorized reports whether the directory refused the credentials or
// none could be loaded.
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

// IsRateLimited reports whether the directory answered 429.
func IsRateLimited(err error) bool { return errors.Is(err, ErrRateLimited) }

// IsUnavailable reports whether the directory answered with a 5xx.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }

// WrapIO wraps err as an *IOError. A nil err stays nil.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapResource wraps err as a *ResourceError. A nil err stays nil.
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps err as a *ParseError. A nil err stays nil.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Err: err}
}
