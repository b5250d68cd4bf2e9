// Package errors defines the typed errors lodestone reports. Each wraps its
// cause so callers can match with errors.As and still reach the underlying
// error with errors.Is.
package errors

import (
	"fmt"
)

// ParseError is a configuration, token or env file that could not be read.
// Line is 0 when the parser did not report one.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

func NewParseError(path string, line int, err error) error {
	pe := &ParseError{Path: path, Line: line, Err: err}
	if err != nil {
		pe.Message = err.Error()
	}
	return pe
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	where := e.Path
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return "parse error: " + where + ": " + e.Message
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError names the setting that failed validation. Field uses the
// dotted key form, e.g. "api.base_url".
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Field == "":
		return "validation error: " + e.Message
	default:
		return "validation error: " + e.Field + ": " + e.Message
	}
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FetchError is a request that did not produce a 2xx response. Status is 0
// when the transport failed before a response arrived.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func NewFetchError(url string, status int, err error) error {
	return &FetchError{URL: url, Status: status, Err: err}
}

func (e *FetchError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Status != 0:
		return fmt.Sprintf("fetch error: %s: unexpected status %d", e.URL, e.Status)
	default:
		return fmt.Sprintf("fetch error: %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DecodeError is a response body that is not the expected JSON.
type DecodeError struct {
	URL string
	Err error
}

func NewDecodeError(url string, err error) error {
	return &DecodeError{URL: url, Err: err}
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("decode error: %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
