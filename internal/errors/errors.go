// Package errors provides the client-facing error types for MicroLabs.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrMissingCredential = errors.New("no API key configured")
	ErrEmptyPrompt       = errors.New("prompt cannot be empty")
	ErrInvalidMediaType  = errors.New("unsupported media type")
	ErrMalformedJSON     = errors.New("response is not valid JSON")
	ErrProviderRefusal   = errors.New("provider refused the request")
)

// CredentialError signals that no API key is configured. It is returned
// before any network call is attempted.
type CredentialError struct {
	Message string
}

func (e *CredentialError) Error() string {
	if e.Message == "" {
		return "no API key configured"
	}
	return fmt.Sprintf("no API key configured: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *CredentialError) Is(target error) bool {
	if target == ErrMissingCredential {
		return true
	}
	_, ok := target.(*CredentialError)
	return ok
}

// NewCredentialError creates a new CredentialError
func NewCredentialError(message string) *CredentialError {
	return &CredentialError{Message: message}
}

// MediaTypeError signals an inline media payload with a MIME type the
// provider does not accept.
type MediaTypeError struct {
	MIMEType string
}

func (e *MediaTypeError) Error() string {
	return fmt.Sprintf("unsupported media type: %s", e.MIMEType)
}

// Is allows comparison with sentinel errors
func (e *MediaTypeError) Is(target error) bool {
	if target == ErrInvalidMediaType {
		return true
	}
	_, ok := target.(*MediaTypeError)
	return ok
}

// NewMediaTypeError creates a new MediaTypeError
func NewMediaTypeError(mimeType string) *MediaTypeError {
	return &MediaTypeError{MIMEType: mimeType}
}

// ValidationError represents a request rejected before dispatch
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Message)
}

// Is allows comparison with sentinel errors
func (e *ValidationError) Is(target error) bool {
	if target == ErrEmptyPrompt && e.Field == "prompt" {
		return true
	}
	_, ok := target.(*ValidationError)
	return ok
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// TransportError represents a network or HTTP-level failure
type TransportError struct {
	StatusCode int
	Endpoint   string
	Message    string
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("transport error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("transport error at %s: %s: %v", e.Endpoint, e.Message, e.Err)
	}
	return fmt.Sprintf("transport error at %s: %s", e.Endpoint, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a TransportError for a failed network call
func NewTransportError(endpoint, message string, err error) *TransportError {
	return &TransportError{Endpoint: endpoint, Message: message, Err: err}
}

// NewHTTPError creates a TransportError for a non-200 HTTP response
func NewHTTPError(statusCode int, endpoint, message, body string) *TransportError {
	return &TransportError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
		Body:       body,
	}
}

// RefusalError represents a response where the model declined to produce
// the requested artifact and returned explanatory text instead.
type RefusalError struct {
	Text string
}

func (e *RefusalError) Error() string {
	if e.Text == "" {
		return "provider refused the request"
	}
	return fmt.Sprintf("provider refused the request: %s", e.Text)
}

// Is allows comparison with sentinel errors
func (e *RefusalError) Is(target error) bool {
	if target == ErrProviderRefusal {
		return true
	}
	_, ok := target.(*RefusalError)
	return ok
}

// NewRefusalError creates a new RefusalError carrying the literal refusal text
func NewRefusalError(text string) *RefusalError {
	return &RefusalError{Text: text}
}

// MalformedJSONError represents a JSON-mode response that does not parse.
// Raw carries the original text so callers can fall back to treating the
// payload as plain text.
type MalformedJSONError struct {
	Raw string
	Err error
}

func (e *MalformedJSONError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("response is not valid JSON: %v", e.Err)
	}
	return "response is not valid JSON"
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}

// Is allows comparison with sentinel errors
func (e *MalformedJSONError) Is(target error) bool {
	if target == ErrMalformedJSON {
		return true
	}
	_, ok := target.(*MalformedJSONError)
	return ok
}

// NewMalformedJSONError creates a new MalformedJSONError
func NewMalformedJSONError(raw string, err error) *MalformedJSONError {
	return &MalformedJSONError{Raw: raw, Err: err}
}
