// Package errors provides the storefront API response envelope and the
// error taxonomy shared by the HTTP surface.
package errors

import "fmt"

// Envelope is the uniform response shape of the storefront API: successful
// calls carry data, failures carry a message and success=false.
type Envelope struct {
	Data    any    `json:"data,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// OK wraps a payload in a successful envelope.
func OK(data any) Envelope {
	return Envelope{Data: data, Success: true}
}

// Failure builds an error envelope.
func Failure(message string) Envelope {
	return Envelope{Success: false, Error: message}
}

// APIError couples an HTTP status with a client-facing message. It keeps the
// underlying cause for logs while the envelope only exposes the message.
type APIError struct {
	Status  int
	Message string
	cause   error
}

// Error implements the error interface.
func (e APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the cause for errors.Is/As.
func (e APIError) Unwrap() error {
	return e.cause
}

// WithCause returns a copy carrying the underlying error.
func (e APIError) WithCause(cause error) APIError {
	e.cause = cause
	return e
}
