package models

import "time"

// AppError is the normalized failure shape every transport or HTTP error is
// converted to before it leaves the adapter layer. It is transient: built per
// failed operation, reported upward, never persisted.
type AppError struct {
	// Message is the human-readable description, preferring the
	// server-provided message when one was present.
	Message string

	// Code is the taxonomy tag (e.g. "AUTH", "NOT_FOUND", "NETWORK").
	Code string

	// Status is the HTTP status of the failed response, 0 when no response
	// was received.
	Status int

	// Timestamp records when the error was constructed.
	Timestamp time.Time
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError builds an AppError stamped with the current time.
func NewAppError(message, code string, status int) *AppError {
	return &AppError{
		Message:   message,
		Code:      code,
		Status:    status,
		Timestamp: time.Now(),
	}
}
