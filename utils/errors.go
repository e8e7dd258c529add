package utils

import "errors"

// ValidationError indicates caller-supplied data failed a field or
// cross-field rule. Always correctable by the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError indicates a referenced id or token does not resolve.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) error {
	return &NotFoundError{Message: message}
}

// ConflictError indicates a business-rule conflict: a vehicle already in a
// set, an inspection already submitted, a duplicate plate or chassis.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// StorageError wraps a database or file-system failure. Potentially
// retryable, unlike the other kinds.
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(message string, err error) error {
	return &StorageError{Message: message, Err: err}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFoundError(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

func IsConflictError(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
