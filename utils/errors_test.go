package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	validation := NewValidationError("bad field")
	notFound := NewNotFoundError("missing")
	conflict := NewConflictError("taken")
	storage := NewStorageError("query failed", errors.New("boom"))

	assert.True(t, IsValidationError(validation))
	assert.False(t, IsValidationError(notFound))

	assert.True(t, IsNotFoundError(notFound))
	assert.False(t, IsNotFoundError(conflict))

	assert.True(t, IsConflictError(conflict))
	assert.False(t, IsConflictError(storage))

	assert.True(t, IsStorageError(storage))
	assert.False(t, IsStorageError(validation))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "bad field", NewValidationError("bad field").Error())
	assert.Equal(t, "query failed: boom", NewStorageError("query failed", errors.New("boom")).Error())
	assert.Equal(t, "no cause", (&StorageError{Message: "no cause"}).Error())
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewConflictError("taken"))
	assert.True(t, IsConflictError(wrapped))
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("write failed", cause)
	assert.True(t, errors.Is(err, cause))
}
