package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "member not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("product not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "product not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "memberId", Message: "memberId is required"},
		{Field: "productIds", Message: "productIds must not be empty"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestValidationError_IsValidationError(t *testing.T) {
	err := NewValidationError("invalid memberId")

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "invalid memberId", ve.Message)

	_, ok = IsValidationError(errors.New("plain"))
	assert.False(t, ok)
}

func TestEmptyInputError(t *testing.T) {
	err := NewEmptyInputError("no items extracted")

	eie, ok := IsEmptyInputError(err)
	assert.True(t, ok)
	assert.Equal(t, "no items extracted", eie.Error())

	_, ok = IsEmptyInputError(NewNotFoundError("nope"))
	assert.False(t, ok)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("database error")
	err := NewInternalError("failed to commit transaction", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to commit transaction: database error", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestInternalError_WithoutCause(t *testing.T) {
	err := NewInternalError("unexpected state", nil)

	assert.Equal(t, "unexpected state", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
