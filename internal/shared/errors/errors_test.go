package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetType(t *testing.T) {
	assert.Equal(t, ErrorTypeInvalidOperation, GetType(InvalidOperation("no ship")))
	assert.Equal(t, ErrorTypeNotFound, GetType(NotFoundf("preset %q", "x")))
	assert.Equal(t, ErrorTypeInternal, GetType(errors.New("plain")))

	wrapped := fmt.Errorf("start mission: %w", InvalidOperationf("mission %s has no target", "m1"))
	assert.Equal(t, ErrorTypeInvalidOperation, GetType(wrapped))
	assert.True(t, Is(wrapped, ErrorTypeInvalidOperation))
	assert.False(t, Is(nil, ErrorTypeInvalidOperation))
}

func TestAppErrorMessage(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := WrapValidation("decode preset", cause)

	assert.Equal(t, "decode preset: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "no ship", InvalidOperation("no ship").Error())
}
