package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("add item: %w", Wrap(cause, CodeInternal, "failed to persist"))

	assert.True(t, HasCode(err, CodeInternal))
	assert.True(t, Is(err, CodeInternal))
	assert.False(t, HasCode(err, CodeNotFound))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeInternal, CodeOf(err))
	assert.Equal(t, "failed to persist: disk full", errors.Unwrap(err).Error())

	assert.Equal(t, CodeInternal, CodeOf(cause))
	assert.Equal(t, "item 3 missing", New(CodeIndexOutOfRange, "item 3 missing").Error())

	de, ok := As(New(CodeValidation, "name is required"))
	assert.True(t, ok)
	assert.Equal(t, CodeValidation, de.Code)
}
