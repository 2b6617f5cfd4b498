package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("book: %w", ErrSlotFull)
	assert.True(t, errors.Is(wrapped, ErrSlotFull))
	assert.False(t, errors.Is(wrapped, ErrDuplicateUserID))

	v := Validation("customer_name", "is required")
	assert.True(t, errors.Is(v, ErrValidation))
	assert.Equal(t, "customer_name: is required", v.Message)
}

func TestStoreWrapsCause(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := Store("count reservations", cause)

	assert.True(t, errors.Is(err, ErrStore))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.Nil(t, Store("noop", nil))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("x: %w", ErrSlotFull)))
	assert.Equal(t, KindNotFound, KindOf(ErrQueueEntryNotFound))
	assert.Equal(t, KindUnauthorized, KindOf(ErrInvalidCredentials))
	assert.Equal(t, KindStore, KindOf(errors.New("boom")))
	assert.Equal(t, "conflict", KindConflict.String())
}
