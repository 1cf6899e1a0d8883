package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("Bad request."), KindValidation},
		{"conflict", Conflict("title %s exists", "A"), KindConflict},
		{"not found", NotFound("no such TODO with id %d", 3), KindNotFound},
		{"wrapped with fmt", fmt.Errorf("outer: %w", NotFound("x")), KindNotFound},
		{"plain error", cause, KindInternal},
		{"internal", Internal(cause), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestWrapKeepsMessage(t *testing.T) {
	cause := errors.New("store: task not found")
	err := NotFound("Error: no such TODO with id %d", 7).Wrap(cause)

	assert.Equal(t, "Error: no such TODO with id 7", err.Message)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
}
