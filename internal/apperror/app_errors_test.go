package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineError(t *testing.T) {
	t.Run("Unwraps to the error kind", func(t *testing.T) {
		// Given: a line error wrapping a malformed line
		err := fmt.Errorf("evaluate: %w", &LineError{Line: 2, Content: "A", Err: ErrMalformedLine})

		// Then: the kind and the line context are both reachable
		assert.ErrorIs(t, err, ErrMalformedLine)

		var lineErr *LineError
		require.True(t, errors.As(err, &lineErr))
		assert.Equal(t, 2, lineErr.Line)
		assert.Equal(t, "A", lineErr.Content)
	})

	t.Run("Message carries line number and content", func(t *testing.T) {
		err := &LineError{Line: 7, Content: "D Y", Err: ErrInvalidMoveToken}

		assert.Equal(t, `line 7 "D Y": invalid move token`, err.Error())
	})
}
