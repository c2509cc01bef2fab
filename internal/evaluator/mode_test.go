package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	t.Run("Parses known names", func(t *testing.T) {
		for _, mode := range Modes() {
			parsed, err := ParseMode(mode.String())

			require.NoError(t, err)
			assert.Equal(t, mode, parsed)
		}
	})

	t.Run("Rejects unknown names", func(t *testing.T) {
		_, err := ParseMode("part-three")

		assert.ErrorIs(t, err, ErrUnknownMode)
	})
}
