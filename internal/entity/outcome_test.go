package entity

import (
	"testing"

	"github.com/rocketscienceinc/rps-strategy-guide/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutcome(t *testing.T) {
	t.Run("Parses desired outcome tokens", func(t *testing.T) {
		cases := map[string]Outcome{
			"X": Lose,
			"Y": Draw,
			"Z": Win,
		}

		for token, expected := range cases {
			outcome, err := ParseOutcome(token)

			require.NoError(t, err, token)
			assert.Equal(t, expected, outcome, token)
		}
	})

	t.Run("Rejects opponent column tokens", func(t *testing.T) {
		for _, token := range []string{"A", "B", "C", "z", ""} {
			// When: parsing a token that is only valid as a move
			_, err := ParseOutcome(token)

			// Then: it should fail with ErrInvalidOutcomeToken
			assert.ErrorIs(t, err, apperror.ErrInvalidOutcomeToken, token)
		}
	})
}

func TestOutcome_Opposite(t *testing.T) {
	assert.Equal(t, Lose, Win.Opposite())
	assert.Equal(t, Win, Lose.Opposite())
	assert.Equal(t, Draw, Draw.Opposite())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "lose", Lose.String())
	assert.Equal(t, "draw", Draw.String())
	assert.Equal(t, "win", Win.String())
	assert.Equal(t, "outcome(9)", Outcome(9).String())
}
