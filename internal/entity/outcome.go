package entity

import (
	"fmt"

	"github.com/rocketscienceinc/rps-strategy-guide/internal/apperror"
)

// Outcome - the result of a round, always seen from our side (the second column).
type Outcome uint8

const (
	Lose Outcome = iota + 1
	Draw
	Win
)

const (
	TokenLose = "X"
	TokenDraw = "Y"
	TokenWin  = "Z"
)

func Outcomes() []Outcome {
	return []Outcome{Lose, Draw, Win}
}

// ParseOutcome - converts a single token into the desired Outcome.
func ParseOutcome(token string) (Outcome, error) {
	switch token {
	case TokenLose:
		return Lose, nil
	case TokenDraw:
		return Draw, nil
	case TokenWin:
		return Win, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidOutcomeToken, token)
	}
}

// Opposite - the outcome the other player sees. Draw is its own opposite.
func (that Outcome) Opposite() Outcome {
	switch that {
	case Win:
		return Lose
	case Lose:
		return Win
	default:
		return that
	}
}

func (that Outcome) IsValid() bool {
	return that >= Lose && that <= Win
}

func (that Outcome) String() string {
	switch that {
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	case Win:
		return "win"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(that))
	}
}
