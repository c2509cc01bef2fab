package entity

import (
	"fmt"

	"github.com/rocketscienceinc/rps-strategy-guide/internal/apperror"
)

// Move - a hand shape. The zero value is not a valid move.
type Move uint8

const (
	Rock Move = iota + 1
	Paper
	Scissor
)

// Move tokens. The opponent column uses A-C, our column uses X-Z.
const (
	TokenOpponentRock    = "A"
	TokenOpponentPaper   = "B"
	TokenOpponentScissor = "C"

	TokenPlayerRock    = "X"
	TokenPlayerPaper   = "Y"
	TokenPlayerScissor = "Z"
)

// Moves - every valid move, in scoring order.
func Moves() []Move {
	return []Move{Rock, Paper, Scissor}
}

// ParseMove - converts a single token into a Move. Matching is exact and case-sensitive.
func ParseMove(token string) (Move, error) {
	switch token {
	case TokenOpponentRock, TokenPlayerRock:
		return Rock, nil
	case TokenOpponentPaper, TokenPlayerPaper:
		return Paper, nil
	case TokenOpponentScissor, TokenPlayerScissor:
		return Scissor, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidMoveToken, token)
	}
}

func (that Move) IsValid() bool {
	return that >= Rock && that <= Scissor
}

func (that Move) String() string {
	switch that {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissor:
		return "scissor"
	default:
		return fmt.Sprintf("move(%d)", uint8(that))
	}
}
