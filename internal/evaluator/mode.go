package evaluator

import (
	"errors"
	"fmt"
)

var ErrUnknownMode = errors.New("unknown evaluation mode")

// Mode - how the second column of the strategy guide is read.
type Mode uint8

const (
	// MovesVsMoves - the second column is the move we play.
	MovesVsMoves Mode = iota + 1
	// MoveVsDesiredOutcome - the second column is how the round must end.
	MoveVsDesiredOutcome
)

const (
	ModeNameMoves   = "moves"
	ModeNameOutcome = "outcome"
)

func Modes() []Mode {
	return []Mode{MovesVsMoves, MoveVsDesiredOutcome}
}

func ParseMode(name string) (Mode, error) {
	switch name {
	case ModeNameMoves:
		return MovesVsMoves, nil
	case ModeNameOutcome:
		return MoveVsDesiredOutcome, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

func (that Mode) String() string {
	switch that {
	case MovesVsMoves:
		return ModeNameMoves
	case MoveVsDesiredOutcome:
		return ModeNameOutcome
	default:
		return fmt.Sprintf("mode(%d)", uint8(that))
	}
}
