package scoring

import (
	"errors"

	"github.com/rocketscienceinc/rps-strategy-guide/internal/entity"
)

var ErrEmptyTable = errors.New("scoring table has no points")

// Table - points awarded for the shape we play plus points for the round outcome.
type Table struct {
	Rock    uint `yaml:"rock" env:"SCORE_ROCK" env-default:"1"`
	Paper   uint `yaml:"paper" env:"SCORE_PAPER" env-default:"2"`
	Scissor uint `yaml:"scissor" env:"SCORE_SCISSOR" env-default:"3"`

	Lose uint `yaml:"lose" env:"SCORE_LOSE" env-default:"0"`
	Draw uint `yaml:"draw" env:"SCORE_DRAW" env-default:"3"`
	Win  uint `yaml:"win" env:"SCORE_WIN" env-default:"6"`
}

// Default - the tournament scoring rules.
func Default() Table {
	return Table{
		Rock:    1,
		Paper:   2,
		Scissor: 3,
		Lose:    0,
		Draw:    3,
		Win:     6,
	}
}

func (that Table) MoveScore(m entity.Move) uint {
	switch m {
	case entity.Rock:
		return that.Rock
	case entity.Paper:
		return that.Paper
	case entity.Scissor:
		return that.Scissor
	default:
		return 0
	}
}

func (that Table) OutcomeScore(o entity.Outcome) uint {
	switch o {
	case entity.Lose:
		return that.Lose
	case entity.Draw:
		return that.Draw
	case entity.Win:
		return that.Win
	default:
		return 0
	}
}

// Max - the highest score a single round can produce.
func (that Table) Max() uint {
	return max(that.Rock, that.Paper, that.Scissor) + max(that.Lose, that.Draw, that.Win)
}

func (that Table) Validate() error {
	if that.Max() == 0 {
		return ErrEmptyTable
	}

	return nil
}
