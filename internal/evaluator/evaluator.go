package evaluator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/rps-strategy-guide/internal/apperror"
	"github.com/rocketscienceinc/rps-strategy-guide/internal/entity"
	"github.com/rocketscienceinc/rps-strategy-guide/internal/rps"
	"github.com/rocketscienceinc/rps-strategy-guide/internal/scoring"
)

const (
	tokensPerLine = 2

	initialLineBuffer = 64 * 1024
	maxLineSize       = 1024 * 1024
)

// Round - one evaluated line of the strategy guide.
type Round struct {
	Opponent entity.Move
	Player   entity.Move
	Outcome  entity.Outcome
	Score    uint
}

// Evaluator - scores strategy guides. It holds no per-document state and can be reused.
type Evaluator struct {
	table scoring.Table
}

func New(table scoring.Table) *Evaluator {
	return &Evaluator{table: table}
}

// EvaluateLine - scores a single "<opponent> <second column>" line.
func (that *Evaluator) EvaluateLine(line string, mode Mode) (Round, error) {
	tokens := strings.Fields(line)
	if len(tokens) != tokensPerLine {
		return Round{}, fmt.Errorf("%w: want %d tokens, got %d", apperror.ErrMalformedLine, tokensPerLine, len(tokens))
	}

	opponent, err := entity.ParseMove(tokens[0])
	if err != nil {
		return Round{}, err
	}

	round := Round{Opponent: opponent}

	switch mode {
	case MovesVsMoves:
		if round.Player, err = entity.ParseMove(tokens[1]); err != nil {
			return Round{}, err
		}
		round.Outcome = rps.Resolve(round.Opponent, round.Player)
	case MoveVsDesiredOutcome:
		if round.Outcome, err = entity.ParseOutcome(tokens[1]); err != nil {
			return Round{}, err
		}
		round.Player = rps.Derive(round.Opponent, round.Outcome)
	default:
		return Round{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	round.Score = that.table.MoveScore(round.Player) + that.table.OutcomeScore(round.Outcome)

	return round, nil
}

// Evaluate - total score of a whole document.
func (that *Evaluator) Evaluate(document string, mode Mode) (uint, error) {
	return that.EvaluateReader(strings.NewReader(document), mode)
}

// EvaluateReader - total score of a document read from r. No partial total is returned on error.
func (that *Evaluator) EvaluateReader(r io.Reader, mode Mode) (uint, error) {
	var total uint

	err := that.walk(r, mode, func(round Round) {
		total += round.Score
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// Rounds - per-line breakdown of a document, in input order.
func (that *Evaluator) Rounds(r io.Reader, mode Mode) ([]Round, error) {
	var rounds []Round

	err := that.walk(r, mode, func(round Round) {
		rounds = append(rounds, round)
	})
	if err != nil {
		return nil, err
	}

	return rounds, nil
}

// walk - evaluates lines in order and stops at the first failure.
// Blank lines are only tolerated at the end of the document.
func (that *Evaluator) walk(r io.Reader, mode Mode, fn func(Round)) error {
	if mode != MovesVsMoves && mode != MoveVsDesiredOutcome {
		return fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineSize)

	var (
		lineNumber int
		firstBlank int
	)

	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			if firstBlank == 0 {
				firstBlank = lineNumber
			}
			continue
		}

		if firstBlank != 0 {
			return &apperror.LineError{
				Line: firstBlank,
				Err:  fmt.Errorf("%w: blank line inside document", apperror.ErrMalformedLine),
			}
		}

		round, err := that.EvaluateLine(line, mode)
		if err != nil {
			return &apperror.LineError{Line: lineNumber, Content: line, Err: err}
		}

		fn(round)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return &apperror.LineError{
				Line: lineNumber + 1,
				Err:  fmt.Errorf("%w: line too long", apperror.ErrMalformedLine),
			}
		}

		return fmt.Errorf("failed to read document: %w", err)
	}

	return nil
}
