package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/rps-strategy-guide/internal/apperror"
	"github.com/rocketscienceinc/rps-strategy-guide/internal/evaluator"
)

type documentRepo interface {
	GetByID(ctx context.Context, id string) (string, error)
}

// Report - totals of one strategy guide, per evaluation mode.
type Report struct {
	DocumentID string
	Modes      []evaluator.Mode
	Totals     map[evaluator.Mode]uint
}

type StrategyGuide struct {
	logger       *slog.Logger
	documentRepo documentRepo
	evaluator    *evaluator.Evaluator
}

func NewStrategyGuide(logger *slog.Logger, documentRepo documentRepo, eval *evaluator.Evaluator) *StrategyGuide {
	return &StrategyGuide{
		logger: logger.With("component", "strategy-guide"),

		documentRepo: documentRepo,
		evaluator:    eval,
	}
}

// Score - loads the guide once and evaluates it under every requested mode (all modes when none given).
func (that *StrategyGuide) Score(ctx context.Context, documentID string, modes ...evaluator.Mode) (*Report, error) {
	log := that.logger.With("document", documentID)

	if len(modes) == 0 {
		modes = evaluator.Modes()
	}

	document, err := that.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	report := &Report{
		DocumentID: documentID,
		Modes:      modes,
		Totals:     make(map[evaluator.Mode]uint, len(modes)),
	}

	for _, mode := range modes {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		total, scoreErr := that.scoreMode(ctx, log, document, mode)
		if scoreErr != nil {
			return nil, fmt.Errorf("failed to score %s mode: %w", mode, scoreErr)
		}

		report.Totals[mode] = total
		log.Info("Strategy guide scored", "mode", mode.String(), "total", total)
	}

	return report, nil
}

func (that *StrategyGuide) scoreMode(ctx context.Context, log *slog.Logger, document string, mode evaluator.Mode) (uint, error) {
	if !log.Enabled(ctx, slog.LevelDebug) {
		total, err := that.evaluator.Evaluate(document, mode)
		if err != nil {
			that.logFailure(log, mode, err)
			return 0, err
		}

		return total, nil
	}

	rounds, err := that.evaluator.Rounds(strings.NewReader(document), mode)
	if err != nil {
		that.logFailure(log, mode, err)
		return 0, err
	}

	var total uint
	for i, round := range rounds {
		total += round.Score
		log.Debug("Round evaluated",
			"mode", mode.String(),
			"round", i+1,
			"opponent", round.Opponent.String(),
			"player", round.Player.String(),
			"outcome", round.Outcome.String(),
			"score", round.Score,
		)
	}

	return total, nil
}

func (that *StrategyGuide) logFailure(log *slog.Logger, mode evaluator.Mode, err error) {
	var lineErr *apperror.LineError
	if errors.As(err, &lineErr) {
		log.Error("Strategy guide rejected",
			"mode", mode.String(),
			"line", lineErr.Line,
			"content", lineErr.Content,
			"error", lineErr.Err,
		)
		return
	}

	log.Error("Strategy guide rejected", "mode", mode.String(), "error", err)
}
