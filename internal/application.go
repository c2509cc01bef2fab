package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/rps-strategy-guide/internal/config"
	"github.com/rocketscienceinc/rps-strategy-guide/internal/evaluator"
	"github.com/rocketscienceinc/rps-strategy-guide/internal/repository"
	"github.com/rocketscienceinc/rps-strategy-guide/internal/repository/storage"
	"github.com/rocketscienceinc/rps-strategy-guide/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis host or port is empty")

// RunApp - scores the configured strategy guide and prints one "<mode>: <total>" line per mode to out.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	modes, err := conf.EvaluationModes()
	if err != nil {
		return fmt.Errorf("invalid modes: %w", err)
	}

	documentRepo, closeRepo, err := newDocumentRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close document source", "error", err)
		}
	}()

	guide := usecase.NewStrategyGuide(logger, documentRepo, evaluator.New(conf.Scoring))

	log.Info("Scoring strategy guide", "source", conf.Source.Kind, "document", conf.Source.DocumentID())

	report, err := guide.Score(ctx, conf.Source.DocumentID(), modes...)
	if err != nil {
		return fmt.Errorf("could not score strategy guide: %w", err)
	}

	for _, mode := range report.Modes {
		if _, err = fmt.Fprintf(out, "%s: %d\n", mode, report.Totals[mode]); err != nil {
			return fmt.Errorf("could not write report: %w", err)
		}
	}

	return nil
}

func newDocumentRepository(ctx context.Context, conf *config.Config) (repository.DocumentRepository, func() error, error) {
	switch conf.Source.Kind {
	case config.SourceRedis:
		if conf.Redis.Host == "" || conf.Redis.Port == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisDocumentRepository(redisStorage.Connection), redisStorage.Close, nil
	case config.SourceFile:
		return repository.NewFileDocumentRepository("."), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownSource, conf.Source.Kind)
	}
}
