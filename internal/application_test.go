package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/rps-strategy-guide/internal/apperror"
	"github.com/rocketscienceinc/rps-strategy-guide/internal/config"
	"github.com/rocketscienceinc/rps-strategy-guide/internal/repository"
	"github.com/rocketscienceinc/rps-strategy-guide/internal/scoring"
	"github.com/rocketscienceinc/rps-strategy-guide/testing/suite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func fileConfig(t *testing.T, document string) *config.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "02.txt")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o600))

	return &config.Config{
		Source:  config.Source{Kind: config.SourceFile, Path: path},
		Modes:   []string{"moves", "outcome"},
		Scoring: scoring.Default(),
	}
}

func TestRunApp_FileSource(t *testing.T) {
	t.Run("Prints totals in configured order", func(t *testing.T) {
		// Given: the example guide on disk
		conf := fileConfig(t, "A Y\nB X\nC Z\n")
		conf.Modes = []string{"outcome", "moves"}

		// When: running the app
		var out bytes.Buffer
		err := RunApp(context.Background(), discardLogger(), conf, &out)

		// Then: one line per mode is printed
		require.NoError(t, err)
		assert.Equal(t, "outcome: 12\nmoves: 15\n", out.String())
	})

	t.Run("Fails on malformed guide without output", func(t *testing.T) {
		conf := fileConfig(t, "A Y\nA\n")

		var out bytes.Buffer
		err := RunApp(context.Background(), discardLogger(), conf, &out)

		require.ErrorIs(t, err, apperror.ErrMalformedLine)
		assert.Empty(t, out.String())
	})

	t.Run("Fails on missing document", func(t *testing.T) {
		conf := fileConfig(t, "")
		conf.Source.Path = filepath.Join(t.TempDir(), "missing.txt")

		err := RunApp(context.Background(), discardLogger(), conf, io.Discard)

		assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
	})

	t.Run("Fails on unknown source", func(t *testing.T) {
		conf := fileConfig(t, "")
		conf.Source.Kind = "ftp"

		err := RunApp(context.Background(), discardLogger(), conf, io.Discard)

		assert.ErrorIs(t, err, config.ErrUnknownSource)
	})

	t.Run("Fails on empty redis address", func(t *testing.T) {
		conf := &config.Config{
			Source:  config.Source{Kind: config.SourceRedis, Key: "input:02"},
			Scoring: scoring.Default(),
		}

		err := RunApp(context.Background(), discardLogger(), conf, io.Discard)

		assert.ErrorIs(t, err, ErrAddrNotFound)
	})
}

func TestRunApp_RedisSource(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: the example guide stored in redis
	err := repository.NewRedisDocumentRepository(st.Storage).Put(ctx, "input:02", "A Y\nB X\nC Z\n")
	require.NoError(t, err)

	host, port, ok := strings.Cut(st.Addr(), ":")
	require.True(t, ok)

	conf := &config.Config{
		Source:  config.Source{Kind: config.SourceRedis, Key: "input:02"},
		Redis:   config.Redis{Host: host, Port: port},
		Scoring: scoring.Default(),
	}

	// When: running the app against redis
	var out bytes.Buffer
	err = RunApp(ctx, st.Logger, conf, &out)

	// Then: both modes are scored
	require.NoError(t, err)
	assert.Equal(t, "moves: 15\noutcome: 12\n", out.String())
}
