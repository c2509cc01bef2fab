package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/rps-strategy-guide/internal/evaluator"
	"github.com/rocketscienceinc/rps-strategy-guide/internal/scoring"
)

const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

var (
	ErrUnknownSource = errors.New("unknown document source")
	ErrNoDocument    = errors.New("document source has no path or key")
)

type Config struct {
	LogLevel string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Source   Source        `yaml:"source"`
	Redis    Redis         `yaml:"redis"`
	Modes    []string      `yaml:"modes" env:"MODES" env-default:"moves,outcome"`
	Scoring  scoring.Table `yaml:"scoring"`
}

type Source struct {
	Kind string `yaml:"kind" env:"SOURCE_KIND" env-default:"file"`
	Path string `yaml:"path" env:"SOURCE_PATH"`
	Key  string `yaml:"key" env:"SOURCE_KEY"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Source.Kind {
	case SourceFile:
		if that.Source.Path == "" {
			return fmt.Errorf("%w: %s", ErrNoDocument, that.Source.Kind)
		}
	case SourceRedis:
		if that.Source.Key == "" {
			return fmt.Errorf("%w: %s", ErrNoDocument, that.Source.Kind)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, that.Source.Kind)
	}

	if _, err := that.EvaluationModes(); err != nil {
		return err
	}

	if err := that.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	return nil
}

// EvaluationModes - configured modes in order; all modes when none configured.
func (that *Config) EvaluationModes() ([]evaluator.Mode, error) {
	if len(that.Modes) == 0 {
		return evaluator.Modes(), nil
	}

	modes := make([]evaluator.Mode, 0, len(that.Modes))
	for _, name := range that.Modes {
		mode, err := evaluator.ParseMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, mode)
	}

	return modes, nil
}

// DocumentID - the file path or Redis key, depending on the source kind.
func (that *Source) DocumentID() string {
	if that.Kind == SourceRedis {
		return that.Key
	}
	return that.Path
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
