package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/gomoku-cli/internal/entity"
	"github.com/rocketscienceinc/gomoku-cli/pkg/notation"
)

var (
	ErrInvalidBoardSize = errors.New("board size is out of range")
	ErrInvalidBot       = errors.New("bot must be X, O or empty")
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"GOMOKU_LOG_LEVEL" env-default:"info"`
	BoardSize int    `yaml:"board-size" env:"GOMOKU_BOARD_SIZE" env-default:"15"`
	Bot       string `yaml:"bot" env:"GOMOKU_BOT" env-default:""`
	Search    Search `yaml:"search"`
}

type Search struct {
	Workers int           `yaml:"workers" env:"GOMOKU_SEARCH_WORKERS" env-default:"1"`
	Timeout time.Duration `yaml:"timeout" env:"GOMOKU_SEARCH_TIMEOUT" env-default:"30s"`
	// Seed of the move shuffle; 0 picks one from the clock.
	Seed uint64 `yaml:"seed" env:"GOMOKU_SEARCH_SEED" env-default:"0"`
}

// MustLoad - load configuration from the yaml file at path, or from the environment when it does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read config from env: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.BoardSize < 1 || that.BoardSize > notation.MaxSize {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidBoardSize, that.BoardSize, notation.MaxSize)
	}

	if that.Bot != "" && entity.PlayerFromMark(that.Bot) == entity.Empty {
		return fmt.Errorf("%w: %q", ErrInvalidBot, that.Bot)
	}

	return nil
}

// BotPlayer is the side played by the computer, or Empty for none.
func (that *Config) BotPlayer() entity.Player {
	return entity.PlayerFromMark(that.Bot)
}
