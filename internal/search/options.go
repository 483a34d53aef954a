package search

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/gomoku-cli/internal/gomoku"
)

type Option func(engine *Engine)

func WithRules(rules gomoku.Rules) Option {
	return func(e *Engine) {
		if rules.WinLength > 0 {
			e.rules = rules
		}
	}
}

// WithSeed fixes the shuffle source so that tie-breaks are reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithWorkers bounds how many root candidates are searched at once.
func WithWorkers(workers int) Option {
	return func(e *Engine) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func defaultSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
