// Package search picks a move for the side to play with exhaustive
// minimax and alpha-beta pruning.
package search

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/gomoku-cli/internal/entity"
	"github.com/rocketscienceinc/gomoku-cli/internal/gomoku"
)

// Score is the minimax value of a position: +1 when A wins, -1 when B wins, 0 otherwise.
type Score int

const (
	ScoreWinA Score = 1
	ScoreDraw Score = 0
	ScoreWinB Score = -1

	// infinity only needs to sit outside the terminal scores.
	infinity Score = 1 << 20

	// cancelCheckInterval is how many nodes are visited between context checks.
	cancelCheckInterval = 1024
)

// Stats describe the last completed search.
type Stats struct {
	Candidates int
	Nodes      int64
	Cutoffs    int64
	Elapsed    time.Duration
}

type Engine struct {
	rules   gomoku.Rules
	seed    uint64
	workers int
	logger  zerolog.Logger

	mu        sync.Mutex
	rng       *rand.Rand
	lastStats Stats
}

func New(options ...Option) *Engine {
	e := &Engine{
		rules:   gomoku.Standard,
		seed:    defaultSeed(),
		workers: 1,
		logger:  zerolog.Nop(),
	}
	for _, option := range options {
		option(e)
	}

	e.rng = rand.New(rand.NewSource(e.seed))
	e.logger = e.logger.With().Str("component", "search").Logger()

	return e
}

// RecommendMove returns the best move for the side to move, or false for a finished game.
// The board is only read.
func (that *Engine) RecommendMove(board *entity.Board) (entity.Move, bool) {
	move, ok, err := that.RecommendMoveContext(context.Background(), board)
	if err != nil {
		// a background context never cancels
		return entity.Move{}, false
	}

	return move, ok
}

// RecommendMoveContext is RecommendMove bounded by ctx. On cancellation or
// deadline it returns ctx.Err() and no move.
func (that *Engine) RecommendMoveContext(ctx context.Context, board *entity.Board) (entity.Move, bool, error) {
	if that.rules.IsTerminal(board) {
		return entity.Move{}, false, nil
	}

	start := time.Now()
	side := that.rules.Turn(board, entity.Empty)
	maximizing := side == entity.PlayerA

	moves := that.rules.LegalMoves(board)
	that.shuffle(moves)

	values := make([]Score, len(moves))
	counters := make([]counter, len(moves))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(that.workers)

	for i, move := range moves {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			child, err := that.rules.WithMove(board, move, side)
			if err != nil {
				return err
			}

			s := &searcher{ctx: gctx, rules: that.rules, counter: &counters[i]}
			value, err := s.alphaBeta(child, -infinity, infinity, !maximizing)
			if err != nil {
				return err
			}

			values[i] = value
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		that.logger.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("search aborted")
		return entity.Move{}, false, err
	}

	best := pickBest(values, maximizing)

	stats := Stats{Candidates: len(moves), Elapsed: time.Since(start)}
	for _, c := range counters {
		stats.Nodes += c.nodes
		stats.Cutoffs += c.cutoffs
	}
	that.setStats(stats)

	that.logger.Debug().
		Str("side", side.String()).
		Int("candidates", stats.Candidates).
		Int64("nodes", stats.Nodes).
		Int64("cutoffs", stats.Cutoffs).
		Int("value", int(values[best])).
		Dur("elapsed", stats.Elapsed).
		Msg("move recommended")

	return moves[best], true, nil
}

func (that *Engine) LastStats() Stats {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.lastStats
}

func (that *Engine) setStats(stats Stats) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.lastStats = stats
}

func (that *Engine) shuffle(moves []entity.Move) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
}

// pickBest returns the index of the first maximum (or minimum) value.
func pickBest(values []Score, maximizing bool) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if maximizing && values[i] > values[best] {
			best = i
		}
		if !maximizing && values[i] < values[best] {
			best = i
		}
	}

	return best
}

func terminalScore(winner entity.Player) Score {
	return Score(winner.Sign())
}
