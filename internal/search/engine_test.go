package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-cli/internal/entity"
	"github.com/rocketscienceinc/gomoku-cli/internal/gomoku"
)

var ticTacToe = gomoku.Rules{WinLength: 3}

func boardFromRows(t *testing.T, rows ...string) *entity.Board {
	t.Helper()

	board, err := entity.NewBoard(len(rows))
	require.NoError(t, err)

	for r, line := range rows {
		require.Len(t, line, len(rows), "row %d is not square", r)
		for c, ch := range line {
			require.NoError(t, board.Set(r, c, entity.PlayerFromMark(string(ch))))
		}
	}

	return board
}

func TestEngine_RecommendMove(t *testing.T) {
	t.Run("Takes the only winning move", func(t *testing.T) {
		// Given: A to move with two in a row, B also threatening
		board := boardFromRows(t,
			"XX.",
			"OO.",
			"...",
		)
		engine := New(WithRules(ticTacToe), WithSeed(1))

		// When: a move is recommended
		move, ok := engine.RecommendMove(board)

		// Then: applying it wins for A
		require.True(t, ok)
		require.Equal(t, entity.Move{Row: 0, Col: 2}, move)

		next, err := ticTacToe.WithMove(board, move, entity.Empty)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerA, ticTacToe.Winner(next))
	})

	t.Run("Blocks the only threat", func(t *testing.T) {
		// Given: B to move, A threatens the left column
		board := boardFromRows(t,
			"X..",
			".O.",
			"X..",
		)
		engine := New(WithRules(ticTacToe), WithSeed(7))

		// When: a move is recommended for B
		move, ok := engine.RecommendMove(board)

		// Then: B blocks
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 1, Col: 0}, move)
	})

	t.Run("Answers the center with a corner", func(t *testing.T) {
		board := boardFromRows(t,
			"...",
			".X.",
			"...",
		)
		corners := []entity.Move{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}

		for seed := uint64(1); seed <= 5; seed++ {
			engine := New(WithRules(ticTacToe), WithSeed(seed))

			move, ok := engine.RecommendMove(board)

			require.True(t, ok)
			assert.Contains(t, corners, move, "seed %d", seed)
		}
	})

	t.Run("Completes five on a standard board", func(t *testing.T) {
		// Given: a 5x5 board where A has four in the top row
		board := boardFromRows(t,
			"XXXX.",
			"OOOO.",
			"XOXOX",
			"OXOXO",
			".....",
		)
		require.Equal(t, entity.PlayerA, gomoku.Turn(board, entity.Empty))
		engine := New(WithSeed(3))

		// When: a move is recommended
		move, ok := engine.RecommendMove(board)

		// Then: it is the winning one
		require.True(t, ok)
		require.Equal(t, entity.Move{Row: 0, Col: 4}, move)

		_, err := gomoku.ApplyMove(board, move, entity.Empty)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerA, gomoku.Winner(board))
	})

	t.Run("No move on a finished game", func(t *testing.T) {
		engine := New(WithRules(ticTacToe))

		won := boardFromRows(t,
			"XXX",
			"OO.",
			"...",
		)
		_, ok := engine.RecommendMove(won)
		assert.False(t, ok)

		drawn := boardFromRows(t,
			"XOX",
			"XOO",
			"OXX",
		)
		_, ok = engine.RecommendMove(drawn)
		assert.False(t, ok)
	})

	t.Run("Board is left untouched", func(t *testing.T) {
		board := boardFromRows(t,
			"X..",
			".O.",
			"...",
		)
		before := board.Copy()
		engine := New(WithRules(ticTacToe), WithWorkers(4))

		_, ok := engine.RecommendMove(board)

		require.True(t, ok)
		assert.Equal(t, before, board)
	})

	t.Run("Empty board picks any legal move", func(t *testing.T) {
		board := boardFromRows(t,
			"...",
			"...",
			"...",
		)
		seen := map[entity.Move]bool{}

		for seed := uint64(1); seed <= 20; seed++ {
			engine := New(WithRules(ticTacToe), WithSeed(seed))

			move, ok := engine.RecommendMove(board)

			require.True(t, ok)
			require.True(t, board.InBounds(move.Row, move.Col))
			seen[move] = true
		}

		// Then: every opening is a draw, so the shuffle decides
		assert.Greater(t, len(seen), 1)
	})
}

func TestEngine_Workers(t *testing.T) {
	board := boardFromRows(t,
		"X..",
		"...",
		"..O",
	)

	for seed := uint64(1); seed <= 5; seed++ {
		sequential := New(WithRules(ticTacToe), WithSeed(seed), WithWorkers(1))
		parallel := New(WithRules(ticTacToe), WithSeed(seed), WithWorkers(8))

		want, ok := sequential.RecommendMove(board)
		require.True(t, ok)

		got, ok := parallel.RecommendMove(board)
		require.True(t, ok)

		assert.Equal(t, want, got, "seed %d", seed)
	}
}

func TestEngine_RecommendMoveContext(t *testing.T) {
	t.Run("Canceled context aborts the search", func(t *testing.T) {
		board := boardFromRows(t,
			"...",
			"...",
			"...",
		)
		engine := New(WithRules(ticTacToe))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, ok, err := engine.RecommendMoveContext(ctx, board)

		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, ok)
	})

	t.Run("Deadline on a large board", func(t *testing.T) {
		board, err := entity.NewBoard(entity.DefaultBoardSize)
		require.NoError(t, err)
		engine := New(WithWorkers(2))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, ok, err := engine.RecommendMoveContext(ctx, board)

		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, ok)
	})

	t.Run("Stats of a finished search", func(t *testing.T) {
		board := boardFromRows(t,
			"X..",
			".O.",
			"...",
		)
		engine := New(WithRules(ticTacToe))

		_, ok, err := engine.RecommendMoveContext(context.Background(), board)

		require.NoError(t, err)
		require.True(t, ok)

		stats := engine.LastStats()
		assert.Equal(t, 7, stats.Candidates)
		assert.Positive(t, stats.Nodes)
		assert.Positive(t, stats.Cutoffs)
	})
}

func TestPickBest(t *testing.T) {
	values := []Score{0, 1, -1, 1, -1}

	assert.Equal(t, 1, pickBest(values, true), "first maximum wins the tie")
	assert.Equal(t, 2, pickBest(values, false), "first minimum wins the tie")
	assert.Equal(t, 0, pickBest([]Score{0}, true))
}

func TestTerminalScore(t *testing.T) {
	assert.Equal(t, ScoreWinA, terminalScore(entity.PlayerA))
	assert.Equal(t, ScoreWinB, terminalScore(entity.PlayerB))
	assert.Equal(t, ScoreDraw, terminalScore(entity.Empty))
	assert.Greater(t, infinity, ScoreWinA)
	assert.Less(t, -infinity, ScoreWinB)
}

func TestAlphaBetaMoverFollowsMaximizingFlag(t *testing.T) {
	// Given a hand-built board where O has more stones, so parity would give X the move
	board := boardFromRows(t,
		"OO.",
		"X..",
		"...",
	)
	s := &searcher{ctx: context.Background(), rules: ticTacToe, counter: &counter{}}

	// When searching with the minimizing side to move
	value, err := s.alphaBeta(board, -infinity, infinity, false)

	// Then O moves and completes the row
	require.NoError(t, err)
	assert.Equal(t, ScoreWinB, value)
}
