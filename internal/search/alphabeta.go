package search

import (
	"context"

	"github.com/rocketscienceinc/gomoku-cli/internal/entity"
	"github.com/rocketscienceinc/gomoku-cli/internal/gomoku"
)

type counter struct {
	nodes   int64
	cutoffs int64
}

// searcher runs one root branch. It is owned by a single goroutine.
type searcher struct {
	ctx     context.Context
	rules   gomoku.Rules
	counter *counter
}

// alphaBeta returns the minimax value of board. A is to move when maximizing.
// Terminal positions score the same at any depth.
func (that *searcher) alphaBeta(board *entity.Board, alpha, beta Score, maximizing bool) (Score, error) {
	that.counter.nodes++
	if that.counter.nodes%cancelCheckInterval == 0 {
		if err := that.ctx.Err(); err != nil {
			return 0, err
		}
	}

	if that.rules.IsTerminal(board) {
		return terminalScore(that.rules.Winner(board)), nil
	}

	player := entity.PlayerB
	score := infinity
	if maximizing {
		player = entity.PlayerA
		score = -infinity
	}

	for _, move := range that.rules.LegalMoves(board) {
		child, err := that.rules.WithMove(board, move, player)
		if err != nil {
			return 0, err
		}

		value, err := that.alphaBeta(child, alpha, beta, !maximizing)
		if err != nil {
			return 0, err
		}

		if maximizing {
			score = max(score, value)
			alpha = max(alpha, score)
		} else {
			score = min(score, value)
			beta = min(beta, score)
		}

		if alpha >= beta {
			that.counter.cutoffs++
			break
		}
	}

	return score, nil
}
