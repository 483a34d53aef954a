package game

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-cli/internal/apperror"
	"github.com/rocketscienceinc/gomoku-cli/internal/entity"
	"github.com/rocketscienceinc/gomoku-cli/internal/gomoku"
)

// Game is a live game: the board plus who moved last and in which order.
type Game struct {
	Board   *entity.Board
	Last    entity.Player
	History []entity.Move
}

func NewGame(size int) (*Game, error) {
	board, err := entity.NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Game{Board: board}, nil
}

// Turn is the side to move, or Empty once the game is over.
func (that *Game) Turn() entity.Player {
	if that.IsFinished() {
		return entity.Empty
	}

	return gomoku.Turn(that.Board, that.Last)
}

func (that *Game) MakeMove(player entity.Player, move entity.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if player != that.Turn() {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Turn())
	}

	if _, err := gomoku.ApplyMove(that.Board, move, player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Last = player
	that.History = append(that.History, move)

	return nil
}

func (that *Game) Outcome() gomoku.Outcome {
	return gomoku.GetOutcome(that.Board)
}

func (that *Game) IsFinished() bool {
	return gomoku.IsTerminal(that.Board)
}
