package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-cli/internal/apperror"
	"github.com/rocketscienceinc/gomoku-cli/internal/entity"
)

const DefaultWinLength = 5

// Rules holds the variant parameters. A run wins only when it is exactly WinLength long.
type Rules struct {
	WinLength int
}

var (
	Standard = Rules{WinLength: DefaultWinLength}

	// directions are (row, col) steps: down-left, down, down-right, right.
	directions = [4][2]int{
		{1, -1},
		{1, 0},
		{1, 1},
		{0, 1},
	}
)

func Turn(board *entity.Board, last entity.Player) entity.Player {
	return Standard.Turn(board, last)
}

func LegalMoves(board *entity.Board) []entity.Move {
	return Standard.LegalMoves(board)
}

func ApplyMove(board *entity.Board, move entity.Move, player entity.Player) (*entity.Board, error) {
	return Standard.ApplyMove(board, move, player)
}

func WithMove(board *entity.Board, move entity.Move, player entity.Player) (*entity.Board, error) {
	return Standard.WithMove(board, move, player)
}

func Winner(board *entity.Board) entity.Player {
	return Standard.Winner(board)
}

func IsTerminal(board *entity.Board) bool {
	return Standard.IsTerminal(board)
}

func GetOutcome(board *entity.Board) Outcome {
	return Standard.Outcome(board)
}

// Turn returns the side to move. When last is a player the other one moves.
// Otherwise it is derived from the board: A moves unless A has more weight
// on the board, and Empty is returned for a full board.
func (that Rules) Turn(board *entity.Board, last entity.Player) entity.Player {
	if last == entity.PlayerA || last == entity.PlayerB {
		return last.Opponent()
	}

	if !board.HasEmpty() {
		return entity.Empty
	}

	if board.Sum() > 0 {
		return entity.PlayerB
	}

	return entity.PlayerA
}

// LegalMoves lists every empty cell in row-major order.
func (that Rules) LegalMoves(board *entity.Board) []entity.Move {
	size := board.Size()
	moves := make([]entity.Move, 0, board.EmptyCount())

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if board.Get(row, col) == entity.Empty {
				moves = append(moves, entity.Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// ApplyMove marks the cell for player (or the side to move when player is Empty)
// and returns the same board. A failed move leaves the board unchanged.
func (that Rules) ApplyMove(board *entity.Board, move entity.Move, player entity.Player) (*entity.Board, error) {
	if err := validateMove(board, move); err != nil {
		return board, fmt.Errorf("invalid move: %w", err)
	}

	if player == entity.Empty {
		player = that.Turn(board, entity.Empty)
	}

	if err := board.Set(move.Row, move.Col, player); err != nil {
		return board, fmt.Errorf("failed to set cell: %w", err)
	}

	return board, nil
}

// WithMove is ApplyMove on a copy; the input board is never touched.
func (that Rules) WithMove(board *entity.Board, move entity.Move, player entity.Player) (*entity.Board, error) {
	if player == entity.Empty {
		player = that.Turn(board, entity.Empty)
	}

	return that.ApplyMove(board.Copy(), move, player)
}

// Winner returns the player owning a run of exactly WinLength cells, or Empty.
func (that Rules) Winner(board *entity.Board) entity.Player {
	size := board.Size()

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			player := board.Get(row, col)
			if player == entity.Empty {
				continue
			}

			for _, dir := range directions {
				if that.isExactRun(board, row, col, dir, player) {
					return player
				}
			}
		}
	}

	return entity.Empty
}

// IsTerminal reports a win or a full board.
func (that Rules) IsTerminal(board *entity.Board) bool {
	return that.Winner(board) != entity.Empty || !board.HasEmpty()
}

// isExactRun checks for a run starting at (row, col). Runs are only counted
// from their first cell, so each one is seen once per axis.
func (that Rules) isExactRun(board *entity.Board, row, col int, dir [2]int, player entity.Player) bool {
	dr, dc := dir[0], dir[1]

	if board.Get(row-dr, col-dc) == player {
		return false
	}

	count := 0
	r, c := row, col
	for count < that.WinLength && board.Get(r, c) == player {
		count++
		r += dr
		c += dc
	}

	return count == that.WinLength && board.Get(r, c) != player
}

func validateMove(board *entity.Board, move entity.Move) error {
	if !board.InBounds(move.Row, move.Col) {
		return fmt.Errorf("%w: move %s on board of size %d", apperror.ErrInvalidCoordinate, move, board.Size())
	}

	if board.Get(move.Row, move.Col) != entity.Empty {
		return fmt.Errorf("%w: move %s", apperror.ErrIllegalMove, move)
	}

	return nil
}
