package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-cli/internal/apperror"
)

const DefaultBoardSize = 15

// Board is a square grid of cells stored row-major. The size never changes.
type Board struct {
	size  int
	cells []Player
}

func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]Player, size*size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < that.size && col < that.size
}

// Get returns the cell value, or Empty for any coordinate off the board.
// The win scan relies on this to probe past a run's ends.
func (that *Board) Get(row, col int) Player {
	if !that.InBounds(row, col) {
		return Empty
	}

	return that.cells[that.index(row, col)]
}

// Set writes a cell in place. It is not a legality check: occupied cells are overwritten.
func (that *Board) Set(row, col int, player Player) error {
	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCoordinate, row, col)
	}

	that.cells[that.index(row, col)] = player

	return nil
}

func (that *Board) Copy() *Board {
	cells := make([]Player, len(that.cells))
	copy(cells, that.cells)

	return &Board{
		size:  that.size,
		cells: cells,
	}
}

func (that *Board) EmptyCount() int {
	count := 0
	for _, cell := range that.cells {
		if cell == Empty {
			count++
		}
	}

	return count
}

func (that *Board) HasEmpty() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return true
		}
	}

	return false
}

// Sum adds up the signed encoding of every cell.
func (that *Board) Sum() int {
	sum := 0
	for _, cell := range that.cells {
		sum += cell.Sign()
	}

	return sum
}

func (that *Board) index(row, col int) int {
	return row*that.size + col
}
