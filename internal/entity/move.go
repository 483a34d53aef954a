package entity

import "fmt"

// Move is a 0-indexed (row, column) coordinate.
type Move struct {
	Row int
	Col int
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}
