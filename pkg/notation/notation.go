// Package notation maps board coordinates to letters: A is 0, B is 1 and so on.
// A move is written row letter first, then column letter.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gomoku-cli/internal/apperror"
	"github.com/rocketscienceinc/gomoku-cli/internal/entity"
)

// MaxSize is the largest board the letters can address.
const MaxSize = 26

var ErrBadNotation = errors.New("move must be two letters")

func Letter(index int) string {
	return string(rune('A' + index))
}

func Encode(move entity.Move) string {
	return Letter(move.Row) + Letter(move.Col)
}

// Decode parses a move like "hh" for a board of the given size.
func Decode(s string, size int) (entity.Move, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return entity.Move{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}

	row, col := int(s[0])-'A', int(s[1])-'A'
	if row < 0 || col < 0 || row >= MaxSize || col >= MaxSize {
		return entity.Move{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}

	if row >= size || col >= size {
		return entity.Move{}, fmt.Errorf("%w: %q on board of size %d", apperror.ErrInvalidCoordinate, s, size)
	}

	return entity.Move{Row: row, Col: col}, nil
}
