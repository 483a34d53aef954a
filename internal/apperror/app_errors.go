package apperror

import "errors"

var (
	ErrInvalidCoordinate = errors.New("coordinate is out of the board")
	ErrIllegalMove       = errors.New("cell is already occupied")
	ErrInvalidSize       = errors.New("board size must be positive")
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
)
