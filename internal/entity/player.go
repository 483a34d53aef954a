package entity

import "strings"

// Player is the occupant of a cell. Empty doubles as "no player".
type Player int8

const (
	Empty Player = iota
	PlayerA
	PlayerB
)

const (
	MarkEmpty = "."
	MarkA     = "X"
	MarkB     = "O"
)

// Opponent returns the other side. Empty has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

// Sign is the signed encoding used for parity and scoring: A=+1, B=-1, Empty=0.
func (that Player) Sign() int {
	switch that {
	case PlayerA:
		return 1
	case PlayerB:
		return -1
	default:
		return 0
	}
}

func (that Player) String() string {
	switch that {
	case PlayerA:
		return MarkA
	case PlayerB:
		return MarkB
	default:
		return MarkEmpty
	}
}

// PlayerFromMark parses "X" or "O" (case-insensitive). Anything else is Empty.
func PlayerFromMark(mark string) Player {
	switch strings.ToUpper(strings.TrimSpace(mark)) {
	case MarkA:
		return PlayerA
	case MarkB:
		return PlayerB
	default:
		return Empty
	}
}
