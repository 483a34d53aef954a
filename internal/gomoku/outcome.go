package gomoku

import "github.com/rocketscienceinc/gomoku-cli/internal/entity"

type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// Outcome is derived from a board on demand and never stored.
type Outcome struct {
	Status Status
	Winner entity.Player
}

func (that Outcome) IsFinished() bool {
	return that.Status != StatusInProgress
}

func (that Rules) Outcome(board *entity.Board) Outcome {
	if winner := that.Winner(board); winner != entity.Empty {
		return Outcome{Status: StatusWin, Winner: winner}
	}

	if !board.HasEmpty() {
		return Outcome{Status: StatusDraw, Winner: entity.Empty}
	}

	return Outcome{Status: StatusInProgress, Winner: entity.Empty}
}
