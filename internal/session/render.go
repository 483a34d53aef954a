package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/gomoku-cli/internal/entity"
	"github.com/rocketscienceinc/gomoku-cli/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-cli/pkg/notation"
)

// Render writes the board with letter coordinates and a status line.
func Render(w io.Writer, board *entity.Board) error {
	size := board.Size()

	var sb strings.Builder
	sb.WriteString(" " + strings.Repeat(" -", size) + "\n")

	letters := make([]string, size)
	for i := range letters {
		letters[i] = notation.Letter(i)
	}
	sb.WriteString("  " + strings.Join(letters, " ") + "\n")

	cells := make([]string, size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cells[col] = board.Get(row, col).String()
		}
		sb.WriteString(notation.Letter(row) + " " + strings.Join(cells, " ") + "\n")
	}

	sb.WriteString(statusLine(gomoku.GetOutcome(board), gomoku.Turn(board, entity.Empty)) + "\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func statusLine(outcome gomoku.Outcome, turn entity.Player) string {
	switch outcome.Status {
	case gomoku.StatusWin:
		return fmt.Sprintf("player %s wins.", outcome.Winner)
	case gomoku.StatusDraw:
		return "draw"
	default:
		return fmt.Sprintf("Player %s's turn", turn)
	}
}
