// Package session runs an interactive game over a line-based reader and writer.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/gomoku-cli/internal/apperror"
	"github.com/rocketscienceinc/gomoku-cli/internal/entity"
	"github.com/rocketscienceinc/gomoku-cli/internal/game"
	"github.com/rocketscienceinc/gomoku-cli/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-cli/pkg/notation"
)

const prompt = "Enter your move (q/f:Quit/Forfeit, h:Help): "

var ErrNoAvailableMoves = errors.New("no available moves")

type recommender interface {
	RecommendMoveContext(ctx context.Context, board *entity.Board) (entity.Move, bool, error)
}

type Settings struct {
	BoardSize int
	// Bot is the side played by the computer; Empty for two humans.
	Bot           entity.Player
	SearchTimeout time.Duration
	Seed          uint64
}

type Session struct {
	logger   zerolog.Logger
	settings Settings
	engine   recommender
	rng      *rand.Rand

	in  *bufio.Scanner
	out io.Writer

	current *game.Game
}

func New(logger zerolog.Logger, settings Settings, engine recommender, in io.Reader, out io.Writer) (*Session, error) {
	current, err := game.NewGame(settings.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	seed := settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Session{
		logger:   logger.With().Str("component", "session").Logger(),
		settings: settings,
		engine:   engine,
		rng:      rand.New(rand.NewSource(seed)),
		in:       bufio.NewScanner(in),
		out:      out,
		current:  current,
	}, nil
}

// Board returns a copy of the live board.
func (that *Session) Board() *entity.Board {
	return that.current.Board.Copy()
}

// Run plays games until the user quits, the input ends or ctx is done.
func (that *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := Render(that.out, that.current.Board); err != nil {
			return err
		}

		turn := that.current.Turn()

		if that.settings.Bot != entity.Empty && turn == that.settings.Bot {
			if err := that.botTurn(ctx, turn); err != nil {
				return err
			}
			that.finishIfOver()
			continue
		}

		that.printf("%s", prompt)
		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			that.logger.Debug().Msg("input closed")
			return nil
		}

		cmd := parseCommand(that.in.Text())

		switch cmd.kind {
		case commandQuit:
			that.printf("player %s quits.\n", turn)
			return nil
		case commandForfeit:
			that.printf("player %s forfeits.\n", turn)
			that.printf("player %s wins.\n", turn.Opponent())
			that.newGame()
		case commandHint:
			that.hint(ctx)
		case commandMove:
			if that.humanMove(cmd.arg, turn) {
				that.finishIfOver()
			}
		default:
			that.printf("unknown command %q: use two letters like hh, h for a hint, f to forfeit, q to quit\n", cmd.arg)
		}
	}
}

// humanMove reports whether the move was played.
func (that *Session) humanMove(arg string, turn entity.Player) bool {
	move, err := notation.Decode(arg, that.current.Board.Size())
	if err != nil {
		that.printf("bad position\n")
		return false
	}

	if err = that.current.MakeMove(turn, move); err != nil {
		if errors.Is(err, apperror.ErrIllegalMove) {
			that.printf("can not move there\n")
		} else {
			that.printf("bad position\n")
		}
		return false
	}

	that.logger.Debug().Str("player", turn.String()).Str("move", notation.Encode(move)).Msg("move played")

	return true
}

func (that *Session) hint(ctx context.Context) {
	move, ok, err := that.recommend(ctx)
	switch {
	case err != nil:
		that.logger.Warn().Err(err).Msg("hint search failed")
		if errors.Is(err, context.DeadlineExceeded) {
			that.printf("no suggestion in time.\n")
		} else {
			that.printf("no suggestion: search failed.\n")
		}
	case !ok:
		that.printf("no moves left to play.\n")
	default:
		that.printf("play: %s\n", notation.Encode(move))
	}
}

func (that *Session) botTurn(ctx context.Context, turn entity.Player) error {
	move, ok, err := that.recommend(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		that.logger.Warn().Err(err).Msg("bot search failed, playing a random cell")

		if move, err = that.randomMove(); err != nil {
			return err
		}
	} else if !ok {
		return ErrNoAvailableMoves
	}

	if err = that.current.MakeMove(turn, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.printf("player %s plays: %s\n", turn, notation.Encode(move))

	return nil
}

func (that *Session) recommend(ctx context.Context) (entity.Move, bool, error) {
	if that.settings.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, that.settings.SearchTimeout)
		defer cancel()
	}

	return that.engine.RecommendMoveContext(ctx, that.current.Board.Copy())
}

func (that *Session) randomMove() (entity.Move, error) {
	moves := gomoku.LegalMoves(that.current.Board)
	if len(moves) == 0 {
		return entity.Move{}, ErrNoAvailableMoves
	}

	return moves[that.rng.Intn(len(moves))], nil
}

func (that *Session) finishIfOver() {
	outcome := that.current.Outcome()
	if !outcome.IsFinished() {
		return
	}

	if outcome.Status == gomoku.StatusWin {
		that.printf("player %s wins.\n", outcome.Winner)
	} else {
		that.printf("draw\n")
	}

	that.logger.Info().Str("status", string(outcome.Status)).Str("winner", outcome.Winner.String()).Msg("game over")
	that.newGame()
}

func (that *Session) newGame() {
	that.printf("new game\n")

	next, err := game.NewGame(that.current.Board.Size())
	if err != nil {
		that.logger.Error().Err(err).Msg("failed to start a new game")
		return
	}
	that.current = next
}

func (that *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error().Err(err).Msg("failed to write output")
	}
}
