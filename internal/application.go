package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/gomoku-cli/internal/config"
	"github.com/rocketscienceinc/gomoku-cli/internal/search"
	"github.com/rocketscienceinc/gomoku-cli/internal/session"
)

// RunApp - runs the interactive game on stdin and stdout.
func RunApp(logger zerolog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run wires the engine and session and blocks until the session ends or a signal arrives.
func Run(ctx context.Context, logger zerolog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With().Str("component", "app").Logger()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info().Str("signal", sig.String()).Msg("Received signal, shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	engineOptions := []search.Option{
		search.WithWorkers(conf.Search.Workers),
		search.WithLogger(logger),
	}
	if conf.Search.Seed != 0 {
		engineOptions = append(engineOptions, search.WithSeed(conf.Search.Seed))
	}
	engine := search.New(engineOptions...)

	gameSession, err := session.New(logger, session.Settings{
		BoardSize:     conf.BoardSize,
		Bot:           conf.BotPlayer(),
		SearchTimeout: conf.Search.Timeout,
		Seed:          conf.Search.Seed,
	}, engine, in, out)
	if err != nil {
		return fmt.Errorf("could not create session: %w", err)
	}

	log.Info().Int("board_size", conf.BoardSize).Str("bot", conf.BotPlayer().String()).Msg("Starting game session")

	// stdin reads cannot be interrupted, so the session runs apart from the signal wait
	sessionErrCh := make(chan error, 1)
	go func() {
		sessionErrCh <- gameSession.Run(ctx)
	}()

	select {
	case err = <-sessionErrCh:
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("session error: %w", err)
		}
		log.Info().Msg("Session finished")
		return nil
	case <-ctx.Done():
		log.Info().Msg("Application context canceled, shutting down")
		return nil
	}
}
