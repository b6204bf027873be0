package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - plays one game on the console and returns once it has an outcome.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Play(ctx, logger, conf, in, out)
}

// Play wires a fresh board to the console and runs it until the game ends or ctx is done.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	human, err := entity.ParsePlayer(conf.HumanMark)
	if err != nil {
		return fmt.Errorf("invalid human mark: %w", err)
	}

	board := entity.NewBoard(entity.WithHumanPlayer(human))
	gameUseCase := usecase.NewGameUseCase(logger, board)
	gameUseCase.Start()

	consoleGame := console.New(logger, gameUseCase, in, out, console.WithColor(!conf.NoColor))

	type runResult struct {
		outcome entity.Outcome
		err     error
	}

	// run console game
	resultCh := make(chan runResult, 1)
	go func() {
		log.Info("Starting game", "human", human.String())
		outcome, runErr := consoleGame.Run(ctx)
		resultCh <- runResult{outcome: outcome, err: runErr}
	}()

	select {
	case result := <-resultCh:
		if result.err != nil {
			return fmt.Errorf("console game error: %w", result.err)
		}
		log.Info("Game over", "outcome", result.outcome.String())
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
