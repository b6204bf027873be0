package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Board *entity.Board
	Game  usecase.GameUseCase
}

// New returns a context bound to the test and a fresh game on a new board.
func New(t *testing.T, opts ...entity.BoardOption) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	board := entity.NewBoard(opts...)

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Board:  board,
		Game:   usecase.NewGameUseCase(logger, board),
	}
}
