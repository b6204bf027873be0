package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

const (
	promptMessage = "\nWhere you would like to go? Press 0-8: "

	wonMessage  = "You won!"
	lostMessage = "You lost."
	drawMessage = "Draw."

	invalidPositionMessage = "Invalid position"
	occupiedMessage        = "Position already occupied"
)

type Console struct {
	logger *slog.Logger
	game   usecase.GameUseCase
	in     *bufio.Scanner
	out    *termenv.Output
}

type Option func(*options)

type options struct {
	color bool
}

// WithColor enables styled result messages when the output is a terminal.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

func New(logger *slog.Logger, game usecase.GameUseCase, in io.Reader, out io.Writer, opts ...Option) *Console {
	o := &options{color: true}
	for _, opt := range opts {
		opt(o)
	}

	var outputOpts []termenv.OutputOption
	if !o.color {
		outputOpts = append(outputOpts, termenv.WithProfile(termenv.Ascii))
	}

	return &Console{
		logger: logger.With("component", "console"),
		game:   game,
		in:     bufio.NewScanner(in),
		out:    termenv.NewOutput(out, outputOpts...),
	}
}

// Run plays until the game has an outcome. It returns early on closed input or a cancelled ctx.
// Rejected moves are reported and the player is asked again.
func (that *Console) Run(ctx context.Context) (entity.Outcome, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Outcome{}, err
		}

		that.printf("\n%s\n", that.game.Board())
		that.printf("%s", promptMessage)

		turn, err := that.playLine()
		switch {
		case err == nil:
		case errors.Is(err, apperror.ErrInvalidPosition):
			that.printf("\n%s\n", invalidPositionMessage)
			continue
		case errors.Is(err, apperror.ErrAlreadyOccupied):
			that.printf("\n%s\n", occupiedMessage)
			continue
		default:
			return entity.Outcome{}, err
		}

		if turn.Finished {
			that.printOutcome(turn.Outcome)
			return turn.Outcome, nil
		}
	}
}

func (that *Console) playLine() (*usecase.TurnResult, error) {
	position, err := that.readPosition()
	if err != nil {
		return nil, err
	}

	turn, err := that.game.MakeTurn(position)
	if err != nil {
		that.logger.Debug("move rejected", "position", position, "error", err)
		return nil, err
	}

	return turn, nil
}

func (that *Console) readPosition() (int, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		return 0, apperror.ErrInputClosed
	}

	text := strings.TrimSpace(that.in.Text())

	position, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, text)
	}

	return position, nil
}

func (that *Console) printOutcome(outcome entity.Outcome) {
	that.printf("\n%s\n", that.game.Board())

	var banner termenv.Style
	switch {
	case outcome.IsDraw():
		banner = that.out.String(drawMessage).Foreground(that.out.Color("3"))
	case outcome.WinnerIs(that.game.HumanPlayer()):
		banner = that.out.String(wonMessage).Bold().Foreground(that.out.Color("2"))
	default:
		banner = that.out.String(lostMessage).Foreground(that.out.Color("1"))
	}

	that.printf("\n%s\n", banner)
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
