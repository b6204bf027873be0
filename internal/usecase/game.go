package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type GameUseCase interface {
	Start()
	MakeTurn(position int) (*TurnResult, error)
	Outcome() (entity.Outcome, bool)
	Board() string
	HumanPlayer() entity.Player
}

type boardDep interface {
	PlayHuman(position int) error
	PlayOpponent() (int, bool)
	Outcome() (entity.Outcome, bool)
	HumanPlayer() entity.Player
	String() string
}

// TurnResult describes one round: the human move and, when the game went on, the opponent reply.
type TurnResult struct {
	OpponentCell  int
	OpponentMoved bool
	Outcome       entity.Outcome
	Finished      bool
}

type gameUseCase struct {
	logger *slog.Logger
	board  boardDep
}

func NewGameUseCase(logger *slog.Logger, board boardDep) GameUseCase {
	return &gameUseCase{
		logger: logger.With("component", "usecase"),
		board:  board,
	}
}

// Start lets the opponent open the game when it holds the first mark.
func (that *gameUseCase) Start() {
	if that.board.HumanPlayer() == entity.PlayerFirst {
		return
	}

	if cell, ok := that.board.PlayOpponent(); ok {
		that.logger.Debug("opponent opened the game", "cell", cell)
	}
}

func (that *gameUseCase) MakeTurn(position int) (*TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "position", position)

	if outcome, finished := that.board.Outcome(); finished {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameFinished, outcome)
	}

	if err := that.board.PlayHuman(position); err != nil {
		log.Debug("human move rejected", "error", err)
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}
	log.Debug("human moved")

	if outcome, finished := that.board.Outcome(); finished {
		log.Info("game finished", "outcome", outcome.String())
		return &TurnResult{Outcome: outcome, Finished: true}, nil
	}

	result := &TurnResult{}

	// an ongoing board always has an empty cell
	result.OpponentCell, result.OpponentMoved = that.board.PlayOpponent()
	if result.OpponentMoved {
		log.Debug("opponent moved", "cell", result.OpponentCell)
	}

	if outcome, finished := that.board.Outcome(); finished {
		log.Info("game finished", "outcome", outcome.String())
		result.Outcome = outcome
		result.Finished = true
	}

	return result, nil
}

func (that *gameUseCase) Outcome() (entity.Outcome, bool) {
	return that.board.Outcome()
}

func (that *gameUseCase) Board() string {
	return that.board.String()
}

func (that *gameUseCase) HumanPlayer() entity.Player {
	return that.board.HumanPlayer()
}
