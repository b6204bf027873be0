package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const BoardSize = 9

// WinCombos lists the winning triples in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{6, 4, 2},
}

// Board is the 3x3 grid stored row-major. The human always plays one mark and the opponent the other.
type Board struct {
	cells [BoardSize]Cell
	human Player
}

type BoardOption func(*Board)

// WithHumanPlayer sets the mark the human plays with. The opponent gets the other one.
func WithHumanPlayer(player Player) BoardOption {
	return func(b *Board) {
		b.human = player
	}
}

func NewBoard(opts ...BoardOption) *Board {
	board := &Board{human: PlayerFirst}
	for i := range board.cells {
		board.cells[i] = NewCell(i)
	}

	for _, opt := range opts {
		opt(board)
	}

	return board
}

func (that *Board) HumanPlayer() Player {
	return that.human
}

func (that *Board) OpponentPlayer() Player {
	return that.human.Opponent()
}

// Cells returns a copy of the cells in index order.
func (that *Board) Cells() [BoardSize]Cell {
	return that.cells
}

// PlayHuman occupies the cell at position with the human's mark. A failed move leaves the board unchanged.
func (that *Board) PlayHuman(position int) error {
	if position < 0 || position >= len(that.cells) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, position)
	}

	return that.cells[position].Occupy(that.human)
}

// PlayOpponent occupies the lowest empty cell with the opponent's mark and returns its index.
// On a full board nothing changes and false is returned.
func (that *Board) PlayOpponent() (int, bool) {
	for i := range that.cells {
		if !that.cells[i].IsEmpty() {
			continue
		}

		if err := that.cells[i].Occupy(that.OpponentPlayer()); err != nil {
			return 0, false
		}

		return i, true
	}

	return 0, false
}

// Winner returns the owner of the first completed triple in WinCombos order.
func (that *Board) Winner() (Player, bool) {
	for _, combo := range WinCombos {
		a, aOk := that.cells[combo[0]].Owner()
		b, bOk := that.cells[combo[1]].Owner()
		c, cOk := that.cells[combo[2]].Owner()

		if aOk && bOk && cOk && a == b && b == c {
			return a, true
		}
	}

	return 0, false
}

func (that *Board) IsFull() bool {
	for i := range that.cells {
		if that.cells[i].IsEmpty() {
			return false
		}
	}
	return true
}

func (that *Board) IsDraw() bool {
	if _, ok := that.Winner(); ok {
		return false
	}
	return that.IsFull()
}

// Outcome returns the winner or a draw, or false while the game is still going.
func (that *Board) Outcome() (Outcome, bool) {
	if winner, ok := that.Winner(); ok {
		return WinnerOutcome(winner), true
	}

	if that.IsDraw() {
		return DrawOutcome(), true
	}

	return Outcome{}, false
}

func (that *Board) String() string {
	c := &that.cells
	return fmt.Sprintf(
		"%s|%s|%s\n-+-+-\n%s|%s|%s\n-+-+-\n%s|%s|%s",
		c[0], c[1], c[2],
		c[3], c[4], c[5],
		c[6], c[7], c[8],
	)
}
