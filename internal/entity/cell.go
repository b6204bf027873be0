package entity

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Cell is a single board position. Once occupied it keeps its owner for the rest of the game.
type Cell struct {
	index    int
	owner    Player
	occupied bool
}

func NewCell(index int) Cell {
	return Cell{index: index}
}

func (that *Cell) Index() int {
	return that.index
}

// Owner returns the player holding the cell, or false when it is empty.
func (that *Cell) Owner() (Player, bool) {
	return that.owner, that.occupied
}

func (that *Cell) IsEmpty() bool {
	return !that.occupied
}

func (that *Cell) Occupy(player Player) error {
	if that.occupied {
		return fmt.Errorf("%w: cell %d", apperror.ErrAlreadyOccupied, that.index)
	}

	that.owner = player
	that.occupied = true

	return nil
}

// String renders the owner's mark, or the index as a hint while the cell is empty.
func (that Cell) String() string {
	if that.occupied {
		return that.owner.String()
	}
	return strconv.Itoa(that.index)
}
