package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCell(t *testing.T) {
	// When: creating a cell
	cell := NewCell(4)

	// Then: it should be empty and keep its index
	assert.Equal(t, 4, cell.Index())
	assert.True(t, cell.IsEmpty())

	_, ok := cell.Owner()
	assert.False(t, ok)
}

func TestCell_Occupy(t *testing.T) {
	t.Run("Occupies an empty cell", func(t *testing.T) {
		// Given: an empty cell
		cell := NewCell(2)

		// When: a player occupies it
		err := cell.Occupy(PlayerSecond)

		// Then: the player should own the cell
		require.NoError(t, err)
		owner, ok := cell.Owner()
		require.True(t, ok)
		assert.Equal(t, PlayerSecond, owner)
		assert.False(t, cell.IsEmpty())
	})

	t.Run("Returns ErrAlreadyOccupied and keeps the owner", func(t *testing.T) {
		// Given: a cell owned by the first player
		cell := NewCell(2)
		require.NoError(t, cell.Occupy(PlayerFirst))

		// When: the other player tries to take it
		err := cell.Occupy(PlayerSecond)

		// Then: ErrAlreadyOccupied should be returned and the owner should not change
		require.ErrorIs(t, err, apperror.ErrAlreadyOccupied)
		owner, _ := cell.Owner()
		assert.Equal(t, PlayerFirst, owner)
	})
}

func TestCell_String(t *testing.T) {
	cell := NewCell(7)
	assert.Equal(t, "7", cell.String())

	require.NoError(t, cell.Occupy(PlayerFirst))
	assert.Equal(t, "X", cell.String())
}
