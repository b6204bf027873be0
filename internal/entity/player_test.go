package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayer(t *testing.T) {
	t.Run("Parses both marks regardless of case", func(t *testing.T) {
		for mark, expected := range map[string]Player{"X": PlayerFirst, "x": PlayerFirst, " O ": PlayerSecond, "o": PlayerSecond} {
			// When: parsing a known mark
			player, err := ParsePlayer(mark)

			// Then: the matching player should be returned
			require.NoError(t, err)
			assert.Equal(t, expected, player, "mark %q", mark)
		}
	})

	t.Run("Returns ErrUnknownMark for anything else", func(t *testing.T) {
		// When: parsing an unknown mark
		_, err := ParsePlayer("Z")

		// Then: ErrUnknownMark should be returned
		require.ErrorIs(t, err, ErrUnknownMark)
	})
}

func TestPlayer_Opponent(t *testing.T) {
	assert.Equal(t, PlayerSecond, PlayerFirst.Opponent())
	assert.Equal(t, PlayerFirst, PlayerSecond.Opponent())
}

func TestPlayer_String(t *testing.T) {
	assert.Equal(t, "X", PlayerFirst.String())
	assert.Equal(t, "O", PlayerSecond.String())
}
