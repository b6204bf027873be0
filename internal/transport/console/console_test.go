package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

func input(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestConsole_Run(t *testing.T) {
	t.Run("Human wins", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: input that completes 6-7-8
		var out bytes.Buffer
		c := New(st.Logger, st.Game, input("6", "7", "8"), &out, WithColor(false))

		// When: running the game
		outcome, err := c.Run(ctx)

		// Then: the human should win and the final board should be printed
		require.NoError(t, err)
		assert.True(t, outcome.WinnerIs(entity.PlayerFirst))
		assert.True(t, strings.HasSuffix(out.String(), "\nO|O|2\n-+-+-\n3|4|5\n-+-+-\nX|X|X\n\nYou won!\n"))
	})

	t.Run("Human loses", func(t *testing.T) {
		ctx, st := suite.New(t)

		var out bytes.Buffer
		c := New(st.Logger, st.Game, input("3", "4", "6"), &out, WithColor(false))

		outcome, err := c.Run(ctx)

		require.NoError(t, err)
		assert.True(t, outcome.WinnerIs(entity.PlayerSecond))
		assert.True(t, strings.HasSuffix(out.String(), "\nYou lost.\n"))
	})

	t.Run("Draw", func(t *testing.T) {
		ctx, st := suite.New(t)

		var out bytes.Buffer
		c := New(st.Logger, st.Game, input("4", "3", "2", "7", "8"), &out, WithColor(false))

		outcome, err := c.Run(ctx)

		require.NoError(t, err)
		assert.True(t, outcome.IsDraw())
		assert.True(t, strings.HasSuffix(out.String(), "\nDraw.\n"))
	})

	t.Run("Bad input is reported and the player is asked again", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a non-number, an out of range cell and an occupied cell before the winning moves
		var out bytes.Buffer
		c := New(st.Logger, st.Game, input("abc", "9", "6", "0", "6", "7", "8"), &out, WithColor(false))

		// When: running the game
		outcome, err := c.Run(ctx)

		// Then: each error should be printed and the game should still be won
		require.NoError(t, err)
		assert.True(t, outcome.WinnerIs(entity.PlayerFirst))
		assert.Equal(t, 2, strings.Count(out.String(), "\nInvalid position\n"))
		assert.Equal(t, 2, strings.Count(out.String(), "\nPosition already occupied\n"))
		assert.Equal(t, 7, strings.Count(out.String(), promptMessage))
	})

	t.Run("Returns ErrInputClosed when input ends early", func(t *testing.T) {
		ctx, st := suite.New(t)

		var out bytes.Buffer
		c := New(st.Logger, st.Game, input("4"), &out, WithColor(false))

		_, err := c.Run(ctx)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Equal(t, "O|1|2\n-+-+-\n3|X|5\n-+-+-\n6|7|8", st.Board.String())
	})

	t.Run("Stops on a cancelled context", func(t *testing.T) {
		_, st := suite.New(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var out bytes.Buffer
		c := New(st.Logger, st.Game, input("4"), &out)

		_, err := c.Run(ctx)

		require.True(t, errors.Is(err, context.Canceled))
		assert.Empty(t, out.String())
	})

	t.Run("Human plays O", func(t *testing.T) {
		ctx, st := suite.New(t, entity.WithHumanPlayer(entity.PlayerSecond))
		st.Game.Start()

		// Given: the opponent opened on 0; the human answers 4, 2, 6 while X fills 1, 3
		var out bytes.Buffer
		c := New(st.Logger, st.Game, input("4", "2", "6"), &out, WithColor(false))

		// When: running the game
		outcome, err := c.Run(ctx)

		// Then: the human should win on 6-4-2
		require.NoError(t, err)
		assert.True(t, outcome.WinnerIs(entity.PlayerSecond))
		assert.True(t, strings.HasSuffix(out.String(), "\nYou won!\n"))
	})
}
