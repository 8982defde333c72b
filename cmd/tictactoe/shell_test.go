package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestNewShell(t *testing.T) {
	t.Run("Computer as X opens the game", func(t *testing.T) {
		var out bytes.Buffer

		sh, err := newShell(&out, "x")

		require.NoError(t, err)
		assert.Equal(t, entity.CellX, sh.game.Board.At(entity.Move{Row: 0, Col: 0}))
		assert.Contains(t, out.String(), "0  X | . | .")
		assert.Contains(t, out.String(), "O to move")
	})

	t.Run("Hot-seat game", func(t *testing.T) {
		var out bytes.Buffer

		sh, err := newShell(&out, "none")

		require.NoError(t, err)
		assert.Equal(t, entity.ModeHuman, sh.game.Mode)
		assert.Contains(t, out.String(), "X to move")
	})

	t.Run("Unknown opponent", func(t *testing.T) {
		_, err := newShell(&bytes.Buffer{}, "Z")

		require.ErrorIs(t, err, errUnknownOpponent)
	})
}

func TestShell_Execute(t *testing.T) {
	// Given: a game where the computer plays O
	var out bytes.Buffer
	sh, err := newShell(&out, "O")
	require.NoError(t, err)

	// When: the human takes the center
	out.Reset()
	quit, err := sh.execute("1 1")

	// Then: the computer answers in the corner
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, out.String(), "computer plays (0,0)")
	assert.Contains(t, out.String(), "0  O | . | .")
	assert.Contains(t, out.String(), "1  . | X | .")

	// When: the human repeats the move
	out.Reset()
	_, err = sh.execute("1 1")

	// Then: the rule error is printed and nothing changes
	require.NoError(t, err)
	assert.Contains(t, out.String(), "cell is already occupied")
	assert.Len(t, sh.game.Board.EmptyCells(), 7)

	// When: asking for a hint
	out.Reset()
	_, err = sh.execute("hint")

	// Then: all free cells are scored for X
	require.NoError(t, err)
	assert.Contains(t, out.String(), "best for X:")
	assert.Contains(t, out.String(), "(0,1)=")

	// When: garbage is typed
	out.Reset()
	_, err = sh.execute("a b")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "row and column must be numbers")

	out.Reset()
	_, err = sh.execute("resign")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "unknown command")

	out.Reset()
	_, err = sh.execute("5 5")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "invalid cell index")

	// When: starting over
	_, err = sh.execute("new")

	// Then: the board is empty again
	require.NoError(t, err)
	assert.Equal(t, entity.Board{}, sh.game.Board)

	// When: leaving
	quit, err = sh.execute("exit")

	require.NoError(t, err)
	assert.True(t, quit)
}

func TestShell_FinishedGame(t *testing.T) {
	// Given: a hot-seat game where X wins the top row
	var out bytes.Buffer
	sh, err := newShell(&out, "none")
	require.NoError(t, err)

	for _, line := range []string{"0 0", "1 0", "0 1", "1 1", "0 2"} {
		_, err = sh.execute(line)
		require.NoError(t, err)
	}

	assert.Contains(t, out.String(), "X wins")

	// When: playing on
	out.Reset()
	_, err = sh.execute("2 2")

	// Then: the player is told to start over
	require.NoError(t, err)
	assert.Contains(t, out.String(), "type new")

	out.Reset()
	_, err = sh.execute("hint")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "type new")
}
