package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Human game", func(t *testing.T) {
		// When: create a new human game
		game, err := NewGame("123", entity.ModeHuman, entity.CellO)
		require.NoError(t, err)

		// Then: the game state should correspond to the expected initial state
		expectedGame := &entity.Game{
			ID:     "123",
			Mode:   entity.ModeHuman,
			Turn:   entity.CellX,
			Status: entity.StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Computer plays X and opens", func(t *testing.T) {
		// When: create a game where the computer plays X
		game, err := NewGame("123", entity.ModeComputer, entity.CellX)
		require.NoError(t, err)

		// Then: the computer has already taken the top-left corner
		assert.Equal(t, entity.CellX, game.Board.At(entity.Move{Row: 0, Col: 0}))
		assert.Len(t, game.Board.EmptyCells(), 8)
		assert.Equal(t, entity.CellO, game.Turn)
	})

	t.Run("Computer plays O and waits", func(t *testing.T) {
		game, err := NewGame("123", entity.ModeComputer, entity.CellO)
		require.NoError(t, err)

		assert.Equal(t, entity.Board{}, game.Board)
		assert.Equal(t, entity.CellX, game.Turn)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		_, err := NewGame("123", "online", entity.CellX)

		require.ErrorIs(t, err, apperror.ErrUnknownMode)
	})

	t.Run("Computer without a mark", func(t *testing.T) {
		_, err := NewGame("123", entity.ModeComputer, entity.CellEmpty)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: create a new game
		game := entity.NewGame("123", entity.ModeHuman, entity.CellEmpty)

		// When: player X makes a turn
		err := MakeTurn(game, entity.CellX, entity.MoveFromIndex(0))
		require.NoError(t, err)

		// Then: the game state should reflect the turn and queue change
		expectedGame := &entity.Game{
			ID:     "123",
			Mode:   entity.ModeHuman,
			Board:  entity.Board{{entity.CellX}},
			Turn:   entity.CellO,
			Status: entity.StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: new game with player X's queue
		game := entity.NewGame("123", entity.ModeHuman, entity.CellEmpty)

		// When: player X moves to cell 0
		err := MakeTurn(game, entity.CellX, entity.MoveFromIndex(0))
		require.NoError(t, err)
		before := *game

		// When: player O tries to make a move to the same square
		err = MakeTurn(game, entity.CellO, entity.MoveFromIndex(0))

		// Then: an error ErrCellOccupied must be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the game state remains unchanged
		require.Equal(t, before, *game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123", entity.ModeHuman, entity.CellEmpty)

		// When: player O tries to make a move when it is player X's turn
		err := MakeTurn(game, entity.CellO, entity.MoveFromIndex(1))

		// Then: an error ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, game.Board)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		game := entity.NewGame("123", entity.ModeHuman, entity.CellEmpty)

		// When: an invalid cell index is passed (greater than the range)
		err := MakeTurn(game, entity.CellX, entity.MoveFromIndex(20))

		// Then: an error ErrInvalidCell must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		game := entity.NewGame("123", entity.ModeHuman, entity.CellEmpty)

		// When: negative cell index is transmitted
		err := MakeTurn(game, entity.CellX, entity.MoveFromIndex(-1))

		// Then: an error ErrInvalidCell must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where player X has already won
		game := &entity.Game{
			Board: entity.Board{
				{entity.CellX, entity.CellX, entity.CellX},
				{entity.CellEmpty, entity.CellO, entity.CellEmpty},
				{entity.CellEmpty, entity.CellO, entity.CellEmpty},
			},
			Status: entity.StatusFinished,
			Winner: string(entity.CellX),
		}

		// When: player O tries to make a move after the game is over
		err := MakeTurn(game, entity.CellO, entity.MoveFromIndex(3))

		// Then: an error ErrGameFinished should be returned.
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X has two in the top row
		game := entity.NewGame("123", entity.ModeHuman, entity.CellEmpty)
		game.Board = entity.Board{
			{entity.CellX, entity.CellX, entity.CellEmpty},
			{entity.CellO, entity.CellO, entity.CellEmpty},
		}

		// When: X completes the row
		err := MakeTurn(game, entity.CellX, entity.Move{Row: 0, Col: 2})
		require.NoError(t, err)

		// Then: X wins and nobody has the turn
		assert.True(t, game.IsFinished())
		assert.Equal(t, string(entity.CellX), game.Winner)
		assert.Equal(t, entity.CellEmpty, game.Turn)
	})
}

func TestPlayHuman(t *testing.T) {
	t.Run("Human players alternate", func(t *testing.T) {
		game, err := NewGame("123", entity.ModeHuman, entity.CellEmpty)
		require.NoError(t, err)

		_, err = PlayHuman(game, entity.Move{Row: 1, Col: 1})
		require.NoError(t, err)
		outcome, err := PlayHuman(game, entity.Move{Row: 0, Col: 0})
		require.NoError(t, err)

		assert.Nil(t, outcome.Computer)
		assert.Equal(t, entity.CellX, game.Board.At(entity.Move{Row: 1, Col: 1}))
		assert.Equal(t, entity.CellO, game.Board.At(entity.Move{Row: 0, Col: 0}))
		assert.Equal(t, entity.CellX, game.Turn)
	})

	t.Run("Computer answers the center with a corner", func(t *testing.T) {
		// Given: the computer plays O
		game, err := NewGame("123", entity.ModeComputer, entity.CellO)
		require.NoError(t, err)

		// When: the human takes the center
		outcome, err := PlayHuman(game, entity.Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the computer replies in the top-left corner and hands the turn back
		require.NotNil(t, outcome.Computer)
		assert.True(t, outcome.Computer.SameCell(entity.Move{Row: 0, Col: 0}))
		assert.Equal(t, entity.CellO, game.Board.At(*outcome.Computer))
		assert.Equal(t, entity.CellX, game.Turn)
	})

	for _, computer := range []entity.Cell{entity.CellX, entity.CellO} {
		t.Run("Computer never loses as "+string(computer), func(t *testing.T) {
			// Given: a naive human who always picks the first free cell
			game, err := NewGame("123", entity.ModeComputer, computer)
			require.NoError(t, err)

			// When: the game is played out
			for game.IsOngoing() {
				_, err = PlayHuman(game, game.Board.EmptyCells()[0])
				require.NoError(t, err)
			}

			// Then: the human did not win
			assert.NotEqual(t, string(computer.Opponent()), game.Winner)
		})
	}

	t.Run("Turn after the game finished", func(t *testing.T) {
		game := &entity.Game{Mode: entity.ModeComputer, ComputerMark: entity.CellO, Status: entity.StatusFinished}

		_, err := PlayHuman(game, entity.Move{})

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestComputerTurn(t *testing.T) {
	t.Run("Human game has no computer", func(t *testing.T) {
		game := entity.NewGame("123", entity.ModeHuman, entity.CellEmpty)

		_, err := ComputerTurn(game)

		assert.ErrorIs(t, err, apperror.ErrComputerNotPlaying)
	})

	t.Run("Not the computer's turn", func(t *testing.T) {
		game := entity.NewGame("123", entity.ModeComputer, entity.CellO)

		_, err := ComputerTurn(game)

		assert.ErrorIs(t, err, apperror.ErrNotComputerTurn)
	})
}

func TestHint(t *testing.T) {
	// Given: a human game after one move
	game := entity.NewGame("123", entity.ModeHuman, entity.CellEmpty)
	require.NoError(t, MakeTurn(game, entity.CellX, entity.Move{Row: 1, Col: 1}))
	before := *game

	// When: asking for a hint for O
	result, err := Hint(game)
	require.NoError(t, err)

	// Then: every free cell is scored and the game is untouched
	assert.Len(t, result.Moves, 8)
	assert.True(t, result.Best(entity.CellO).SameCell(entity.Move{Row: 0, Col: 0}))
	assert.Equal(t, before, *game)
}

func TestRestart(t *testing.T) {
	// Given: a finished game against a computer playing X
	game, err := NewGame("123", entity.ModeComputer, entity.CellX)
	require.NoError(t, err)
	for game.IsOngoing() {
		_, err = PlayHuman(game, game.Board.EmptyCells()[0])
		require.NoError(t, err)
	}

	// When: the game is restarted
	err = Restart(game)
	require.NoError(t, err)

	// Then: the board is fresh apart from the computer's opening move
	assert.True(t, game.IsOngoing())
	assert.Empty(t, game.Winner)
	assert.Equal(t, entity.CellO, game.Turn)
	assert.Len(t, game.Board.EmptyCells(), 8)
	assert.Equal(t, entity.CellX, game.Board.At(entity.Move{Row: 0, Col: 0}))
}
