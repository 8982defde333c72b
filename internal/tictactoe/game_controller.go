package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
)

// Outcome describes what happened during one human turn.
type Outcome struct {
	Game     *entity.Game `json:"game"`
	Human    entity.Move  `json:"human"`
	Computer *entity.Move `json:"computer,omitempty"`
}

// NewGame - creates a game and lets the computer open when it plays X.
func NewGame(id, mode string, computerMark entity.Cell) (*entity.Game, error) {
	switch mode {
	case entity.ModeHuman:
		computerMark = entity.CellEmpty
	case entity.ModeComputer:
		if !computerMark.IsMark() {
			return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, computerMark)
		}
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}

	game := entity.NewGame(id, mode, computerMark)

	if game.IsComputerTurn() {
		if _, err := ComputerTurn(game); err != nil {
			return nil, fmt.Errorf("computer failed to open: %w", err)
		}
	}

	return game, nil
}

// MakeTurn - places mark at move after checking the rules of the game.
func MakeTurn(game *entity.Game, mark entity.Cell, move entity.Move) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := validateMove(game, mark, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board.Play(move, mark)
	updateGameStatus(game, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, mark entity.Cell, move entity.Move) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if game.Board.At(move) != entity.CellEmpty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, mark entity.Cell) {
	game.UpdateGameState()

	if game.IsOngoing() {
		game.Turn = mark.Opponent()
	}
}

// ComputerTurn - searches the board for the computer and plays the chosen move.
func ComputerTurn(game *entity.Game) (entity.Move, error) {
	if !game.IsWithComputer() {
		return entity.Move{}, apperror.ErrComputerNotPlaying
	}

	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, err
	}

	if game.Turn != game.ComputerMark {
		return entity.Move{}, apperror.ErrNotComputerTurn
	}

	move := minimax.Search(&game.Board, game.ComputerMark).Best(game.ComputerMark)

	if err := MakeTurn(game, game.ComputerMark, move); err != nil {
		return entity.Move{}, fmt.Errorf("computer turn %s: %w", move, err)
	}

	return move, nil
}

// PlayHuman - plays the human's move and, against the computer, the reply.
// In a human game the mark is taken from the turn, so players simply alternate.
func PlayHuman(game *entity.Game, move entity.Move) (*Outcome, error) {
	mark := game.Turn
	if game.IsWithComputer() {
		mark = game.ComputerMark.Opponent()
	}

	if err := MakeTurn(game, mark, move); err != nil {
		return nil, err
	}

	outcome := &Outcome{Game: game, Human: move}

	if game.IsComputerTurn() {
		reply, err := ComputerTurn(game)
		if err != nil {
			return nil, err
		}

		outcome.Computer = &reply
	}

	return outcome, nil
}

// Hint - scores every move for the side to move without changing the game.
func Hint(game *entity.Game) (minimax.Result, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return minimax.Result{}, err
	}

	board := game.Board

	return minimax.Search(&board, game.Turn), nil
}

// Restart - clears the board in place and starts over with X to move.
func Restart(game *entity.Game) error {
	game.Board.Reset()
	game.Turn = entity.CellX
	game.Winner = ""
	game.Status = entity.StatusOngoing

	if game.IsComputerTurn() {
		if _, err := ComputerTurn(game); err != nil {
			return fmt.Errorf("computer failed to open: %w", err)
		}
	}

	return nil
}
