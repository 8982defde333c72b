package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	// WinnerTie marks a finished game without a winner.
	WinnerTie = "-"
)

const (
	ModeHuman    = "human"
	ModeComputer = "computer"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is one play session: a board plus whose turn it is and how the game ended.
type Game struct {
	ID           string `json:"id"`
	Board        Board  `json:"board"`
	Mode         string `json:"mode"`
	ComputerMark Cell   `json:"computer_mark,omitempty"`
	Turn         Cell   `json:"turn"`
	Winner       string `json:"winner"`
	Status       string `json:"status"`
}

func NewGame(id, mode string, computerMark Cell) *Game {
	return &Game{
		ID:           id,
		Mode:         mode,
		ComputerMark: computerMark,
		Turn:         CellX,
		Status:       StatusOngoing,
	}
}

// UpdateGameState - finishes the game on a win or a full board, win checks first.
func (that *Game) UpdateGameState() {
	switch {
	case that.Board.IsWinner(CellX):
		that.finish(string(CellX))
	case that.Board.IsWinner(CellO):
		that.finish(string(CellO))
	case that.Board.IsDraw():
		that.finish(WinnerTie)
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) finish(winner string) {
	that.Winner = winner
	that.Status = StatusFinished
	that.Turn = CellEmpty
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithComputer() bool {
	return that.Mode == ModeComputer
}

// IsComputerTurn reports whether the computer should move next.
func (that *Game) IsComputerTurn() bool {
	return that.IsWithComputer() && that.IsOngoing() && that.Turn == that.ComputerMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
