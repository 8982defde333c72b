package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const localGameID = "local"

const helpText = `commands:
  <row> <col>  place your mark, rows and columns are 0..2
  hint         score every free cell for the side to move
  new          start over
  help         show this message
  exit         leave`

var errUnknownOpponent = errors.New("computer must be X, O or none")

// shell plays one local game at a time and prints everything to out.
type shell struct {
	out      io.Writer
	mode     string
	computer entity.Cell
	game     *entity.Game
}

func newShell(out io.Writer, computer string) (*shell, error) {
	sh := &shell{out: out}

	switch strings.ToUpper(computer) {
	case "NONE", "":
		sh.mode = entity.ModeHuman
	case string(entity.CellX), string(entity.CellO):
		sh.mode = entity.ModeComputer
		sh.computer = entity.Cell(strings.ToUpper(computer))
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownOpponent, computer)
	}

	if err := sh.newGame(); err != nil {
		return nil, err
	}

	return sh, nil
}

func (that *shell) newGame() error {
	game, err := tictactoe.NewGame(localGameID, that.mode, that.computer)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.game = game
	that.render()

	return nil
}

// execute - runs one command line. It reports true when the shell should stop.
func (that *shell) execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "exit", "quit":
		return true, nil
	case "help":
		that.println(helpText)
	case "new":
		return false, that.newGame()
	case "hint":
		that.hint()
	default:
		that.play(fields)
	}

	return false, nil
}

func (that *shell) play(fields []string) {
	if len(fields) != 2 {
		that.println("unknown command, type help")
		return
	}

	row, rowErr := strconv.Atoi(fields[0])
	col, colErr := strconv.Atoi(fields[1])
	if rowErr != nil || colErr != nil {
		that.println("row and column must be numbers")
		return
	}

	outcome, err := tictactoe.PlayHuman(that.game, entity.Move{Row: row, Col: col})
	if err != nil {
		that.reportRuleError(err)
		return
	}

	if outcome.Computer != nil {
		that.println(fmt.Sprintf("computer plays %s", outcome.Computer))
	}

	that.render()
}

func (that *shell) hint() {
	result, err := tictactoe.Hint(that.game)
	if err != nil {
		that.reportRuleError(err)
		return
	}

	scores := lo.Map(result.Moves, func(move entity.Move, _ int) string {
		return fmt.Sprintf("%s=%d", move, move.Score)
	})

	that.println(strings.Join(scores, " "))
	that.println(fmt.Sprintf("best for %s: %s", that.game.Turn, result.Best(that.game.Turn)))
}

func (that *shell) reportRuleError(err error) {
	if errors.Is(err, apperror.ErrGameFinished) {
		that.println("game is over, type new to play again")
		return
	}

	that.println(err.Error())
}

func (that *shell) render() {
	that.println("   0   1   2")

	for row := range entity.Size {
		cells := lo.Map(that.game.Board[row][:], func(cell entity.Cell, _ int) string {
			return lo.Ternary(cell == entity.CellEmpty, ".", string(cell))
		})

		that.println(fmt.Sprintf("%d  %s", row, strings.Join(cells, " | ")))
	}

	switch {
	case that.game.IsOngoing():
		that.println(fmt.Sprintf("%s to move", that.game.Turn))
	case that.game.Winner == entity.WinnerTie:
		that.println("draw")
	default:
		that.println(fmt.Sprintf("%s wins", that.game.Winner))
	}
}

func (that *shell) println(msg string) {
	_, _ = io.WriteString(that.out, msg+"\n")
}
