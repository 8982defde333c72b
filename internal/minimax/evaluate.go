package minimax

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Evaluate - returns the static score of board summed over every row, column and diagonal.
func Evaluate(board *entity.Board) int {
	score := 0

	for _, line := range entity.Lines {
		var x, o int

		for _, move := range line {
			switch board.At(move) {
			case entity.CellX:
				x++
			case entity.CellO:
				o++
			}
		}

		score += lineScore(x, o)
	}

	return score
}

func lineScore(x, o int) int {
	switch {
	case x == 3:
		return 100
	case x == 2 && o == 0:
		return 10
	case x == 1 && o == 0:
		return 1
	case o == 3:
		return -100
	case o == 2 && x == 0:
		return -10
	case o == 1 && x == 0:
		return -1
	default:
		return 0
	}
}
