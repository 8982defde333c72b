package entity

import "strings"

// Size is the side length of the board.
const Size = 3

type Cell string

const (
	CellX     Cell = "X"
	CellO     Cell = "O"
	CellEmpty Cell = ""
)

// Opponent returns the mark that moves after c. CellEmpty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case CellX:
		return CellO
	case CellO:
		return CellX
	default:
		return CellEmpty
	}
}

func (c Cell) IsMark() bool {
	return c == CellX || c == CellO
}

// Lines lists every row, column and diagonal of the board.
var Lines = [8][Size]Move{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}},
}

// Board is a row-major 3x3 grid. The zero value is an empty board.
type Board [Size][Size]Cell

// EmptyCells - returns the empty cells in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)

	for row := range Size {
		for col := range Size {
			if that[row][col] == CellEmpty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Play sets the cell at move to value. The cell is overwritten even when occupied,
// callers are expected to pass an empty in-range cell.
func (that *Board) Play(move Move, value Cell) {
	that[move.Row][move.Col] = value
}

// Clear sets the cell at move back to empty.
func (that *Board) Clear(move Move) {
	that[move.Row][move.Col] = CellEmpty
}

func (that *Board) At(move Move) Cell {
	return that[move.Row][move.Col]
}

// IsWinner - reports whether any line is filled entirely with value.
func (that *Board) IsWinner(value Cell) bool {
	if !value.IsMark() {
		return false
	}

	for _, line := range Lines {
		if that.At(line[0]) == value && that.At(line[1]) == value && that.At(line[2]) == value {
			return true
		}
	}

	return false
}

// IsFull - reports whether no empty cells remain.
func (that *Board) IsFull() bool {
	for row := range Size {
		for col := range Size {
			if that[row][col] == CellEmpty {
				return false
			}
		}
	}

	return true
}

// IsDraw - the board is full and nobody has won.
func (that *Board) IsDraw() bool {
	return that.IsFull() && !that.IsWinner(CellX) && !that.IsWinner(CellO)
}

// IsOver - either side has won or the board is full.
func (that *Board) IsOver() bool {
	return that.IsWinner(CellX) || that.IsWinner(CellO) || that.IsFull()
}

// Winner returns the winning mark, or CellEmpty when there is none.
func (that *Board) Winner() Cell {
	switch {
	case that.IsWinner(CellX):
		return CellX
	case that.IsWinner(CellO):
		return CellO
	default:
		return CellEmpty
	}
}

// Reset - empties every cell in place.
func (that *Board) Reset() {
	for row := range Size {
		for col := range Size {
			that[row][col] = CellEmpty
		}
	}
}

// String renders the board as three lines, using '.' for empty cells.
func (that *Board) String() string {
	var sb strings.Builder

	for row := range Size {
		for col := range Size {
			cell := that[row][col]
			if cell == CellEmpty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(string(cell))
			}
		}

		if row < Size-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
