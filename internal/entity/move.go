package entity

import "fmt"

// Move is a board coordinate. Score is only meaningful once the move has been evaluated by a search.
type Move struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Score int `json:"score"`
}

// MoveFromIndex converts a flat 0..8 cell index into a move.
func MoveFromIndex(index int) Move {
	return Move{Row: index / Size, Col: index % Size}
}

// Index - returns the flat 0..8 cell index of the move.
func (that Move) Index() int {
	return that.Row*Size + that.Col
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// SameCell reports whether both moves point at the same cell, ignoring scores.
func (that Move) SameCell(other Move) bool {
	return that.Row == other.Row && that.Col == other.Col
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}
