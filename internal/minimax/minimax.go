// Package minimax picks moves for the computer player with a full-depth
// alpha-beta search over the 3x3 board. X maximizes, O minimizes.
package minimax

import (
	"errors"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	// ScoreMax is returned for X when a branch is cut off.
	ScoreMax = math.MaxInt
	// ScoreMin is returned for O when a branch is cut off.
	ScoreMin = math.MinInt
)

var ErrNoScoredMoves = errors.New("no scored moves to choose from")

// ScoredMoves holds the root candidates of one search in row-major order.
type ScoredMoves []entity.Move

// Result is the outcome of one root-level search.
type Result struct {
	Value int         `json:"value"`
	Moves ScoredMoves `json:"moves"`
}

// Search - computes the minimax value of board for player and scores every empty cell.
// The board is mutated during the search and restored before returning.
// A terminal board yields its static score and no moves.
func Search(board *entity.Board, player entity.Cell) Result {
	var moves ScoredMoves

	value := alphaBeta(board, ScoreMin, ScoreMax, 0, player, &moves)

	return Result{Value: value, Moves: moves}
}

// Best returns the result's preferred move for player, see ScoredMoves.Best.
func (that Result) Best(player entity.Cell) entity.Move {
	return that.Moves.Best(player)
}

// alphaBeta - scores the position for player. Root candidates are appended to root at depth 0.
func alphaBeta(board *entity.Board, alpha, beta, depth int, player entity.Cell, root *ScoredMoves) int {
	if board.IsOver() {
		return Evaluate(board)
	}

	if beta <= alpha {
		if player == entity.CellX {
			return ScoreMax
		}
		return ScoreMin
	}

	maxValue, minValue := ScoreMin, ScoreMax

	for _, move := range board.EmptyCells() {
		board.Play(move, player)

		score := alphaBeta(board, alpha, beta, depth+1, player.Opponent(), root)

		if player == entity.CellX {
			maxValue = max(maxValue, score)
			alpha = max(alpha, score)
		} else {
			minValue = min(minValue, score)
			beta = min(beta, score)
		}

		if depth == 0 {
			move.Score = score
			*root = append(*root, move)
		}

		board.Clear(move)

		// a sentinel means the rest of this ply cannot change the outcome
		if score == ScoreMax || score == ScoreMin {
			break
		}
	}

	if player == entity.CellX {
		return maxValue
	}
	return minValue
}

// Best - picks the first move with the highest score for X, or the lowest score for O.
// Calling it on an empty batch is a programming error and panics.
func (that ScoredMoves) Best(player entity.Cell) entity.Move {
	if len(that) == 0 {
		panic(ErrNoScoredMoves)
	}

	best := 0
	for i, move := range that {
		if player == entity.CellX && move.Score > that[best].Score {
			best = i
		}

		if player == entity.CellO && move.Score < that[best].Score {
			best = i
		}
	}

	return that[best]
}
