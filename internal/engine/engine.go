// Package engine is the host-facing surface of the Othello core. Every
// operation is a pure function over board values; the Text variants take and
// return the string encodings used at serialization boundaries.
package engine

import (
	"errors"
	"fmt"

	"othello/internal/ai"
	"othello/internal/rules"
)

// Init returns the opening position for a size×size board.
func Init(size uint) (rules.Board, error) {
	if size > rules.MaxSize {
		return rules.Board{}, fmt.Errorf("init: %w: %d", rules.ErrInvalidSize, size)
	}
	b, err := rules.New(int(size))
	if err != nil {
		return rules.Board{}, fmt.Errorf("init: %w", err)
	}
	return b, nil
}

// LegalMoveCount returns the number of squares where player may place.
func LegalMoveCount(b rules.Board, player rules.Piece) int {
	return rules.LegalMoveCount(b, player)
}

// IsLegal reports whether player may place at p.
func IsLegal(b rules.Board, p rules.Point, player rules.Piece) bool {
	return rules.IsLegal(b, p, player)
}

// Scores counts both players' pieces.
func Scores(b rules.Board) rules.Scores {
	return rules.Score(b)
}

// ScoreFor counts player's pieces.
func ScoreFor(b rules.Board, player rules.Piece) int {
	return rules.ScoreFor(b, player)
}

// Place plays player at p and returns the new board.
func Place(b rules.Board, player rules.Piece, p rules.Point) (rules.Board, error) {
	return rules.Place(b, player, p)
}

// AIMove lets the AI play for player. A player without moves passes and the
// board comes back unchanged.
func AIMove(b rules.Board, player rules.Piece, strength uint) rules.Board {
	return ai.GenerateAIPlay(b, player, strength)
}

// Render returns the display grid of ".", "b" and "w".
func Render(b rules.Board) [][]string {
	return b.Materialize()
}

// Kind names the error category of err for hosts that cannot inspect Go
// error values. It returns "" for nil and "Internal" for anything unknown.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, rules.ErrDecoding):
		return "DecodingError"
	case errors.Is(err, rules.ErrInvalidSize):
		return "InvalidSize"
	case errors.Is(err, rules.ErrInvalidCell):
		return "InvalidCell"
	case errors.Is(err, rules.ErrOutOfBounds):
		return "OutOfBounds"
	case errors.Is(err, rules.ErrAlreadyOccupied):
		return "AlreadyOccupied"
	case errors.Is(err, rules.ErrNotPlaceable):
		return "NotPlaceable"
	default:
		return "Internal"
	}
}
