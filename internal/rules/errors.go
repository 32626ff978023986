package rules

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize     = errors.New("invalid board size")
	ErrInvalidCell     = errors.New("invalid cell value")
	ErrOutOfBounds     = errors.New("point out of bounds")
	ErrAlreadyOccupied = errors.New("cell already occupied")
	ErrNotPlaceable    = errors.New("placement captures nothing")
	ErrDecoding        = errors.New("decoding error")
)

// PlaceErrorKind classifies a rejected placement.
type PlaceErrorKind uint8

const (
	OutOfBounds PlaceErrorKind = iota + 1
	AlreadyOccupied
	NotPlaceable
)

func (k PlaceErrorKind) sentinel() error {
	switch k {
	case OutOfBounds:
		return ErrOutOfBounds
	case AlreadyOccupied:
		return ErrAlreadyOccupied
	default:
		return ErrNotPlaceable
	}
}

// PlaceError reports why a placement was rejected and where.
type PlaceError struct {
	Kind   PlaceErrorKind
	Point  Point
	Player Piece
}

func (e *PlaceError) Error() string {
	return fmt.Sprintf("place %s at %s: %v", e.Player, e.Point, e.Kind.sentinel())
}

// Unwrap exposes the sentinel for the error kind so errors.Is works.
func (e *PlaceError) Unwrap() error {
	return e.Kind.sentinel()
}

// Is matches another *PlaceError of the same kind.
func (e *PlaceError) Is(target error) bool {
	if t, ok := target.(*PlaceError); ok {
		return e.Kind == t.Kind
	}
	return false
}

// DecodeError reports a malformed textual encoding.
type DecodeError struct {
	What   string // "player", "point" or "board"
	Input  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s %q: %s", e.What, e.Input, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecoding
}

func decodeErr(what, input, format string, args ...any) error {
	return &DecodeError{What: what, Input: input, Reason: fmt.Sprintf(format, args...)}
}
