package rules

import "strconv"

// Cell is the content of a single board square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// Marker returns the display character used by Materialize and the codecs.
func (c Cell) Marker() string {
	switch c {
	case CellBlack:
		return "b"
	case CellWhite:
		return "w"
	default:
		return "."
	}
}

// Piece returns the owner of the cell, false for an empty cell.
func (c Cell) Piece() (Piece, bool) {
	switch c {
	case CellBlack:
		return Black, true
	case CellWhite:
		return White, true
	default:
		return Black, false
	}
}

// Piece is one of the two players.
type Piece uint8

const (
	Black Piece = iota
	White
)

// Opponent returns the other player.
func (p Piece) Opponent() Piece {
	if p == Black {
		return White
	}
	return Black
}

// Cell converts a player into the cell it occupies.
func (p Piece) Cell() Cell {
	if p == Black {
		return CellBlack
	}
	return CellWhite
}

// String returns the wire encoding, "b" or "w".
func (p Piece) String() string {
	return p.Cell().Marker()
}

// Point is a 0-based board coordinate. X is the column, Y the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add offsets p by d, n times.
func (p Point) Add(d Direction, n int) Point {
	return Point{X: p.X + d.X*n, Y: p.Y + d.Y*n}
}

// String returns the wire encoding "x,y".
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Less orders points row-major: by Y, then X.
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// Direction is one of the eight compass offsets.
type Direction struct {
	X, Y int
}

// Directions lists the eight compass offsets scanned for captures.
var Directions = [8]Direction{
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
}
