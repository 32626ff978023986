package rules

import "fmt"

const (
	// MinSize is the smallest board that holds the four-piece opening.
	MinSize = 2
	// MaxSize bounds the grid so a board never grows past a byte per side.
	MaxSize = 255
)

// Board is an immutable size×size Othello grid. The zero value is an empty,
// size-0 board; use New or FromRows to build a usable one.
type Board struct {
	size  int
	cells []Cell // row-major
}

// New returns a board with the canonical opening: the two diagonals of the
// central 2×2 cluster are Black and White respectively.
func New(size int) (Board, error) {
	if err := checkSize(size); err != nil {
		return Board{}, err
	}
	b := Board{size: size, cells: make([]Cell, size*size)}
	h := size / 2
	b.set(Pt(h-1, h-1), CellBlack)
	b.set(Pt(h, h), CellBlack)
	b.set(Pt(h-1, h), CellWhite)
	b.set(Pt(h, h-1), CellWhite)
	return b, nil
}

// FromRows builds a board from an explicit grid, rows indexed by Y.
func FromRows(rows [][]Cell) (Board, error) {
	size := len(rows)
	if err := checkSize(size); err != nil {
		return Board{}, err
	}
	b := Board{size: size, cells: make([]Cell, 0, size*size)}
	for y, row := range rows {
		if len(row) != size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, y, len(row), size)
		}
		for x, c := range row {
			if c > CellWhite {
				return Board{}, fmt.Errorf("%w: %d at %s", ErrInvalidCell, c, Pt(x, y))
			}
		}
		b.cells = append(b.cells, row...)
	}
	return b, nil
}

func checkSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidSize, size, MinSize, MaxSize)
	}
	return nil
}

// Size returns the side length.
func (b Board) Size() int {
	return b.size
}

// InBounds reports whether p lies on the board.
func (b Board) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.size && p.Y < b.size
}

// At returns the cell at p.
func (b Board) At(p Point) (Cell, error) {
	if !b.InBounds(p) {
		return CellEmpty, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, b.size, b.size)
	}
	return b.cells[p.Y*b.size+p.X], nil
}

// at is At without the bounds check; callers guarantee p is on the board.
func (b Board) at(p Point) Cell {
	return b.cells[p.Y*b.size+p.X]
}

func (b *Board) set(p Point, c Cell) {
	b.cells[p.Y*b.size+p.X] = c
}

func (b Board) clone() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}

// Cells calls fn for every square in row-major order.
func (b Board) Cells(fn func(p Point, c Cell)) {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			fn(Pt(x, y), b.cells[y*b.size+x])
		}
	}
}

// Materialize renders the board as rows of ".", "b" and "w". It allocates a
// fresh grid every call, so renderers should keep the result around.
func (b Board) Materialize() [][]string {
	out := make([][]string, b.size)
	for y := range out {
		row := make([]string, b.size)
		for x := range row {
			row[x] = b.cells[y*b.size+x].Marker()
		}
		out[y] = row
	}
	return out
}

// Equal reports whether both boards have the same size and cells.
func (b Board) Equal(o Board) bool {
	if b.size != o.size || len(b.cells) != len(o.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Full reports whether no empty square is left.
func (b Board) Full() bool {
	for _, c := range b.cells {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// String returns the board in its wire encoding.
func (b Board) String() string {
	return b.Encode()
}
