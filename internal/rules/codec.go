package rules

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	pointRepr = regexp.MustCompile(`^(\d+),(\d+)$`)
	sizeRepr  = regexp.MustCompile(`^[1-9]\d*$`)
)

// ParsePiece decodes "b" or "w".
func ParsePiece(s string) (Piece, error) {
	switch s {
	case "b":
		return Black, nil
	case "w":
		return White, nil
	}
	return Black, decodeErr("player", s, `want "b" or "w"`)
}

// ParsePoint decodes "x,y" with non-negative decimal coordinates. Bounds are
// checked against a board later, not here.
func ParsePoint(s string) (Point, error) {
	m := pointRepr.FindStringSubmatch(s)
	if m == nil {
		return Point{}, decodeErr("point", s, `want "x,y"`)
	}
	x, err := strconv.Atoi(m[1])
	if err != nil {
		return Point{}, decodeErr("point", s, "x: %v", err)
	}
	y, err := strconv.Atoi(m[2])
	if err != nil {
		return Point{}, decodeErr("point", s, "y: %v", err)
	}
	return Pt(x, y), nil
}

// Encode returns "size:row/row/...", each row a run of ".", "b" and "w".
// For example the 4×4 opening is "4:..../.bw./.wb./....".
func (b Board) Encode() string {
	var sb strings.Builder
	sb.Grow(4 + b.size*(b.size+1))
	sb.WriteString(strconv.Itoa(b.size))
	sb.WriteByte(':')
	for y := 0; y < b.size; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		for x := 0; x < b.size; x++ {
			sb.WriteString(b.cells[y*b.size+x].Marker())
		}
	}
	return sb.String()
}

// DecodeBoard parses the form produced by Encode.
func DecodeBoard(s string) (Board, error) {
	head, body, ok := strings.Cut(s, ":")
	if !ok {
		return Board{}, decodeErr("board", s, "missing size prefix")
	}
	if !sizeRepr.MatchString(head) {
		return Board{}, decodeErr("board", s, "size %q is not a canonical integer", head)
	}
	size, err := strconv.Atoi(head)
	if err != nil {
		return Board{}, decodeErr("board", s, "size %q is not an integer", head)
	}
	if size < MinSize || size > MaxSize {
		return Board{}, decodeErr("board", s, "size %d out of range %d..%d", size, MinSize, MaxSize)
	}
	rows := strings.Split(body, "/")
	if len(rows) != size {
		return Board{}, decodeErr("board", s, "got %d rows, want %d", len(rows), size)
	}
	return decodeGrid("board", s, rows, size, false)
}

// DecodeRows parses the multi-line layout: one row per line, blank lines and
// surrounding whitespace ignored, "_" accepted as an empty square so a cell can
// be highlighted in a fixture.
func DecodeRows(text string, size int) (Board, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	if size < MinSize || size > MaxSize {
		return Board{}, decodeErr("board", text, "size %d out of range %d..%d", size, MinSize, MaxSize)
	}
	if len(rows) != size {
		return Board{}, decodeErr("board", text, "got %d rows, want %d", len(rows), size)
	}
	return decodeGrid("board", text, rows, size, true)
}

func decodeGrid(what, input string, rows []string, size int, underscore bool) (Board, error) {
	b := Board{size: size, cells: make([]Cell, 0, size*size)}
	for y, row := range rows {
		if len(row) != size {
			return Board{}, decodeErr(what, input, "row %d has %d cells, want %d", y, len(row), size)
		}
		for x := 0; x < len(row); x++ {
			switch ch := row[x]; {
			case ch == '.' || (underscore && ch == '_'):
				b.cells = append(b.cells, CellEmpty)
			case ch == 'b':
				b.cells = append(b.cells, CellBlack)
			case ch == 'w':
				b.cells = append(b.cells, CellWhite)
			default:
				return Board{}, decodeErr(what, input, "unknown cell %q at %s", ch, Pt(x, y))
			}
		}
	}
	return b, nil
}
