package rules

import (
	"errors"
	"math/rand"
	"testing"
)

func TestOpeningLegalMoves(t *testing.T) {
	b, _ := New(8)
	if got := LegalMoveCount(b, Black); got != 4 {
		t.Fatalf("LegalMoveCount(init(8), Black) = %d, want 4", got)
	}
	want := []Point{Pt(4, 2), Pt(5, 3), Pt(2, 4), Pt(3, 5)}
	got := LegalMoves(b, Black)
	if len(got) != len(want) {
		t.Fatalf("LegalMoves = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LegalMoves = %v, want %v", got, want)
		}
	}
	if got := LegalMoveCount(b, White); got != 4 {
		t.Fatalf("LegalMoveCount(init(8), White) = %d, want 4", got)
	}
}

func TestPlaceFlipsSingleCapture(t *testing.T) {
	b, _ := New(8)
	next, flipped, err := PlaceCount(b, Black, Pt(4, 2))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if flipped != 1 {
		t.Fatalf("flipped = %d, want 1", flipped)
	}
	changed := 0
	b.Cells(func(p Point, before Cell) {
		after, _ := next.At(p)
		if before == after {
			return
		}
		changed++
		switch p {
		case Pt(4, 2):
			if after != CellBlack {
				t.Errorf("placed square = %s", after.Marker())
			}
		case Pt(4, 3):
			if before != CellWhite || after != CellBlack {
				t.Errorf("captured square %s -> %s", before.Marker(), after.Marker())
			}
		default:
			t.Errorf("unexpected change at %s", p)
		}
	})
	if changed != 2 {
		t.Fatalf("changed squares = %d, want 2", changed)
	}
}

func TestPlaceFixtures(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		input   string
		moves   []Point
		want    string
		flipped int
	}{
		{
			name:    "TwoInARow",
			size:    4,
			input:   ".wwb\n....\n....\n....",
			moves:   []Point{Pt(0, 0)},
			want:    "bbbb\n....\n....\n....",
			flipped: 2,
		},
		{
			name: "Complex",
			size: 6,
			input: `
				bbw.bb
				.wwbww
				bw.wb.
				wwbwb.
				ww.bww
				ww.bbb`,
			moves: []Point{Pt(2, 2)},
			want: `
				bbw.bb
				.bwbww
				bbbbb.
				wwbbb.
				ww.bbw
				ww.bbb`,
			flipped: 5,
		},
		{
			name: "StopsAtClosingPiece",
			size: 6,
			input: `
				.wwwb.
				.wwwbw
				.wwwbb
				.wwwwb
				......
				......`,
			moves: []Point{Pt(0, 0), Pt(0, 1), Pt(0, 2), Pt(0, 3)},
			want: `
				bbbbb.
				bbbbbw
				bbbbbb
				bbbbbb
				......
				......`,
			flipped: 13,
		},
		{
			name: "EightDirections",
			size: 6,
			input: `
				b.b.b.
				.www..
				bw_wwb
				.www..
				b.w.w.
				..b..b`,
			moves: []Point{Pt(2, 2)},
			want: `
				b.b.b.
				.bbb..
				bbbbbb
				.bbb..
				b.b.b.
				..b..b`,
			flipped: 11,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			b := mustRows(t, tt.input, tt.size)
			want := mustRows(t, tt.want, tt.size)
			total := 0
			for _, p := range tt.moves {
				predicted := FlipCount(b, p, Black)
				next, n, err := PlaceCount(b, Black, p)
				if err != nil {
					t.Fatalf("place %s: %v", p, err)
				}
				if predicted != n {
					t.Fatalf("FlipCount(%s) = %d, placement flipped %d", p, predicted, n)
				}
				b = next
				total += n
			}
			if !b.Equal(want) {
				t.Fatalf("board = %s, want %s", b, want)
			}
			if total != tt.flipped {
				t.Fatalf("flipped = %d, want %d", total, tt.flipped)
			}
		})
	}
}

func TestPlaceErrors(t *testing.T) {
	b, _ := New(8)
	tests := []struct {
		name string
		at   Point
		want error
		kind PlaceErrorKind
	}{
		{"OutOfBounds", Pt(8, 0), ErrOutOfBounds, OutOfBounds},
		{"Negative", Pt(-1, 3), ErrOutOfBounds, OutOfBounds},
		{"Occupied", Pt(3, 3), ErrAlreadyOccupied, AlreadyOccupied},
		{"NoCapture", Pt(0, 0), ErrNotPlaceable, NotPlaceable},
		{"AdjacentNoCapture", Pt(2, 2), ErrNotPlaceable, NotPlaceable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := b.Encode()
			if n := FlipCount(b, tt.at, Black); n != 0 {
				t.Fatalf("FlipCount = %d for a rejected placement", n)
			}
			_, err := Place(b, Black, tt.at)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if errors.Is(err, ErrDecoding) {
				t.Fatal("placement error matched ErrDecoding")
			}
			var pe *PlaceError
			if !errors.As(err, &pe) || pe.Kind != tt.kind || pe.Point != tt.at {
				t.Fatalf("err = %#v, want kind %d at %s", err, tt.kind, tt.at)
			}
			if !errors.Is(err, &PlaceError{Kind: tt.kind}) {
				t.Fatal("PlaceError does not match its kind")
			}
			if b.Encode() != before {
				t.Fatal("failed placement changed the input board")
			}
		})
	}
}

// Random games check the invariants that must hold after every placement.
func TestRandomGameInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 40; game++ {
		size := 4 + rng.Intn(7)
		b, err := New(size)
		if err != nil {
			t.Fatalf("New(%d): %v", size, err)
		}
		player := Black
		passes := 0
		prevTotal := Score(b).Total()
		for passes < 2 {
			checkBoardInvariants(t, b)
			moves := LegalMoves(b, player)
			if len(moves) != LegalMoveCount(b, player) {
				t.Fatalf("LegalMoves and LegalMoveCount disagree")
			}
			if len(moves) == 0 {
				passes++
				player = player.Opponent()
				continue
			}
			passes = 0
			p := moves[rng.Intn(len(moves))]
			before := b.Encode()
			next, err := Place(b, player, p)
			if err != nil {
				t.Fatalf("legal move %s rejected: %v", p, err)
			}
			if b.Encode() != before {
				t.Fatal("Place mutated its input")
			}
			if c, _ := next.At(p); c != player.Cell() {
				t.Fatalf("placed square %s is %s", p, c.Marker())
			}
			if _, err := Place(next, player, p); !errors.Is(err, ErrAlreadyOccupied) {
				t.Fatalf("replaying %s: err = %v, want ErrAlreadyOccupied", p, err)
			}
			total := Score(next).Total()
			if total != prevTotal+1 {
				t.Fatalf("occupied squares %d -> %d", prevTotal, total)
			}
			prevTotal = total
			b = next
			player = player.Opponent()
		}
		if !GameOver(b) {
			t.Fatal("two passes in a row but GameOver is false")
		}
	}
}

func checkBoardInvariants(t *testing.T, b Board) {
	t.Helper()
	occupied := 0
	b.Cells(func(p Point, c Cell) {
		if c != CellEmpty {
			occupied++
			for _, player := range []Piece{Black, White} {
				if IsLegal(b, p, player) {
					t.Fatalf("occupied %s is legal for %s", p, player)
				}
			}
		}
	})
	s := Score(b)
	if s.Total() != occupied {
		t.Fatalf("scores %+v, occupied %d", s, occupied)
	}
	if s.Total() > b.Size()*b.Size() {
		t.Fatalf("scores %+v exceed board area", s)
	}
	if ScoreFor(b, Black) != s.Black || ScoreFor(b, White) != s.White {
		t.Fatal("ScoreFor disagrees with Score")
	}
}

func TestGameOverOnFullBoard(t *testing.T) {
	full := mustRows(t, `
		bbww
		bbww
		wwbb
		wwbb`, 4)
	if !full.Full() || !GameOver(full) {
		t.Fatal("full board should be over")
	}
	open := mustRows(t, `
		bbbb
		bbbb
		bbbb
		bbb.`, 4)
	if open.Full() {
		t.Fatal("board with an empty square reported full")
	}
	if !GameOver(open) {
		t.Fatal("board without white pieces should be over")
	}
	b, _ := New(4)
	if b.Full() || GameOver(b) {
		t.Fatal("opening should not be over")
	}
}
