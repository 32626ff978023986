package engine

import (
	"errors"
	"testing"

	"othello/internal/rules"
)

func TestInit(t *testing.T) {
	b, err := Init(8)
	if err != nil {
		t.Fatalf("Init(8): %v", err)
	}
	if got := LegalMoveCount(b, rules.Black); got != 4 {
		t.Fatalf("LegalMoveCount = %d, want 4", got)
	}
	if s := Scores(b); s != (rules.Scores{Black: 2, White: 2}) {
		t.Fatalf("Scores = %+v", s)
	}
	for _, size := range []uint{0, 1, 256, 1 << 31} {
		_, err := Init(size)
		if !errors.Is(err, rules.ErrInvalidSize) {
			t.Errorf("Init(%d) err = %v, want ErrInvalidSize", size, err)
		}
		if Kind(err) != "InvalidSize" {
			t.Errorf("Kind = %q", Kind(err))
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	board, err := TextInit(4)
	if err != nil {
		t.Fatalf("TextInit: %v", err)
	}
	if board != "4:..../.bw./.wb./...." {
		t.Fatalf("TextInit = %q", board)
	}

	n, err := TextLegalMoveCount(board, "b")
	if err != nil || n != 4 {
		t.Fatalf("TextLegalMoveCount = %d, %v", n, err)
	}
	ok, err := TextIsLegal(board, "2,0", "b")
	if err != nil || !ok {
		t.Fatalf("TextIsLegal(2,0) = %v, %v", ok, err)
	}
	ok, err = TextIsLegal(board, "9,9", "b")
	if err != nil || ok {
		t.Fatalf("TextIsLegal(9,9) = %v, %v", ok, err)
	}

	next, err := TextPlace(board, "b", "2,0")
	if err != nil {
		t.Fatalf("TextPlace: %v", err)
	}
	if next != "4:..b./.bb./.wb./...." {
		t.Fatalf("TextPlace = %q", next)
	}
	s, err := TextScores(next)
	if err != nil || s != (rules.Scores{Black: 4, White: 1}) {
		t.Fatalf("TextScores = %+v, %v", s, err)
	}
	w, err := TextScoreFor(next, "w")
	if err != nil || w != 1 {
		t.Fatalf("TextScoreFor = %d, %v", w, err)
	}
	grid, err := TextRender(next)
	if err != nil || len(grid) != 4 || grid[0][2] != "b" || grid[2][1] != "w" {
		t.Fatalf("TextRender = %v, %v", grid, err)
	}

	after, err := TextAIMove(next, "w", 1)
	if err != nil {
		t.Fatalf("TextAIMove: %v", err)
	}
	ab, err := rules.DecodeBoard(after)
	if err != nil {
		t.Fatalf("decode AI board: %v", err)
	}
	if rules.Score(ab).Total() != 6 {
		t.Fatalf("AI board %q should have one more piece", after)
	}
}

func TestTextErrors(t *testing.T) {
	board, _ := TextInit(4)
	tests := []struct {
		name string
		run  func() error
		kind string
	}{
		{"BadBoard", func() error { _, err := TextScores("4:...."); return err }, "DecodingError"},
		{"BadPlayer", func() error { _, err := TextLegalMoveCount(board, "x"); return err }, "DecodingError"},
		{"BadPoint", func() error { _, err := TextPlace(board, "b", "2;0"); return err }, "DecodingError"},
		{"BadPointIsLegal", func() error { _, err := TextIsLegal(board, "a,b", "b"); return err }, "DecodingError"},
		{"BadRender", func() error { _, err := TextRender("x"); return err }, "DecodingError"},
		{"BadAIPlayer", func() error { _, err := TextAIMove(board, "", 0); return err }, "DecodingError"},
		{"OutOfBounds", func() error { _, err := TextPlace(board, "b", "4,0"); return err }, "OutOfBounds"},
		{"Occupied", func() error { _, err := TextPlace(board, "b", "1,1"); return err }, "AlreadyOccupied"},
		{"NotPlaceable", func() error { _, err := TextPlace(board, "b", "0,0"); return err }, "NotPlaceable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := Kind(err); got != tt.kind {
				t.Fatalf("Kind(%v) = %q, want %q", err, got, tt.kind)
			}
			var pe *rules.PlaceError
			if isPlace := errors.As(err, &pe); isPlace == (tt.kind == "DecodingError") {
				t.Fatalf("placement error / decoding error confusion: %v", err)
			}
		})
	}
}

func TestAIMovePasses(t *testing.T) {
	b, err := rules.DecodeRows(`
		ww.b
		bwbw
		w..b
		bwbw`, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, strength := range []uint{0, 4, 99} {
		if got := AIMove(b, rules.Black, strength); !got.Equal(b) {
			t.Fatalf("strength %d: AIMove changed the board", strength)
		}
	}
}

func TestKindInvalidCell(t *testing.T) {
	_, err := rules.FromRows([][]rules.Cell{{rules.CellEmpty, 9}, {rules.CellEmpty, rules.CellEmpty}})
	if got := Kind(err); got != "InvalidCell" {
		t.Fatalf("Kind(%v) = %q, want InvalidCell", err, got)
	}
}
