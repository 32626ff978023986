package archive

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "games.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	start := time.UnixMilli(1_700_000_000_000)
	first := Record{
		ID:            "game-1",
		StartedAt:     start,
		EndedAt:       start.Add(3 * time.Second),
		Size:          4,
		BlackName:     "CleverOwl7",
		WhiteName:     "SilentFox12",
		BlackStrength: 2,
		WhiteStrength: 0,
		BlackScore:    10,
		WhiteScore:    6,
		Winner:        "b",
		FinalBoard:    "4:bbbb/bbww/bwww/bbbw",
		Moves: []Move{
			{Ply: 1, Player: "b", Point: "2,0", Flips: 1, DurationMS: 3},
			{Ply: 2, Player: "w"},
		},
	}
	second := first
	second.ID = "game-2"
	second.StartedAt = start.Add(time.Minute)
	second.Moves = nil

	for _, r := range []Record{second, first} {
		if err := store.Save(ctx, r); err != nil {
			t.Fatalf("save %s: %v", r.ID, err)
		}
	}
	if err := store.Save(ctx, first); err == nil {
		t.Fatal("duplicate id accepted")
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	r := got[0]
	if r.ID != "game-1" || !r.StartedAt.Equal(first.StartedAt) || !r.EndedAt.Equal(first.EndedAt) {
		t.Fatalf("first record = %+v", r)
	}
	if r.BlackStrength != 2 || r.Winner != "b" || r.FinalBoard != first.FinalBoard || r.BlackScore != 10 {
		t.Fatalf("first record = %+v", r)
	}
	if len(r.Moves) != 2 || r.Moves[0] != first.Moves[0] || r.Moves[1].Point != "" {
		t.Fatalf("moves = %+v", r.Moves)
	}
	if got[1].ID != "game-2" || len(got[1].Moves) != 0 {
		t.Fatalf("second record = %+v", got[1])
	}
}
