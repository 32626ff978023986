package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	started_at INTEGER,
	ended_at INTEGER,
	size INTEGER,
	black_name TEXT,
	white_name TEXT,
	black_strength INTEGER,
	white_strength INTEGER,
	black_score INTEGER,
	white_score INTEGER,
	winner TEXT,
	final_board TEXT,
	moves TEXT
);
`

// Move is one ply of an archived game. A pass has an empty Point.
type Move struct {
	Ply        int    `json:"ply"`
	Player     string `json:"player"`
	Point      string `json:"point,omitempty"`
	Flips      int    `json:"flips,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// Record is a finished self-play game.
type Record struct {
	ID            string
	StartedAt     time.Time
	EndedAt       time.Time
	Size          int
	BlackName     string
	WhiteName     string
	BlackStrength uint
	WhiteStrength uint
	BlackScore    int
	WhiteScore    int
	Winner        string // "b", "w" or "draw"
	FinalBoard    string // rules.Board encoding
	Moves         []Move
}

// Store is an SQLite-backed game archive.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps writes from concurrent games serialized.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts a finished game.
func (s *Store) Save(ctx context.Context, r Record) error {
	moves, err := json.Marshal(r.Moves)
	if err != nil {
		return fmt.Errorf("encode moves: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO games (id, started_at, ended_at, size, black_name, white_name,
			black_strength, white_strength, black_score, white_score, winner, final_board, moves)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.StartedAt.UnixMilli(),
		r.EndedAt.UnixMilli(),
		r.Size,
		r.BlackName,
		r.WhiteName,
		int64(r.BlackStrength),
		int64(r.WhiteStrength),
		r.BlackScore,
		r.WhiteScore,
		r.Winner,
		r.FinalBoard,
		string(moves),
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", r.ID, err)
	}
	return nil
}

// List returns every archived game, oldest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, ended_at, size, black_name, white_name,
		       black_strength, white_strength, black_score, white_score, winner, final_board, moves
		FROM games
		ORDER BY started_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r                  Record
			started, ended     int64
			blackStr, whiteStr int64
			moves              string
		)
		if err := rows.Scan(&r.ID, &started, &ended, &r.Size, &r.BlackName, &r.WhiteName,
			&blackStr, &whiteStr, &r.BlackScore, &r.WhiteScore, &r.Winner, &r.FinalBoard, &moves); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		r.StartedAt = time.UnixMilli(started)
		r.EndedAt = time.UnixMilli(ended)
		r.BlackStrength = uint(blackStr)
		r.WhiteStrength = uint(whiteStr)
		if err := json.Unmarshal([]byte(moves), &r.Moves); err != nil {
			return nil, fmt.Errorf("decode moves of %s: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
