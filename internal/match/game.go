// Package match plays AI-versus-AI games and tallies the outcome of a
// series, optionally recording each finished game in the archive.
package match

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"othello/internal/ai"
	"othello/internal/archive"
	"othello/internal/rules"
)

// Entrant is one side of a game.
type Entrant struct {
	Name     string
	Strength uint
}

// Spec describes a single game.
type Spec struct {
	Size  int
	Black Entrant
	White Entrant
	// OpeningPlies are played at random from Seed before the AIs take over,
	// so that a series of games between the same strengths diverges.
	OpeningPlies int
	Seed         int64
}

func (s Spec) entrant(p rules.Piece) Entrant {
	if p == rules.Black {
		return s.Black
	}
	return s.White
}

// Move is one ply. Pass is set when the player had no legal move.
type Move struct {
	Player  rules.Piece
	Point   rules.Point
	Pass    bool
	Flips   int
	Elapsed time.Duration
}

// Result is a finished game.
type Result struct {
	ID        string
	Spec      Spec
	Board     rules.Board
	Scores    rules.Scores
	Moves     []Move
	StartedAt time.Time
	EndedAt   time.Time
}

// Winner returns the player with more pieces; ok is false on a draw.
func (r Result) Winner() (rules.Piece, bool) {
	return r.Scores.Leader()
}

// Record converts the result to its archived form.
func (r Result) Record() archive.Record {
	winner := "draw"
	if p, ok := r.Winner(); ok {
		winner = p.String()
	}
	moves := make([]archive.Move, len(r.Moves))
	for i, m := range r.Moves {
		am := archive.Move{Ply: i + 1, Player: m.Player.String(), DurationMS: m.Elapsed.Milliseconds()}
		if !m.Pass {
			am.Point = m.Point.String()
			am.Flips = m.Flips
		}
		moves[i] = am
	}
	return archive.Record{
		ID:            r.ID,
		StartedAt:     r.StartedAt,
		EndedAt:       r.EndedAt,
		Size:          r.Spec.Size,
		BlackName:     r.Spec.Black.Name,
		WhiteName:     r.Spec.White.Name,
		BlackStrength: r.Spec.Black.Strength,
		WhiteStrength: r.Spec.White.Strength,
		BlackScore:    r.Scores.Black,
		WhiteScore:    r.Scores.White,
		Winner:        winner,
		FinalBoard:    r.Board.Encode(),
		Moves:         moves,
	}
}

// Play runs one game to completion with searcher choosing every move after
// the random opening. Black moves first; a player without a legal move
// passes and the game ends when neither player can move.
func Play(ctx context.Context, spec Spec, searcher *ai.Searcher) (Result, error) {
	board, err := rules.New(spec.Size)
	if err != nil {
		return Result{}, fmt.Errorf("new board: %w", err)
	}
	res := Result{
		ID:        uuid.NewString(),
		Spec:      spec,
		StartedAt: time.Now(),
	}
	rng := rand.New(rand.NewSource(spec.Seed))

	toMove := rules.Black
	for ply := 0; !rules.GameOver(board); ply++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		start := time.Now()
		var (
			point rules.Point
			ok    bool
		)
		if ply < spec.OpeningPlies {
			if moves := rules.LegalMoves(board, toMove); len(moves) > 0 {
				point, ok = moves[rng.Intn(len(moves))], true
			}
		} else {
			point, ok = searcher.BestMove(board, toMove, spec.entrant(toMove).Strength)
		}

		move := Move{Player: toMove, Pass: !ok}
		if ok {
			next, flips, err := rules.PlaceCount(board, toMove, point)
			if err != nil {
				return Result{}, fmt.Errorf("ply %d: %w", ply+1, err)
			}
			board = next
			move.Point = point
			move.Flips = flips
		}
		move.Elapsed = time.Since(start)
		res.Moves = append(res.Moves, move)
		toMove = toMove.Opponent()
	}

	res.Board = board
	res.Scores = rules.Score(board)
	res.EndedAt = time.Now()
	return res, nil
}
