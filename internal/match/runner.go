package match

import (
	"context"
	"fmt"
	"io"
	"log"

	"golang.org/x/sync/errgroup"

	"othello/internal/ai"
	"othello/internal/archive"
)

// Recorder stores finished games. *archive.Store implements it.
type Recorder interface {
	Save(ctx context.Context, r archive.Record) error
}

// Series describes a run of games between two entrants. A plays Black in
// even-numbered games and White in odd ones; each pair of games shares an
// opening seed so both entrants see the same openings from both sides.
type Series struct {
	Games        int
	Size         int
	A            Entrant
	B            Entrant
	OpeningPlies int
	Seed         int64
}

// Spec returns the game spec for the i-th game of the series.
func (s Series) Spec(i int) Spec {
	spec := Spec{
		Size:         s.Size,
		Black:        s.A,
		White:        s.B,
		OpeningPlies: s.OpeningPlies,
		Seed:         s.Seed + int64(i/2),
	}
	if i%2 == 1 {
		spec.Black, spec.White = s.B, s.A
	}
	return spec
}

// Report tallies a series from A's point of view.
type Report struct {
	Games int
	AWins int
	BWins int
	Draws int
	// DiscDiff is the sum over all games of A's pieces minus B's.
	DiscDiff int
}

// AvgDiff is the mean disc differential per game.
func (r Report) AvgDiff() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.DiscDiff) / float64(r.Games)
}

func (r Report) String() string {
	return fmt.Sprintf("games=%d A=%d B=%d draws=%d avg disc diff=%+.2f",
		r.Games, r.AWins, r.BWins, r.Draws, r.AvgDiff())
}

func (r *Report) add(i int, res Result) {
	aIsBlack := i%2 == 0
	r.Games++
	diff := res.Scores.Black - res.Scores.White
	if !aIsBlack {
		diff = -diff
	}
	r.DiscDiff += diff
	switch {
	case diff > 0:
		r.AWins++
	case diff < 0:
		r.BWins++
	default:
		r.Draws++
	}
}

// RunnerSettings configures a Runner.
type RunnerSettings struct {
	// PoolSize bounds the number of games played at once. Values below one
	// mean one.
	PoolSize int
	Searcher *ai.Searcher
	// Recorder receives each finished game. Nil skips recording.
	Recorder Recorder
	// Logger receives one line per game. Nil discards.
	Logger *log.Logger
}

// Runner plays series of games over a bounded worker pool.
type Runner struct {
	pool     int
	searcher *ai.Searcher
	recorder Recorder
	logger   *log.Logger
}

// NewRunner returns a Runner for the given settings.
func NewRunner(settings RunnerSettings) *Runner {
	r := &Runner{
		pool:     settings.PoolSize,
		searcher: settings.Searcher,
		recorder: settings.Recorder,
		logger:   settings.Logger,
	}
	if r.pool < 1 {
		r.pool = 1
	}
	if r.searcher == nil {
		r.searcher = ai.NewSearcher(ai.Settings{})
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard, "", 0)
	}
	return r
}

// Run plays every game of the series and returns the tally. The first game
// or recorder error cancels the remaining games.
func (r *Runner) Run(ctx context.Context, s Series) (Report, error) {
	r.logger.Printf("[match] starting %d games on %dx%d: %s (strength %d) vs %s (strength %d), pool %d",
		s.Games, s.Size, s.Size, s.A.Name, s.A.Strength, s.B.Name, s.B.Strength, r.pool)

	results := make([]Result, s.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.pool)
	for i := 0; i < s.Games; i++ {
		i := i
		g.Go(func() error {
			res, err := Play(ctx, s.Spec(i), r.searcher)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = res
			r.logger.Printf("[match] game %d/%d %s: %s %d - %d %s (%d plies, %dms)",
				i+1, s.Games, res.ID, res.Spec.Black.Name, res.Scores.Black, res.Scores.White, res.Spec.White.Name,
				len(res.Moves), res.EndedAt.Sub(res.StartedAt).Milliseconds())
			if r.recorder != nil {
				if err := r.recorder.Save(ctx, res.Record()); err != nil {
					return fmt.Errorf("game %d: %w", i+1, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	var report Report
	for i, res := range results {
		report.add(i, res)
	}
	r.logger.Printf("[match] finished: %s", report)
	return report, nil
}
