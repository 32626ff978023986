package ai

import (
	"io"
	"log"
	"math"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"othello/internal/rules"
)

// Settings configures a Searcher.
type Settings struct {
	// Logger receives one line per search. Nil discards.
	Logger *log.Logger
	// Parallel searches root moves concurrently. The chosen move is the same
	// either way.
	Parallel bool
}

// Searcher picks moves. It keeps no state between calls and is safe for
// concurrent use.
type Searcher struct {
	logger   *log.Logger
	parallel bool
}

// NewSearcher returns a Searcher for the given settings.
func NewSearcher(settings Settings) *Searcher {
	logger := settings.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Searcher{logger: logger, parallel: settings.Parallel}
}

// Stats describes the work done by one search.
type Stats struct {
	Candidates int
	Nodes      int
	TTHits     int
	TTSize     int
	Cutoffs    int
	Elapsed    time.Duration

	// Depth is the deepest iteration that completed within the node budget.
	Depth int

	// Truncated is set when the node budget stopped deepening early.
	Truncated bool
}

// Result is the outcome of a search. OK is false when the player must pass.
type Result struct {
	Move  rules.Point
	Score int
	Flips int // pieces Move turns over
	OK    bool
	Stats Stats
}

// Search evaluates every legal move of player and returns the best one. It
// deepens one ply at a time up to the depth bought by strength and keeps the
// answer of the deepest iteration that fit in the node budget. Equal scores
// go to the lowest point in row-major order.
func (s *Searcher) Search(b rules.Board, player rules.Piece, strength uint) Result {
	start := time.Now()
	moves := rules.LegalMoves(b, player)
	if len(moves) == 0 {
		s.logger.Printf("[AI] %s has no legal moves, passing", player)
		return Result{}
	}

	budget := BudgetFor(strength)
	z := getZobrist(b.Size())
	children := make([]rules.Board, len(moves))
	for i, m := range moves {
		child, err := rules.Place(b, player, m)
		if err != nil {
			panic("ai: legal move rejected: " + err.Error())
		}
		children[i] = child
	}

	stats := Stats{Candidates: len(moves)}
	best, bestScore := 0, 0
	remaining := budget.MaxNodes
	for depth := 1; depth <= budget.Depth; depth++ {
		limit := 0
		if depth > 1 {
			if limit = remaining / len(moves); limit <= 0 {
				stats.Truncated = true
				break
			}
		}

		scores, workers := s.searchRoot(children, player, z, depth, limit)
		aborted := false
		for _, w := range workers {
			remaining -= w.nodes
			stats.Nodes += w.nodes
			stats.TTHits += w.ttHits
			stats.TTSize += w.tt.len()
			stats.Cutoffs += w.cutoffs
			aborted = aborted || w.aborted
		}
		if aborted {
			stats.Truncated = true
			break
		}

		best = 0
		for i := 1; i < len(moves); i++ {
			if scores[i] > scores[best] || (scores[i] == scores[best] && moves[i].Less(moves[best])) {
				best = i
			}
		}
		bestScore = scores[best]
		stats.Depth = depth
	}
	stats.Elapsed = time.Since(start)

	flips := rules.FlipCount(b, moves[best], player)
	s.logger.Printf("[AI] %s chose %s (score %d, flips %d, depth %d/%d, candidates %d, nodes %d, tt hits %d, cutoffs %d, %dms)",
		player, moves[best], bestScore, flips, stats.Depth, budget.Depth, stats.Candidates, stats.Nodes, stats.TTHits, stats.Cutoffs, stats.Elapsed.Milliseconds())

	return Result{Move: moves[best], Score: bestScore, Flips: flips, OK: true, Stats: stats}
}

// searchRoot scores every root child to depth plies. limit caps the nodes of
// each child's search, 0 meaning no cap. Every child has its own window and
// table, so the scores do not depend on the order children are searched in.
func (s *Searcher) searchRoot(children []rules.Board, player rules.Piece, z *zobristTable, depth, limit int) ([]int, []*search) {
	scores := make([]int, len(children))
	workers := make([]*search, len(children))

	evalRoot := func(i int) {
		w := &search{ai: player, z: z, tt: newTranspositionTable(), limit: limit}
		scores[i] = w.minimax(children[i], player.Opponent(), depth-1, -math.MaxInt, math.MaxInt)
		workers[i] = w
	}

	if s.parallel && len(children) > 1 {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range children {
			i := i
			g.Go(func() error {
				evalRoot(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range children {
			evalRoot(i)
		}
	}
	return scores, workers
}

// BestMove returns the move Search would play, false when player must pass.
func (s *Searcher) BestMove(b rules.Board, player rules.Piece, strength uint) (rules.Point, bool) {
	r := s.Search(b, player, strength)
	return r.Move, r.OK
}

// Play applies the chosen move and returns the new board. When player has no
// legal move the input board is returned unchanged.
func (s *Searcher) Play(b rules.Board, player rules.Piece, strength uint) rules.Board {
	move, ok := s.BestMove(b, player, strength)
	if !ok {
		return b
	}
	next, err := rules.Place(b, player, move)
	if err != nil {
		panic("ai: chosen move rejected: " + err.Error())
	}
	return next
}

// search is the state of one root subtree.
type search struct {
	ai      rules.Piece
	z       *zobristTable
	tt      *transpositionTable
	limit   int
	aborted bool
	nodes   int
	ttHits  int
	cutoffs int
}

// minimax returns the value of b for s.ai with toMove to play and depth plies
// left. A pass uses up a ply; a finished game is scored immediately. Once the
// node limit is reached the search is aborted and its scores are meaningless.
func (s *search) minimax(b rules.Board, toMove rules.Piece, depth, alpha, beta int) int {
	if s.limit > 0 && s.nodes >= s.limit {
		s.aborted = true
		return 0
	}
	s.nodes++
	if depth <= 0 {
		return Evaluate(b, s.ai)
	}

	key := s.z.hash(b, toMove)
	alphaOrig, betaOrig := alpha, beta
	if e, ok := s.tt.get(key); ok && e.depth >= depth {
		s.ttHits++
		switch e.flag {
		case exactScore:
			return e.score
		case lowerBound:
			alpha = max(alpha, e.score)
		case upperBound:
			beta = min(beta, e.score)
		}
		if alpha >= beta {
			return e.score
		}
	}

	moves := rules.LegalMoves(b, toMove)
	if len(moves) == 0 {
		if !rules.HasMoves(b, toMove.Opponent()) {
			return Evaluate(b, s.ai)
		}
		return s.minimax(b, toMove.Opponent(), depth-1, alpha, beta)
	}

	children := expand(b, toMove, moves, depth > 1)
	maximizing := toMove == s.ai
	best := math.MaxInt
	if maximizing {
		best = -math.MaxInt
	}
	for _, child := range children {
		v := s.minimax(child, toMove.Opponent(), depth-1, alpha, beta)
		if s.aborted {
			return 0
		}
		if maximizing {
			best = max(best, v)
			alpha = max(alpha, v)
		} else {
			best = min(best, v)
			beta = min(beta, v)
		}
		if alpha >= beta {
			s.cutoffs++
			break
		}
	}

	flag := exactScore
	switch {
	case best <= alphaOrig:
		flag = upperBound
	case best >= betaOrig:
		flag = lowerBound
	}
	s.tt.put(key, ttEntry{score: best, depth: depth, flag: flag})
	return best
}

// expand applies each move. With ordered set, children come back sorted by
// scoreMoveQuick, ties in move order.
func expand(b rules.Board, player rules.Piece, moves []rules.Point, ordered bool) []rules.Board {
	children := make([]rules.Board, len(moves))
	quick := make([]int, len(moves))
	for i, m := range moves {
		child, flips, err := rules.PlaceCount(b, player, m)
		if err != nil {
			panic("ai: legal move rejected: " + err.Error())
		}
		children[i] = child
		quick[i] = scoreMoveQuick(b.Size(), m, flips)
	}
	if !ordered {
		return children
	}
	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return quick[idx[i]] > quick[idx[j]]
	})
	sorted := make([]rules.Board, len(moves))
	for i, k := range idx {
		sorted[i] = children[k]
	}
	return sorted
}

// scoreMoveQuick is a cheap ordering key: square quality first, then flips.
func scoreMoveQuick(size int, p rules.Point, flips int) int {
	return squareWeight(size, p)*10 + flips
}
