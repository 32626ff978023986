package ai

// MaxStrength is the deepest supported setting; larger values are clamped.
const MaxStrength = 8

// MaxNodes caps the nodes a single search may visit, whatever the strength
// and board size.
const MaxNodes = 100_000

// Budget is the search effort a strength buys.
type Budget struct {
	// Depth is the number of plies searched, counting the AI's own move.
	// Depth 1 picks the move with the best immediate evaluation.
	Depth int

	// MaxNodes bounds the total nodes over every deepening iteration. The
	// one-ply iteration always completes.
	MaxNodes int
}

// BudgetFor maps a strength onto a search budget. Strength 0 is a greedy
// one-ply choice and every step adds one ply of lookahead, as far as the
// node cap allows.
func BudgetFor(strength uint) Budget {
	if strength > MaxStrength {
		strength = MaxStrength
	}
	return Budget{Depth: int(strength) + 1, MaxNodes: MaxNodes}
}
