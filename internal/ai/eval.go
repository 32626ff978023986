package ai

import "othello/internal/rules"

// WinScore dominates every non-terminal evaluation term.
const WinScore = 1 << 20

const (
	mobilityWeight = 3
	blockedPenalty = 100
)

// Evaluate scores b from player's point of view. Higher is better for player.
// It combines the player's piece count, positional weights for both sides and
// the mobility difference. A finished game scores ±WinScore plus the final
// disc difference.
func Evaluate(b rules.Board, player rules.Piece) int {
	opp := player.Opponent()
	s := rules.Score(b)
	mine, theirs := s.For(player), s.For(opp)

	mob := rules.LegalMoveCount(b, player)
	oppMob := rules.LegalMoveCount(b, opp)
	if mob == 0 && oppMob == 0 {
		return terminalScore(mine, theirs)
	}

	score := mine + positional(b, player) + mobilityWeight*(mob-oppMob)
	switch {
	case mob == 0:
		score -= blockedPenalty
	case oppMob == 0:
		score += blockedPenalty
	}
	return score
}

func terminalScore(mine, theirs int) int {
	diff := mine - theirs
	switch {
	case diff > 0:
		return WinScore + diff
	case diff < 0:
		return -WinScore + diff
	default:
		return 0
	}
}

func positional(b rules.Board, player rules.Piece) int {
	own, opp := player.Cell(), player.Opponent().Cell()
	size := b.Size()
	score := 0
	b.Cells(func(p rules.Point, c rules.Cell) {
		switch c {
		case own:
			score += squareWeight(size, p)
		case opp:
			score -= squareWeight(size, p)
		}
	})
	return score
}

// squareWeight folds p into the top-left quadrant and rates it. Corners score
// highest; squares touching a corner score lowest.
func squareWeight(size int, p rules.Point) int {
	x := min(p.X, size-1-p.X)
	y := min(p.Y, size-1-p.Y)
	switch {
	case x == 0 && y == 0:
		return 20
	case x <= 1 && y <= 1:
		return -5
	case x == 0 || y == 0:
		return 3
	case x == 1 || y == 1:
		return -3
	default:
		return 0
	}
}
