package rules

// CaptureRun scans from p in direction d and returns the number of opposing
// pieces that a player piece at p would flip in that direction. The run must be
// non-empty and closed by one of player's pieces before an empty square or the
// edge; otherwise the result is 0. The square at p itself is not inspected.
//
// Legality and placement both go through this scan so they cannot disagree.
func CaptureRun(b Board, p Point, player Piece, d Direction) int {
	own, opp := player.Cell(), player.Opponent().Cell()
	for n := 1; ; n++ {
		q := p.Add(d, n)
		if !b.InBounds(q) {
			return 0
		}
		switch b.at(q) {
		case opp:
			continue
		case own:
			return n - 1
		default:
			return 0
		}
	}
}

// FlipCount returns how many pieces placing player at p would flip, or 0 when
// the placement is not legal.
func FlipCount(b Board, p Point, player Piece) int {
	if !b.InBounds(p) || b.at(p) != CellEmpty {
		return 0
	}
	total := 0
	for _, d := range Directions {
		total += CaptureRun(b, p, player, d)
	}
	return total
}

// IsLegal reports whether player may place a piece at p: the square is empty
// and at least one direction captures.
func IsLegal(b Board, p Point, player Piece) bool {
	if !b.InBounds(p) || b.at(p) != CellEmpty {
		return false
	}
	for _, d := range Directions {
		if CaptureRun(b, p, player, d) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves lists every legal placement for player in row-major order.
func LegalMoves(b Board, player Piece) []Point {
	var moves []Point
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if p := Pt(x, y); IsLegal(b, p, player) {
				moves = append(moves, p)
			}
		}
	}
	return moves
}

// LegalMoveCount returns len(LegalMoves(b, player)) without allocating.
func LegalMoveCount(b Board, player Piece) int {
	n := 0
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if IsLegal(b, Pt(x, y), player) {
				n++
			}
		}
	}
	return n
}

// HasMoves reports whether player has any legal placement.
func HasMoves(b Board, player Piece) bool {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if IsLegal(b, Pt(x, y), player) {
				return true
			}
		}
	}
	return false
}

// GameOver reports whether neither player can move.
func GameOver(b Board) bool {
	return b.Full() || (!HasMoves(b, Black) && !HasMoves(b, White))
}
