package rules

// Scores holds the piece count of each player.
type Scores struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// Score counts the pieces of both players. Empty squares are not counted.
func Score(b Board) Scores {
	var s Scores
	for _, c := range b.cells {
		switch c {
		case CellBlack:
			s.Black++
		case CellWhite:
			s.White++
		}
	}
	return s
}

// ScoreFor counts player's pieces.
func ScoreFor(b Board, player Piece) int {
	return Score(b).For(player)
}

// For returns player's count.
func (s Scores) For(player Piece) int {
	if player == Black {
		return s.Black
	}
	return s.White
}

// Total is the number of occupied squares.
func (s Scores) Total() int {
	return s.Black + s.White
}

// Leader returns the player with more pieces; ok is false on a tie.
func (s Scores) Leader() (leader Piece, ok bool) {
	switch {
	case s.Black > s.White:
		return Black, true
	case s.White > s.Black:
		return White, true
	default:
		return Black, false
	}
}
