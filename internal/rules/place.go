package rules

// Place returns a new board with player's piece at p and every captured run
// flipped. b is never modified. An illegal placement returns a *PlaceError.
func Place(b Board, player Piece, p Point) (Board, error) {
	next, _, err := PlaceCount(b, player, p)
	return next, err
}

// PlaceCount is Place that also reports how many pieces were flipped.
func PlaceCount(b Board, player Piece, p Point) (Board, int, error) {
	if !b.InBounds(p) {
		return Board{}, 0, &PlaceError{Kind: OutOfBounds, Point: p, Player: player}
	}
	if b.at(p) != CellEmpty {
		return Board{}, 0, &PlaceError{Kind: AlreadyOccupied, Point: p, Player: player}
	}

	var runs [len(Directions)]int
	total := 0
	for i, d := range Directions {
		runs[i] = CaptureRun(b, p, player, d)
		total += runs[i]
	}
	if total == 0 {
		return Board{}, 0, &PlaceError{Kind: NotPlaceable, Point: p, Player: player}
	}

	next := b.clone()
	own := player.Cell()
	next.set(p, own)
	for i, d := range Directions {
		for n := 1; n <= runs[i]; n++ {
			next.set(p.Add(d, n), own)
		}
	}
	return next, total, nil
}
