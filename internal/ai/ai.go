// Package ai chooses Othello moves. The strength knob buys plies of
// minimax lookahead over a fixed evaluation function; strength 0 is a greedy
// one-ply choice. Results depend only on (board, player, strength).
package ai

import "othello/internal/rules"

var defaultSearcher = NewSearcher(Settings{Parallel: true})

// GenerateAIPlay returns the board after player's chosen move, or b itself
// when player has no legal move and must pass.
func GenerateAIPlay(b rules.Board, player rules.Piece, strength uint) rules.Board {
	return defaultSearcher.Play(b, player, strength)
}

// BestMove returns player's chosen move, false when player must pass.
func BestMove(b rules.Board, player rules.Piece, strength uint) (rules.Point, bool) {
	return defaultSearcher.BestMove(b, player, strength)
}
