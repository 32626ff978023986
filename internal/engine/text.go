package engine

import (
	"fmt"

	"othello/internal/rules"
)

// TextInit returns the encoded opening board.
func TextInit(size uint) (string, error) {
	b, err := Init(size)
	if err != nil {
		return "", err
	}
	return b.Encode(), nil
}

// TextLegalMoveCount decodes board and player and counts legal moves.
func TextLegalMoveCount(board, player string) (int, error) {
	b, p, err := decodeBoardPlayer(board, player)
	if err != nil {
		return 0, err
	}
	return LegalMoveCount(b, p), nil
}

// TextIsLegal decodes its arguments and reports legality. A point outside the
// board is simply not legal.
func TextIsLegal(board, point, player string) (bool, error) {
	b, p, err := decodeBoardPlayer(board, player)
	if err != nil {
		return false, err
	}
	at, err := rules.ParsePoint(point)
	if err != nil {
		return false, err
	}
	return IsLegal(b, at, p), nil
}

// TextScores decodes board and counts both players.
func TextScores(board string) (rules.Scores, error) {
	b, err := rules.DecodeBoard(board)
	if err != nil {
		return rules.Scores{}, err
	}
	return Scores(b), nil
}

// TextScoreFor decodes its arguments and counts player's pieces.
func TextScoreFor(board, player string) (int, error) {
	b, p, err := decodeBoardPlayer(board, player)
	if err != nil {
		return 0, err
	}
	return ScoreFor(b, p), nil
}

// TextPlace decodes its arguments, places and returns the encoded result.
func TextPlace(board, player, point string) (string, error) {
	b, p, err := decodeBoardPlayer(board, player)
	if err != nil {
		return "", err
	}
	at, err := rules.ParsePoint(point)
	if err != nil {
		return "", err
	}
	next, err := Place(b, p, at)
	if err != nil {
		return "", err
	}
	return next.Encode(), nil
}

// TextAIMove decodes its arguments and returns the encoded board after the
// AI's move, or the same board when player passes.
func TextAIMove(board, player string, strength uint) (string, error) {
	b, p, err := decodeBoardPlayer(board, player)
	if err != nil {
		return "", err
	}
	return AIMove(b, p, strength).Encode(), nil
}

// TextRender decodes board and returns its display grid.
func TextRender(board string) ([][]string, error) {
	b, err := rules.DecodeBoard(board)
	if err != nil {
		return nil, err
	}
	return Render(b), nil
}

func decodeBoardPlayer(board, player string) (rules.Board, rules.Piece, error) {
	b, err := rules.DecodeBoard(board)
	if err != nil {
		return rules.Board{}, rules.Black, fmt.Errorf("board argument: %w", err)
	}
	p, err := rules.ParsePiece(player)
	if err != nil {
		return rules.Board{}, rules.Black, fmt.Errorf("player argument: %w", err)
	}
	return b, p, nil
}
