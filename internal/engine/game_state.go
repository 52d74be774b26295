package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Classify determines the game status of the position for the side to
// move. Automatic draws are ranked ahead of board geometry: the fifty-move
// rule is checked first, then insufficient material, then the legal move
// set decides between checkmate, stalemate, check and an ongoing game.
func Classify(board *chess.Board) chess.GameStatus {
	if board.HalfmoveClock >= 100 {
		return chess.DrawFiftyMove
	}
	if HasInsufficientMaterial(board) {
		return chess.DrawInsufficientMaterial
	}

	colour := board.ToMove
	inCheck := IsInCheck(board, colour)
	if !HasLegalMoves(board, colour) {
		if inCheck {
			return chess.Checkmate
		}
		return chess.Stalemate
	}
	if inCheck {
		return chess.Check
	}
	return chess.Ongoing
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
