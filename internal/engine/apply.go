package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Apply validates the candidate move against the current legal moves and,
// if it is one of them, applies it to a copy of the board. The input board
// is never modified. It returns the resulting board and the captured piece
// (Empty if none), or an error wrapping ErrInvalidMove if the move is not
// legal in this position.
func Apply(board *chess.Board, move chess.Move) (*chess.Board, chess.Piece, error) {
	matched, err := MatchMove(board, move)
	if err != nil {
		return nil, chess.Empty, err
	}
	next, captured := ApplyUnchecked(board, matched)
	return next, captured, nil
}

// MatchMove resolves a candidate move to the fully classified legal move
// with the same from-square, to-square and promotion piece. A candidate to
// the last rank with no promotion piece set is taken as a queen promotion.
// Only the coordinates and promotion piece of the candidate are trusted;
// the Class comes from the generator.
func MatchMove(board *chess.Board, move chess.Move) (chess.Move, error) {
	promoted := move.PromotedPiece
	if promoted == chess.Empty && pawnReachesLastRank(board, move) {
		promoted = chess.Queen
	}

	for _, legal := range LegalMoves(board) {
		if legal.FromCol == move.FromCol && legal.FromRank == move.FromRank &&
			legal.ToCol == move.ToCol && legal.ToRank == move.ToRank &&
			legal.PromotedPiece == promoted {
			return legal, nil
		}
	}
	return chess.Move{}, &errors.MoveError{
		Err:      errors.ErrInvalidMove,
		MoveText: move.String(),
		FEN:      BoardToFEN(board),
	}
}

// ApplyUnchecked applies an already classified move to a copy of the board
// without legality checks. The move must have come from the generator or
// from MatchMove. It returns the resulting board and the captured piece.
func ApplyUnchecked(board *chess.Board, move chess.Move) (*chess.Board, chess.Piece) {
	next := board.Copy()
	var captured chess.Piece
	switch move.Class {
	case chess.KingsideCastle:
		applyCastle(next, true)
	case chess.QueensideCastle:
		applyCastle(next, false)
	case chess.PawnMove, chess.DoublePawnPush, chess.EnPassantCapture, chess.PawnPromotion:
		captured = applyPawnMove(next, move)
	default:
		captured = applyPieceMove(next, move)
	}
	return next, captured
}

// applyPawnMove applies a pawn move in place and returns the captured
// piece. En passant removes the pawn behind the target square; a double
// push arms the en passant window for exactly one ply.
func applyPawnMove(board *chess.Board, move chess.Move) chess.Piece {
	colour := board.ToMove
	pawn := board.Get(move.FromCol, move.FromRank)
	captured := board.Get(move.ToCol, move.ToRank)

	if move.Class == chess.EnPassantCapture {
		// The captured pawn sits beside the moving pawn, not on the
		// target square.
		captured = board.Get(move.ToCol, move.FromRank)
		board.Set(move.ToCol, move.FromRank, chess.Empty)
	}

	// Move the pawn
	board.Set(move.FromCol, move.FromRank, chess.Empty)
	if move.Class == chess.PawnPromotion {
		promoted := move.PromotedPiece
		if promoted == chess.Empty {
			promoted = chess.Queen // Default to queen
		}
		board.Set(move.ToCol, move.ToRank, chess.MakeColouredPiece(colour, promoted))
	} else {
		board.Set(move.ToCol, move.ToRank, pawn)
	}

	// A rook captured on its home square takes its castling right with it.
	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(captured), move.ToCol, move.ToRank)
	}

	board.EnPassant = false
	if move.Class == chess.DoublePawnPush {
		board.EnPassant = true
		board.EPCol = move.ToCol
		if colour == chess.White {
			board.EPRank = '3'
		} else {
			board.EPRank = '6'
		}
	}

	board.HalfmoveClock = 0 // Pawn move resets clock
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return captured
}

// applyPieceMove applies a non-pawn, non-castling move in place and
// returns the captured piece.
func applyPieceMove(board *chess.Board, move chess.Move) chess.Piece {
	colour := board.ToMove
	piece := board.Get(move.FromCol, move.FromRank)
	captured := board.Get(move.ToCol, move.ToRank)

	// Move the piece
	board.Set(move.FromCol, move.FromRank, chess.Empty)
	board.Set(move.ToCol, move.ToRank, piece)

	switch chess.ExtractPiece(piece) {
	case chess.King:
		if colour == chess.White {
			board.WKingCol = move.ToCol
			board.WKingRank = move.ToRank
			board.WKingCastle = 0
			board.WQueenCastle = 0
		} else {
			board.BKingCol = move.ToCol
			board.BKingRank = move.ToRank
			board.BKingCastle = 0
			board.BQueenCastle = 0
		}
	case chess.Rook:
		updateCastlingRightsForRook(board, colour, move.FromCol, move.FromRank)
	}

	// Update castling rights if a rook was captured
	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(captured), move.ToCol, move.ToRank)
	}

	board.EnPassant = false

	// Update halfmove clock
	if captured != chess.Empty {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return captured
}

// pawnReachesLastRank reports whether the candidate moves a pawn of the
// side to move onto its promotion rank.
func pawnReachesLastRank(board *chess.Board, move chess.Move) bool {
	piece := board.Get(move.FromCol, move.FromRank)
	if piece == chess.Empty || piece == chess.Off {
		return false
	}
	if chess.ExtractPiece(piece) != chess.Pawn || chess.ExtractColour(piece) != board.ToMove {
		return false
	}
	if board.ToMove == chess.White {
		return move.ToRank == '8'
	}
	return move.ToRank == '1'
}
