package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Fixed offset tables shared by move generation and attack detection.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// promotionPieces lists the promotion choices in generation order. Queen
// comes first so that it is both the default and the piece preferred by
// first-seen tie-breaks.
var promotionPieces = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// LegalMoves returns every legal move for the side to move. The enumeration
// is deterministic for a given position: squares are scanned column 'a' to
// 'h', rank '1' to '8', and each piece emits its moves in a fixed pattern
// order, so repeated calls always return the same list.
func LegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	var moves []chess.Move
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}
			if chess.ExtractColour(piece) != colour {
				continue
			}
			moves = appendPieceMoves(moves, board, col, rank, chess.ExtractPiece(piece), colour)
		}
	}
	return moves
}

// LegalMovesFrom returns the legal moves that start on the given square.
// An empty result is not an error; asking about a square off the board is.
func LegalMovesFrom(board *chess.Board, col chess.Col, rank chess.Rank) ([]chess.Move, error) {
	if !chess.ValidSquare(col, rank) {
		return nil, errors.Wrapf(errors.ErrOutOfRange, "square %c%c", col, rank)
	}
	piece := board.Get(col, rank)
	if piece == chess.Empty || chess.ExtractColour(piece) != board.ToMove {
		return nil, nil
	}
	return appendPieceMoves(nil, board, col, rank, chess.ExtractPiece(piece), board.ToMove), nil
}

// HasLegalMoves returns true if the given colour has at least one legal
// move. It walks the same generator as LegalMoves so the two can never
// disagree, stopping at the first piece that has a move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	b := board
	if board.ToMove != colour {
		b = board.Copy()
		b.ToMove = colour
	}
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := b.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}
			if chess.ExtractColour(piece) != colour {
				continue
			}
			if len(appendPieceMoves(nil, b, col, rank, chess.ExtractPiece(piece), colour)) > 0 {
				return true
			}
		}
	}
	return false
}

// appendPieceMoves appends the legal moves of the piece on (col, rank).
func appendPieceMoves(moves []chess.Move, board *chess.Board, col chess.Col, rank chess.Rank, pieceType chess.Piece, colour chess.Colour) []chess.Move {
	switch pieceType {
	case chess.Pawn:
		return appendPawnMoves(moves, board, col, rank, colour)
	case chess.Knight:
		return appendStepMoves(moves, board, col, rank, colour, knightOffsets)
	case chess.Bishop:
		return appendSlidingMoves(moves, board, col, rank, colour, true, false)
	case chess.Rook:
		return appendSlidingMoves(moves, board, col, rank, colour, false, true)
	case chess.Queen:
		return appendSlidingMoves(moves, board, col, rank, colour, true, true)
	case chess.King:
		moves = appendStepMoves(moves, board, col, rank, colour, kingOffsets)
		return appendCastlingMoves(moves, board, colour)
	}
	return moves
}

// appendPawnMoves appends forward pushes, double pushes, captures, en
// passant captures and promotions for the pawn on (col, rank).
func appendPawnMoves(moves []chess.Move, board *chess.Board, col chess.Col, rank chess.Rank, colour chess.Colour) []chess.Move {
	dir := chess.ColourOffset(colour)

	promoRank := chess.Rank('8')
	startRank := chess.Rank('2')
	epRank := chess.Rank('6')
	if colour == chess.Black {
		promoRank = '1'
		startRank = '7'
		epRank = '3'
	}

	// Forward pushes.
	toRank := chess.Rank(int(rank) + dir)
	if board.Get(col, toRank) == chess.Empty {
		moves = appendPawnAdvance(moves, board, col, rank, col, toRank, promoRank)

		if rank == startRank {
			toRank2 := chess.Rank(int(rank) + 2*dir)
			if board.Get(col, toRank2) == chess.Empty {
				move := chess.Move{FromCol: col, FromRank: rank, ToCol: col, ToRank: toRank2, Class: chess.DoublePawnPush}
				if isLegalMove(board, move) {
					moves = append(moves, move)
				}
			}
		}
	}

	// Diagonal captures, including en passant.
	for dc := -1; dc <= 1; dc += 2 {
		toCol := chess.Col(int(col) + dc)
		if !chess.ValidSquare(toCol, toRank) {
			continue
		}
		target := board.Get(toCol, toRank)
		if target != chess.Empty && chess.ExtractColour(target) != colour {
			moves = appendPawnAdvance(moves, board, col, rank, toCol, toRank, promoRank)
		}
		if board.EnPassant && toCol == board.EPCol && toRank == board.EPRank && toRank == epRank {
			move := chess.Move{FromCol: col, FromRank: rank, ToCol: toCol, ToRank: toRank, Class: chess.EnPassantCapture}
			if isLegalMove(board, move) {
				moves = append(moves, move)
			}
		}
	}

	return moves
}

// appendPawnAdvance appends a single pawn push or capture, expanding into
// the four promotion choices on the last rank. King safety is checked once:
// the promotion piece cannot change whether the mover's king is attacked.
func appendPawnAdvance(moves []chess.Move, board *chess.Board, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank, promoRank chess.Rank) []chess.Move {
	if toRank == promoRank {
		probe := chess.Move{FromCol: fromCol, FromRank: fromRank, ToCol: toCol, ToRank: toRank, Class: chess.PawnPromotion, PromotedPiece: chess.Queen}
		if !isLegalMove(board, probe) {
			return moves
		}
		for _, promoted := range promotionPieces {
			moves = append(moves, chess.Move{FromCol: fromCol, FromRank: fromRank, ToCol: toCol, ToRank: toRank, Class: chess.PawnPromotion, PromotedPiece: promoted})
		}
		return moves
	}

	move := chess.Move{FromCol: fromCol, FromRank: fromRank, ToCol: toCol, ToRank: toRank, Class: chess.PawnMove}
	if isLegalMove(board, move) {
		moves = append(moves, move)
	}
	return moves
}

// appendStepMoves appends moves for pieces with fixed offsets (knight, king).
func appendStepMoves(moves []chess.Move, board *chess.Board, col chess.Col, rank chess.Rank, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, offset := range offsets {
		toCol := chess.Col(int(col) + offset[0])
		toRank := chess.Rank(int(rank) + offset[1])
		if !chess.ValidSquare(toCol, toRank) {
			continue
		}
		target := board.Get(toCol, toRank)
		if target != chess.Empty && chess.ExtractColour(target) == colour {
			continue
		}
		move := chess.Move{FromCol: col, FromRank: rank, ToCol: toCol, ToRank: toRank, Class: chess.PieceMove}
		if isLegalMove(board, move) {
			moves = append(moves, move)
		}
	}
	return moves
}

// appendSlidingMoves appends moves for sliding pieces (bishop, rook, queen):
// walk each ray until blocked, stopping before an own piece and including
// the capture of an enemy piece.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, col chess.Col, rank chess.Rank, colour chess.Colour, diagonal, straight bool) []chess.Move {
	var dirs [][2]int
	if diagonal {
		dirs = append(dirs, diagonalDirs...)
	}
	if straight {
		dirs = append(dirs, straightDirs...)
	}

	for _, dir := range dirs {
		toCol := chess.Col(int(col) + dir[0])
		toRank := chess.Rank(int(rank) + dir[1])
		for chess.ValidSquare(toCol, toRank) {
			target := board.Get(toCol, toRank)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					move := chess.Move{FromCol: col, FromRank: rank, ToCol: toCol, ToRank: toRank, Class: chess.PieceMove}
					if isLegalMove(board, move) {
						moves = append(moves, move)
					}
				}
				break // Blocked
			}
			move := chess.Move{FromCol: col, FromRank: rank, ToCol: toCol, ToRank: toRank, Class: chess.PieceMove}
			if isLegalMove(board, move) {
				moves = append(moves, move)
			}
			toCol = chess.Col(int(toCol) + dir[0])
			toRank = chess.Rank(int(toRank) + dir[1])
		}
	}
	return moves
}

// isLegalMove simulates a pseudo-legal move on a copy of the board and
// reports whether the mover's own king is safe afterwards. Running the full
// apply mechanics here means en passant removals and promotions are in
// effect when the king safety is judged.
func isLegalMove(board *chess.Board, move chess.Move) bool {
	colour := board.ToMove
	next, _ := ApplyUnchecked(board, move)
	return !IsInCheck(next, colour)
}
