package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// appendCastlingMoves appends the castling moves available to the given
// colour. Castling requires the retained right for that side, the king on
// its home square, the rook on the rights column, empty squares between
// them, and a king path that is neither attacked nor departs from check.
func appendCastlingMoves(moves []chess.Move, board *chess.Board, colour chess.Colour) []chess.Move {
	var rank chess.Rank
	var kingRights, queenRights chess.Col
	if colour == chess.White {
		rank = '1'
		kingRights = board.WKingCastle
		queenRights = board.WQueenCastle
	} else {
		rank = '8'
		kingRights = board.BKingCastle
		queenRights = board.BQueenCastle
	}
	if kingRights == 0 && queenRights == 0 {
		return moves
	}

	king := chess.MakeColouredPiece(colour, chess.King)
	if board.Get('e', rank) != king {
		return moves
	}
	enemy := colour.Opposite()
	if isSquareAttacked(board, 'e', rank, enemy) {
		return moves
	}
	rook := chess.MakeColouredPiece(colour, chess.Rook)

	if kingRights != 0 && board.Get(kingRights, rank) == rook &&
		board.Get('f', rank) == chess.Empty && board.Get('g', rank) == chess.Empty &&
		!isSquareAttacked(board, 'f', rank, enemy) && !isSquareAttacked(board, 'g', rank, enemy) {
		moves = append(moves, chess.Move{FromCol: 'e', FromRank: rank, ToCol: 'g', ToRank: rank, Class: chess.KingsideCastle})
	}

	// The b-file square must be empty but may be attacked.
	if queenRights != 0 && board.Get(queenRights, rank) == rook &&
		board.Get('d', rank) == chess.Empty && board.Get('c', rank) == chess.Empty && board.Get('b', rank) == chess.Empty &&
		!isSquareAttacked(board, 'd', rank, enemy) && !isSquareAttacked(board, 'c', rank, enemy) {
		moves = append(moves, chess.Move{FromCol: 'e', FromRank: rank, ToCol: 'c', ToRank: rank, Class: chess.QueensideCastle})
	}

	return moves
}

// applyCastle applies a castling move.
func applyCastle(board *chess.Board, kingside bool) {
	colour := board.ToMove
	var rank chess.Rank
	var kingFromCol, kingToCol, rookFromCol, rookToCol chess.Col

	if colour == chess.White {
		rank = '1'
		kingFromCol = board.WKingCol
		if kingside {
			kingToCol = 'g'
			rookFromCol = board.WKingCastle
			rookToCol = 'f'
		} else {
			kingToCol = 'c'
			rookFromCol = board.WQueenCastle
			rookToCol = 'd'
		}
	} else {
		rank = '8'
		kingFromCol = board.BKingCol
		if kingside {
			kingToCol = 'g'
			rookFromCol = board.BKingCastle
			rookToCol = 'f'
		} else {
			kingToCol = 'c'
			rookFromCol = board.BQueenCastle
			rookToCol = 'd'
		}
	}

	// Move king
	king := board.Get(kingFromCol, rank)
	board.Set(kingFromCol, rank, chess.Empty)
	board.Set(kingToCol, rank, king)

	// Move rook
	rook := board.Get(rookFromCol, rank)
	board.Set(rookFromCol, rank, chess.Empty)
	board.Set(rookToCol, rank, rook)

	// Update king position
	if colour == chess.White {
		board.WKingCol = kingToCol
		board.WKingCastle = 0
		board.WQueenCastle = 0
	} else {
		board.BKingCol = kingToCol
		board.BKingCastle = 0
		board.BQueenCastle = 0
	}

	board.EnPassant = false
	board.HalfmoveClock++
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}

// updateCastlingRightsForRook removes castling rights when a rook moves or is captured.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, col chess.Col, rank chess.Rank) {
	if colour == chess.White && rank == '1' {
		if col == board.WKingCastle {
			board.WKingCastle = 0
		}
		if col == board.WQueenCastle {
			board.WQueenCastle = 0
		}
	} else if colour == chess.Black && rank == '8' {
		if col == board.BKingCastle {
			board.BKingCastle = 0
		}
		if col == board.BQueenCastle {
			board.BQueenCastle = 0
		}
	}
}
