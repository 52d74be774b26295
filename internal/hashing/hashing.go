// Package hashing provides Zobrist position keys for repetition tracking.
package hashing

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Random tables for the Zobrist key components. Filled once at startup
// from a fixed seed, so keys are stable within a build.
var (
	pieceKeys      [chess.NumPieceValues][2][64]chess.HashCode
	castlingKeys   [4]chess.HashCode
	enPassantKeys  [8]chess.HashCode
	blackToMoveKey chess.HashCode
)

// splitmix64 is the generator used to fill the tables. It is tiny, has
// full 64-bit state, and needs no external randomness.
type splitmix64 uint64

func (s *splitmix64) next() uint64 {
	*s += 0x9e3779b97f4a7c15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func init() {
	seed := splitmix64(0x6a09e667f3bcc908)
	for piece := range pieceKeys {
		for colour := range pieceKeys[piece] {
			for square := range pieceKeys[piece][colour] {
				pieceKeys[piece][colour][square] = chess.HashCode(seed.next())
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = chess.HashCode(seed.next())
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = chess.HashCode(seed.next())
	}
	blackToMoveKey = chess.HashCode(seed.next())
}

// PositionKey computes the Zobrist key of a position from the piece
// placement, the side to move, the castling rights and the en passant
// file. The move clocks are deliberately left out, so positions reached
// by transposition map to the same key.
func PositionKey(board *chess.Board) chess.HashCode {
	var key chess.HashCode

	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}
			key ^= pieceKeys[chess.ExtractPiece(piece)][chess.ExtractColour(piece)][squareIndex(col, rank)]
		}
	}

	if board.ToMove == chess.Black {
		key ^= blackToMoveKey
	}

	if board.WKingCastle != 0 {
		key ^= castlingKeys[0]
	}
	if board.WQueenCastle != 0 {
		key ^= castlingKeys[1]
	}
	if board.BKingCastle != 0 {
		key ^= castlingKeys[2]
	}
	if board.BQueenCastle != 0 {
		key ^= castlingKeys[3]
	}

	if board.EnPassant {
		key ^= enPassantKeys[int(board.EPCol-'a')]
	}

	return key
}

// squareIndex maps a square to 0..63 with a1 = 0 and h8 = 63.
func squareIndex(col chess.Col, rank chess.Rank) int {
	return int(rank-'1')*8 + int(col-'a')
}
