package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	// Count pieces for each side
	for rank := chess.Rank(chess.FirstRank); rank <= chess.Rank(chess.LastRank); rank++ {
		for col := chess.Col(chess.FirstCol); col <= chess.Col(chess.LastCol); col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}

			colour := chess.ExtractColour(piece)
			pieceType := chess.ExtractPiece(piece)

			// Kings don't count for material
			if pieceType == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
				return false
			}

			if colour == chess.White {
				whitePieces = append(whitePieces, pieceType)
				if pieceType == chess.Bishop {
					whiteBishopOnLight = isLightSquare(col, rank)
				}
			} else {
				blackPieces = append(blackPieces, pieceType)
				if pieceType == chess.Bishop {
					blackBishopOnLight = isLightSquare(col, rank)
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			// Check if both bishops are on the same color squares
			if whiteBishopOnLight == blackBishopOnLight {
				return true
			}
		}
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(col chess.Col, rank chess.Rank) bool {
	colNum := int(col - chess.FirstCol)
	rankNum := int(rank - chess.FirstRank)
	return (colNum+rankNum)%2 == 1
}
