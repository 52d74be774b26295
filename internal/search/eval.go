package search

import "github.com/lgbarn/chess-engine-go/internal/chess"

// pieceValues holds the material value of each piece type in centipawns.
// The king has no material value; losing it is what the mate scores cover.
var pieceValues = [chess.NumPieceValues]int{
	chess.Pawn:   100,
	chess.Knight: 300,
	chess.Bishop: 300,
	chess.Rook:   500,
	chess.Queen:  900,
}

// Evaluate scores the position in centipawns from White's point of view:
// positive favours White, negative favours Black.
func Evaluate(board *chess.Board) int {
	score := 0
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}
			value := pieceValues[chess.ExtractPiece(piece)]
			if chess.ExtractColour(piece) == chess.White {
				score += value
			} else {
				score -= value
			}
		}
	}
	return score
}
