package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The well known counts for standard positions make this the reference
// check for the move generator.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		next, _ := ApplyUnchecked(board, move)
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// PerftEntry pairs a root move with its subtree node count.
type PerftEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide returns the node count below each root move, in generation
// order. Comparing the per-move counts against another generator narrows
// a disagreement down to one root move.
func PerftDivide(board *chess.Board, depth int) []PerftEntry {
	moves := LegalMoves(board)
	entries := make([]PerftEntry, 0, len(moves))
	for _, move := range moves {
		next, _ := ApplyUnchecked(board, move)
		entries = append(entries, PerftEntry{Move: move, Nodes: Perft(next, depth-1)})
	}
	return entries
}
