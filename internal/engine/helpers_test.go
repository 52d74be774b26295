package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// mustBoard parses a FEN the test knows is valid.
func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// mustMove parses coordinate notation the test knows is valid.
func mustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	move, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	return move
}

// moveStrings renders moves in coordinate notation.
func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// hasMove reports whether the list contains a move with the given
// coordinate notation.
func hasMove(moves []chess.Move, text string) bool {
	for _, m := range moves {
		if m.String() == text {
			return true
		}
	}
	return false
}
