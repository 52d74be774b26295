package testutil

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// MustBoard builds a board from a FEN string.
// It calls t.Fatal if the FEN does not parse.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to build board from FEN %q: %v", fen, err)
	}
	return board
}

// MustMove parses a move in coordinate notation such as "e2e4" or "a7a8q".
// It calls t.Fatal if the text does not parse.
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	move, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("failed to parse move %q: %v", text, err)
	}
	return move
}

// MoveStrings renders moves in coordinate notation for comparison in tests.
func MoveStrings(moves []chess.Move) []string {
	strs := make([]string, len(moves))
	for i, move := range moves {
		strs[i] = move.String()
	}
	return strs
}
