package hashing_test

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// Shuffling the knights out and back reaches a position that matches the
// initial one in everything the key covers, even though the move clocks
// differ.
func TestPositionKeyTransposition(t *testing.T) {
	board := engine.NewInitialBoard()
	for _, text := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		move, err := chess.ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", text, err)
		}
		board, _, err = engine.Apply(board, move)
		if err != nil {
			t.Fatalf("Apply(%s) error: %v", text, err)
		}
	}

	if board.HalfmoveClock == 0 {
		t.Fatal("halfmove clock did not advance, test is vacuous")
	}
	if got, want := hashing.PositionKey(board), hashing.PositionKey(engine.NewInitialBoard()); got != want {
		t.Errorf("transposed position key = %x, want %x", got, want)
	}
}
