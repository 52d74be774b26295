package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

func TestPlayMoveRecordsHistory(t *testing.T) {
	game := chess.NewGame()

	played, err := PlayMove(game, mustMove(t, "e2e4"))
	if err != nil {
		t.Fatalf("PlayMove(e2e4) error: %v", err)
	}
	if played.Class != chess.DoublePawnPush {
		t.Errorf("move class = %v, want double pawn push", played.Class)
	}
	if game.PlyCount() != 1 {
		t.Errorf("PlyCount() = %d, want 1", game.PlyCount())
	}

	wantFEN := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := BoardToFEN(game.Board); got != wantFEN {
		t.Errorf("FEN = %q, want %q", got, wantFEN)
	}
}

func TestPlayMoveUndoRestores(t *testing.T) {
	game := chess.NewGame()
	for _, text := range []string{"e2e4", "d7d5", "e4d5"} {
		if _, err := PlayMove(game, mustMove(t, text)); err != nil {
			t.Fatalf("PlayMove(%s) error: %v", text, err)
		}
	}

	if got := len(game.CapturedByWhite); got != 1 {
		t.Fatalf("len(CapturedByWhite) = %d, want 1", got)
	}

	move, ok := game.Undo()
	if !ok {
		t.Fatal("Undo() found no history")
	}
	if move.String() != "e4d5" {
		t.Errorf("Undo() = %s, want e4d5", move)
	}
	if got := len(game.CapturedByWhite); got != 0 {
		t.Errorf("len(CapturedByWhite) after undo = %d, want 0", got)
	}

	// The restored position still has the d6 en passant target armed.
	wantFEN := "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2"
	if got := BoardToFEN(game.Board); got != wantFEN {
		t.Errorf("FEN after undo = %q, want %q", got, wantFEN)
	}
}

func TestPlayMoveRejectsIllegal(t *testing.T) {
	game := chess.NewGame()
	before := BoardToFEN(game.Board)

	_, err := PlayMove(game, mustMove(t, "e2e5"))
	if !errors.Is(err, errors.ErrInvalidMove) {
		t.Fatalf("PlayMove(e2e5) error = %v, want %v", err, errors.ErrInvalidMove)
	}
	if game.PlyCount() != 0 {
		t.Errorf("PlyCount() = %d, want 0", game.PlyCount())
	}
	if got := BoardToFEN(game.Board); got != before {
		t.Errorf("board changed by rejected move:\ngot  %s\nwant %s", got, before)
	}
}

func TestPlayMoveCountsRepetitions(t *testing.T) {
	game := chess.NewGame()

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for round := 0; round < 3; round++ {
		for _, text := range shuffle {
			if _, err := PlayMove(game, mustMove(t, text)); err != nil {
				t.Fatalf("PlayMove(%s) error: %v", text, err)
			}
		}
	}

	if got := game.Repetitions(); got != 3 {
		t.Errorf("Repetitions() = %d, want 3", got)
	}
}
