package testutil

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

func TestMustBoard(t *testing.T) {
	board := MustBoard(t, engine.InitialFEN)

	if got := engine.BoardToFEN(board); got != engine.InitialFEN {
		t.Errorf("MustBoard() round-trip = %q, want %q", got, engine.InitialFEN)
	}
}

func TestMustMove(t *testing.T) {
	move := MustMove(t, "e2e4")

	if move.FromCol != 'e' || move.FromRank != '2' || move.ToCol != 'e' || move.ToRank != '4' {
		t.Errorf("MustMove(e2e4) = %s", move)
	}

	promo := MustMove(t, "a7a8q")
	if promo.PromotedPiece != chess.Queen {
		t.Errorf("MustMove(a7a8q) promoted piece = %v, want queen", promo.PromotedPiece)
	}
}

func TestMoveStrings(t *testing.T) {
	moves := []chess.Move{
		MustMove(t, "e2e4"),
		MustMove(t, "g8f6"),
		MustMove(t, "a7a8n"),
	}

	got := MoveStrings(moves)
	want := []string{"e2e4", "g8f6", "a7a8n"}

	AssertEqual(t, got, want)
}
