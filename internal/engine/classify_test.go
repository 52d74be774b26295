package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want chess.GameStatus
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			want: chess.Ongoing,
		},
		{
			name: "middlegame",
			fen:  kiwipeteFEN,
			want: chess.Ongoing,
		},
		{
			name: "bishop check",
			fen:  "rnbqkbnr/ppp1pppp/8/1B1p4/4P3/8/PPPP1PPP/RNBQK1NR b KQkq - 1 2",
			want: chess.Check,
		},
		{
			name: "fools mate",
			fen:  "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			want: chess.Checkmate,
		},
		{
			name: "scholars mate",
			fen:  "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4",
			want: chess.Checkmate,
		},
		{
			name: "queen stalemate",
			fen:  "k7/8/1Q6/8/8/8/8/7K b - - 0 1",
			want: chess.Stalemate,
		},
		{
			name: "fifty move rule",
			fen:  "4k3/8/8/8/8/8/4P3/4K3 w - - 100 80",
			want: chess.DrawFiftyMove,
		},
		{
			name: "clock one short of fifty moves",
			fen:  "4k3/8/8/8/8/8/4P3/4K3 w - - 99 80",
			want: chess.Ongoing,
		},
		{
			name: "bare kings",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			want: chess.DrawInsufficientMaterial,
		},
		{
			name: "king and bishop versus king",
			fen:  "4k3/8/8/8/8/8/8/4KB2 w - - 0 1",
			want: chess.DrawInsufficientMaterial,
		},
		{
			name: "fifty move rule outranks stalemate",
			fen:  "k7/8/1Q6/8/8/8/8/7K b - - 100 90",
			want: chess.DrawFiftyMove,
		},
		{
			name: "fifty move rule outranks insufficient material",
			fen:  "4k3/8/8/8/8/8/8/4KB2 w - - 100 70",
			want: chess.DrawFiftyMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := Classify(board); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCheckmate(t *testing.T) {
	board := mustBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !IsCheckmate(board) {
		t.Errorf("IsCheckmate() = false, want true")
	}
	if IsCheckmate(NewInitialBoard()) {
		t.Errorf("IsCheckmate(initial) = true, want false")
	}
}

func TestIsStalemate(t *testing.T) {
	board := mustBoard(t, "k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if !IsStalemate(board) {
		t.Errorf("IsStalemate() = false, want true")
	}
	if IsStalemate(NewInitialBoard()) {
		t.Errorf("IsStalemate(initial) = true, want false")
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", InitialFEN, chess.White, false},
		{"initial black", InitialFEN, chess.Black, false},
		{"bishop checks black", "rnbqkbnr/ppp1pppp/8/1B1p4/4P3/8/PPPP1PPP/RNBQK1NR b KQkq - 1 2", chess.Black, true},
		{"rook checks white", "4k3/8/8/8/8/4r3/8/R3K2R w KQ - 0 1", chess.White, true},
		{"knight checks white", "4k3/8/8/8/8/3n4/8/4K3 w - - 0 1", chess.White, true},
		{"pawn checks white", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"blocked slider is no check", "4k3/8/8/b7/8/2P5/8/4K3 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := IsInCheck(board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}
