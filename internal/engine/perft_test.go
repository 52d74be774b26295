package engine

import "testing"

func TestPerftInitialPosition(t *testing.T) {
	board := NewInitialBoard()
	want := []uint64{1, 20, 400, 8902, 197281}
	for depth, nodes := range want {
		if got := Perft(board, depth); got != nodes {
			t.Errorf("Perft(depth %d) = %d, want %d", depth, got, nodes)
		}
	}
}

// TestPerftPositions checks the standard perft suite. The counts cover
// castling, en passant, promotions and pins, so a pass pins down the whole
// generator, not just the common cases.
func TestPerftPositions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping perft suite in short mode")
	}

	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"kiwipete depth 1", kiwipeteFEN, 1, 48},
		{"kiwipete depth 2", kiwipeteFEN, 2, 2039},
		{"kiwipete depth 3", kiwipeteFEN, 3, 97862},
		{"position 3 depth 3", position3FEN, 3, 2812},
		{"position 3 depth 4", position3FEN, 4, 43238},
		{"position 4 depth 2", position4FEN, 2, 264},
		{"position 4 depth 3", position4FEN, 3, 9467},
		{"position 5 depth 2", position5FEN, 2, 1486},
		{"position 5 depth 3", position5FEN, 3, 62379},
		{"position 6 depth 2", position6FEN, 2, 2079},
		{"position 6 depth 3", position6FEN, 3, 89890},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, tt.fen)
			if got := Perft(board, tt.depth); got != tt.want {
				t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.want)
			}
		})
	}
}

func TestPerftDivideInitialPosition(t *testing.T) {
	board := NewInitialBoard()
	entries := PerftDivide(board, 2)
	if len(entries) != 20 {
		t.Fatalf("PerftDivide() returned %d entries, want 20", len(entries))
	}

	var total uint64
	for _, entry := range entries {
		// Every white opening leaves black the same twenty replies.
		if entry.Nodes != 20 {
			t.Errorf("PerftDivide() %s = %d nodes, want 20", entry.Move, entry.Nodes)
		}
		total += entry.Nodes
	}
	if total != 400 {
		t.Errorf("PerftDivide() total = %d, want 400", total)
	}
}
