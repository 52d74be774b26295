package chess

// PlayedMove records one applied move together with enough context to take
// it back: the move itself, the piece it captured (Empty if none), the
// board state before the move, and the position key after it.
type PlayedMove struct {
	Move     Move
	Captured Piece
	Prior    BoardState
	Key      HashCode
}

// Game tracks a playable game: the current board, the move history,
// captured pieces per side, and position repetition counts. The engine
// operations stay pure; callers push applied moves here to build up the
// game record.
type Game struct {
	// The current position.
	Board *Board

	// The applied moves, oldest first.
	History []PlayedMove

	// Coloured pieces each side has captured, in capture order.
	CapturedByWhite []Piece
	CapturedByBlack []Piece

	// Counts of the number of times each position has been reached,
	// keyed by position hash. Used for repetition reporting; the keys
	// are supplied by the caller on Push.
	PositionCounts map[HashCode]uint
}

// NewGame creates a game from the standard starting position.
func NewGame() *Game {
	board := NewBoard()
	board.SetupInitialPosition()
	return NewGameFromBoard(board)
}

// NewGameFromBoard creates a game starting from an arbitrary position.
func NewGameFromBoard(board *Board) *Game {
	return &Game{
		Board:          board,
		PositionCounts: make(map[HashCode]uint),
	}
}

// Push records an applied move. The caller has already updated g.Board;
// Push only maintains the history, the captured-piece lists, and the
// repetition counts.
func (g *Game) Push(pm PlayedMove) {
	g.History = append(g.History, pm)
	if pm.Captured != Empty {
		if ExtractColour(pm.Captured) == Black {
			g.CapturedByWhite = append(g.CapturedByWhite, pm.Captured)
		} else {
			g.CapturedByBlack = append(g.CapturedByBlack, pm.Captured)
		}
	}
	if pm.Key != 0 {
		g.PositionCounts[pm.Key]++
	}
}

// Undo takes back the most recent move, restoring the board and the
// capture and repetition records. It returns the undone move, or false if
// there is no history.
func (g *Game) Undo() (Move, bool) {
	if len(g.History) == 0 {
		return Move{}, false
	}
	pm := g.History[len(g.History)-1]
	g.History = g.History[:len(g.History)-1]
	g.Board.RestoreState(pm.Prior)

	if pm.Captured != Empty {
		if ExtractColour(pm.Captured) == Black {
			g.CapturedByWhite = g.CapturedByWhite[:len(g.CapturedByWhite)-1]
		} else {
			g.CapturedByBlack = g.CapturedByBlack[:len(g.CapturedByBlack)-1]
		}
	}
	if pm.Key != 0 {
		if g.PositionCounts[pm.Key] <= 1 {
			delete(g.PositionCounts, pm.Key)
		} else {
			g.PositionCounts[pm.Key]--
		}
	}
	return pm.Move, true
}

// LastMove returns the most recently played move, or false if none.
func (g *Game) LastMove() (Move, bool) {
	if len(g.History) == 0 {
		return Move{}, false
	}
	return g.History[len(g.History)-1].Move, true
}

// PlyCount returns the number of half-moves played.
func (g *Game) PlyCount() int {
	return len(g.History)
}

// Repetitions returns the highest occurrence count of any position reached
// so far. A return of 3 or more means a threefold repetition has happened.
func (g *Game) Repetitions() uint {
	var most uint
	for _, n := range g.PositionCounts {
		if n > most {
			most = n
		}
	}
	return most
}
