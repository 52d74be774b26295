package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// PlayMove validates a move against the game's current position, applies
// it, and records it in the game history together with the position key
// of the resulting position. It returns the matched move, whose class and
// promotion piece are filled in.
func PlayMove(game *chess.Game, move chess.Move) (chess.Move, error) {
	matched, err := MatchMove(game.Board, move)
	if err != nil {
		return chess.Move{}, err
	}

	prior := game.Board.SaveState()
	next, captured := ApplyUnchecked(game.Board, matched)
	game.Board = next
	game.Push(chess.PlayedMove{
		Move:     matched,
		Captured: captured,
		Prior:    prior,
		Key:      hashing.PositionKey(next),
	})
	return matched, nil
}
