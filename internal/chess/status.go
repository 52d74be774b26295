package chess

import (
	"encoding/json"
	"fmt"
)

// GameStatus classifies a position from the point of view of the side to
// move. Checkmate, Stalemate and the draw statuses are terminal.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawInsufficientMaterial
)

// String returns the string representation of a game status.
func (s GameStatus) String() string {
	names := []string{
		"Ongoing",
		"Check",
		"Checkmate",
		"Stalemate",
		"DrawFiftyMove",
		"DrawInsufficientMaterial",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsTerminal returns true if the game is over in this status.
func (s GameStatus) IsTerminal() bool {
	switch s {
	case Checkmate, Stalemate, DrawFiftyMove, DrawInsufficientMaterial:
		return true
	default:
		return false
	}
}

// MarshalJSON encodes the status as its string name.
func (s GameStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status from its string name.
func (s *GameStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for status := Ongoing; status <= DrawInsufficientMaterial; status++ {
		if status.String() == name {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown game status %q", name)
}
