package chess

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Move represents a single chess move as a plain value. A move is identified
// by its source and destination squares plus the promotion piece; Class is
// derived by the move generator and tells apply which mechanics to run.
type Move struct {
	// Source square.
	FromCol  Col
	FromRank Rank

	// Destination square. Castling is encoded as the king's two-square
	// move (e1g1, e1c1 and the Black equivalents).
	ToCol  Col
	ToRank Rank

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The piece promoted to (Empty if not a promotion).
	PromotedPiece Piece
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnPromotion
}

// String returns the move in long algebraic notation: source square,
// destination square, and a lowercase promotion letter if any ("e2e4",
// "e7e8q"). Castling reads as the king move ("e1g1").
func (m Move) String() string {
	s := fmt.Sprintf("%c%c%c%c", m.FromCol, m.FromRank, m.ToCol, m.ToRank)
	if m.PromotedPiece != Empty {
		s += string(unicode.ToLower(rune(m.PromotedPiece.Letter())))
	}
	return s
}

// ParseMove parses a move in long algebraic notation ("e2e4", "e7e8q").
// The returned move carries only the square and promotion fields; matching
// it against the legal-move set fills in the rest.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, errors.Wrapf(errors.ErrInvalidMove, "cannot parse %q", text)
	}

	move := Move{
		FromCol:  Col(text[0]),
		FromRank: Rank(text[1]),
		ToCol:    Col(text[2]),
		ToRank:   Rank(text[3]),
	}
	if !ValidSquare(move.FromCol, move.FromRank) || !ValidSquare(move.ToCol, move.ToRank) {
		return Move{}, errors.Wrapf(errors.ErrInvalidMove, "cannot parse %q", text)
	}

	if len(text) == 5 {
		switch unicode.ToLower(rune(text[4])) {
		case 'q':
			move.PromotedPiece = Queen
		case 'r':
			move.PromotedPiece = Rook
		case 'b':
			move.PromotedPiece = Bishop
		case 'n':
			move.PromotedPiece = Knight
		default:
			return Move{}, errors.Wrapf(errors.ErrInvalidMove, "unknown promotion piece in %q", text)
		}
	}

	return move, nil
}
