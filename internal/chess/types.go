// Package chess provides the core value types of the rules engine: squares,
// pieces, moves and castling rights, all encoded as small fixed-width values
// that are cheap to copy and compare.
package chess

// Color represents the colour of a piece or player.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Other returns the opposite colour.
func (c Color) Other() Color {
	return c ^ 1
}

// HomeRank returns the back rank for the colour: 0 for White, 7 for Black.
func (c Color) HomeRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PawnRank returns the rank pawns of the colour start on.
func (c Color) PawnRank() int {
	if c == White {
		return 1
	}
	return 6
}

// PromotionRank returns the far rank pawns of the colour promote on.
func (c Color) PromotionRank() int {
	if c == White {
		return 7
	}
	return 0
}

// PieceKind represents a chess piece type. The four promotable kinds are
// exactly the values that fit in two bits, which the move encoding relies on.
type PieceKind uint8

const (
	Knight PieceKind = 0
	Bishop PieceKind = 1
	Rook   PieceKind = 2
	Queen  PieceKind = 3
	Pawn   PieceKind = 4
	King   PieceKind = 5
)

// Promotable lists the piece kinds a pawn may promote to.
var Promotable = [4]PieceKind{Knight, Bishop, Rook, Queen}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := [...]string{"Knight", "Bishop", "Rook", "Queen", "Pawn", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Lateral is a sideways offset relative to a colour's direction of advance.
type Lateral int

const (
	Left     Lateral = -1
	Straight Lateral = 0
	Right    Lateral = 1
)
