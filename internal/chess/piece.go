package chess

// Piece packs a piece's kind, colour and has-moved flag into one byte.
// The zero value is reserved for "no piece": every real piece carries the
// occupied bit, so a board of raw bytes distinguishes empty squares for free.
//
// Bit layout:
//
//	bit 7    occupied
//	bit 6    has moved
//	bit 3    colour (0 = White, 1 = Black)
//	bits 0-2 piece kind
type Piece uint8

const (
	pieceOccupiedBit Piece = 0b1000_0000
	pieceMovedBit    Piece = 0b0100_0000
	pieceColorBit    Piece = 0b0000_1000
	pieceKindMask    Piece = 0b0000_0111
)

// NewPiece creates a piece of the given kind and colour with the
// has-moved flag clear.
func NewPiece(kind PieceKind, color Color) Piece {
	return pieceOccupiedBit | Piece(color)<<3 | Piece(kind)
}

// Kind returns the piece's kind.
func (p Piece) Kind() PieceKind {
	return PieceKind(p & pieceKindMask)
}

// Color returns the piece's colour.
func (p Piece) Color() Color {
	return Color(p&pieceColorBit) >> 3
}

// HasMoved reports whether the piece has moved since the game started.
func (p Piece) HasMoved() bool {
	return p&pieceMovedBit != 0
}

// WithMoved returns a copy of the piece with the has-moved flag set.
// The receiver is unchanged.
func (p Piece) WithMoved() Piece {
	return p | pieceMovedBit
}

// IsPiece reports whether the value holds an actual piece rather than the
// empty-square sentinel.
func (p Piece) IsPiece() bool {
	return p&pieceOccupiedBit != 0
}
