package chess

// MoveKind categorises the four structurally different move shapes.
type MoveKind uint8

const (
	NormalMove    MoveKind = 0
	PromotionMove MoveKind = 1
	EnPassantMove MoveKind = 2
	CastlingMove  MoveKind = 3
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	names := [...]string{"Normal", "Promotion", "EnPassant", "Castling"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move packs a complete move into sixteen bits. Everything beyond the packed
// fields, such as the castling rook squares or the en-passant victim, is
// derived rather than stored.
//
// Bit layout:
//
//	bits 0-5   source square
//	bits 6-11  target square
//	bits 12-13 promotion kind (Promotion moves only)
//	bits 14-15 move kind
type Move uint16

const (
	moveSourceMask Move = 0x003F
	moveTargetMask Move = 0x0FC0
	movePromoMask  Move = 0x3000
	moveKindMask   Move = 0xC000
)

// NewMove creates a normal move from source to target.
func NewMove(source, target Square) Move {
	return Move(source) | Move(target)<<6
}

// NewPromotion creates a promotion move. The promoted-to kind must be one of
// the four promotable kinds; Pawn and King do not fit the two-bit field.
func NewPromotion(source, target Square, kind PieceKind) Move {
	return NewMove(source, target) | Move(kind)<<12 | Move(PromotionMove)<<14
}

// NewEnPassant creates an en-passant capture from source to target, where
// target is the current en-passant square.
func NewEnPassant(source, target Square) Move {
	return NewMove(source, target) | Move(EnPassantMove)<<14
}

// NewCastling creates a castling move given the king's source and target.
func NewCastling(source, target Square) Move {
	return NewMove(source, target) | Move(CastlingMove)<<14
}

// Source returns the move's source square.
func (m Move) Source() Square {
	return Square(m & moveSourceMask)
}

// Target returns the move's target square.
func (m Move) Target() Square {
	return Square(m >> 6 & 0x3F)
}

// Kind returns the move's kind.
func (m Move) Kind() MoveKind {
	return MoveKind(m >> 14 & 0b11)
}

// Promotion returns the kind the pawn promotes to. The second result is
// false unless the move is a promotion.
func (m Move) Promotion() (PieceKind, bool) {
	if m.Kind() != PromotionMove {
		return 0, false
	}
	return PieceKind(m >> 12 & 0b11), true
}

// CastlingSide derives which way a castling move goes: kingside if the
// target file is greater than the source file.
func (m Move) CastlingSide() CastlingSide {
	if m.Target().File() > m.Source().File() {
		return Kingside
	}
	return Queenside
}

// CastlingRookSquares derives the rook's source and target squares for a
// castling move from the side and the move's rank.
func (m Move) CastlingRookSquares() (Square, Square) {
	side := m.CastlingSide()
	rank := m.Source().Rank()
	return SquareAt(rank, side.RookSourceFile()), SquareAt(rank, side.RookTargetFile())
}

// EnPassantCapture derives the square of the pawn captured en passant:
// the capturing pawn's rank combined with the target's file.
func (m Move) EnPassantCapture() Square {
	return SquareAt(m.Source().Rank(), m.Target().File())
}

// String returns the move as coordinate pairs, e.g. "e2e4", with a trailing
// lowercase letter for promotions ("e7e8q").
func (m Move) String() string {
	s := m.Source().String() + m.Target().String()
	if kind, ok := m.Promotion(); ok {
		letters := [...]byte{'n', 'b', 'r', 'q'}
		s += string(letters[kind])
	}
	return s
}
