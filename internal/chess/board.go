package chess

// Board holds the 64 squares as raw piece bytes. It is a plain value: an
// assignment copies the whole board, so simulating a move on a copy never
// disturbs the original.
type Board struct {
	squares [64]Piece
}

// Placement pairs an occupied square with the piece standing on it.
type Placement struct {
	Square Square
	Piece  Piece
}

// Equal reports whether both boards hold the same pieces on the same
// squares. It also lets go-cmp compare boards despite the unexported array.
func (b Board) Equal(other Board) bool {
	return b.squares == other.squares
}

// PieceAt returns the piece on the square. The second result is false if
// the square is empty.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p := b.squares[sq]
	return p, p.IsPiece()
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return !b.squares[sq].IsPiece()
}

// Place puts a piece on the square and returns any piece it replaced.
func (b *Board) Place(p Piece, sq Square) (Piece, bool) {
	prev := b.squares[sq]
	b.squares[sq] = p
	return prev, prev.IsPiece()
}

// Lift removes and returns the piece on the square, if any.
func (b *Board) Lift(sq Square) (Piece, bool) {
	prev := b.squares[sq]
	b.squares[sq] = 0
	return prev, prev.IsPiece()
}

// MovePiece lifts the piece on from, marks it moved and places it on to,
// returning any captured occupant. The second result is false if from was
// empty, in which case the board is unchanged.
func (b *Board) MovePiece(from, to Square) (Piece, bool) {
	p, ok := b.Lift(from)
	if !ok {
		return 0, false
	}
	return b.Place(p.WithMoved(), to)
}

// Pieces returns the occupied squares in index order with their pieces.
// The slice is freshly built on every call.
func (b *Board) Pieces() []Placement {
	placed := make([]Placement, 0, 32)
	for i := range b.squares {
		if p := b.squares[i]; p.IsPiece() {
			placed = append(placed, Placement{Square: Square(i), Piece: p})
		}
	}
	return placed
}
