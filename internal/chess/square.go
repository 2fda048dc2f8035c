package chess

// Square identifies one of the 64 board squares as a linear index.
// rank = value/8 and file = value%8, with rank 0 being White's back rank.
type Square uint8

// BoardSize is the number of ranks and files.
const BoardSize = 8

// SquareAt builds a square from rank and file coordinates.
// Both must be in [0,8); out-of-range coordinates are a caller bug.
func SquareAt(rank, file int) Square {
	return Square(rank<<3 | file)
}

// InBounds reports whether the coordinate pair lies on the board.
func InBounds(rank, file int) bool {
	return rank >= 0 && rank < BoardSize && file >= 0 && file < BoardSize
}

// Rank returns the square's rank in [0,8).
func (s Square) Rank() int {
	return int(s >> 3)
}

// File returns the square's file in [0,8).
func (s Square) File() int {
	return int(s & 7)
}

// Index returns the square's linear index in [0,64).
func (s Square) Index() int {
	return int(s)
}

// Offset returns the square displaced by the signed (rank, file) deltas.
// The second result is false if the destination falls off the board;
// offsets never wrap around an edge.
func (s Square) Offset(dr, df int) (Square, bool) {
	r, f := s.Rank()+dr, s.File()+df
	if !InBounds(r, f) {
		return 0, false
	}
	return SquareAt(r, f), true
}

// Forward returns the square the given number of steps ahead of s from the
// colour's point of view, shifted laterally relative to that advance.
// White advances toward rank 7, Black toward rank 0.
func (s Square) Forward(c Color, steps int, lat Lateral) (Square, bool) {
	if c == White {
		return s.Offset(steps, int(lat))
	}
	return s.Offset(-steps, -int(lat))
}

// String returns the square in algebraic form, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}
