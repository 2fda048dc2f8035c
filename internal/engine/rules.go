package engine

// HasLegalMoves reports whether the side to move has at least one legal
// move, stopping at the first candidate that survives the legality filter.
func HasLegalMoves(p *Position) bool {
	for _, m := range pseudoLegalMoves(p) {
		if isLegal(p, m) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is in check with no legal
// move to escape it.
func IsCheckmate(p *Position) bool {
	return IsInCheck(p) && !HasLegalMoves(p)
}

// IsStalemate reports whether the side to move has no legal move while not
// being in check.
func IsStalemate(p *Position) bool {
	return !IsInCheck(p) && !HasLegalMoves(p)
}
