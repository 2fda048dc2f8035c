package chess

// CastlingSide distinguishes the two castling directions.
type CastlingSide uint8

const (
	Kingside  CastlingSide = 0
	Queenside CastlingSide = 1
)

// KingFile is the file kings start on.
const KingFile = 4

var (
	kingTargetFiles = [2]int{6, 2}
	rookSourceFiles = [2]int{7, 0}
	rookTargetFiles = [2]int{5, 3}

	// Squares strictly between king and rook; must be empty to castle.
	corridorFiles = [2][]int{{5, 6}, {1, 2, 3}}

	// Files the king crosses or lands on, excluding its source.
	kingPathFiles = [2][]int{{5, 6}, {3, 2}}
)

// String returns the string representation of a castling side.
func (s CastlingSide) String() string {
	if s == Kingside {
		return "Kingside"
	}
	return "Queenside"
}

// KingTargetFile returns the file the king lands on when castling this side.
func (s CastlingSide) KingTargetFile() int { return kingTargetFiles[s] }

// RookSourceFile returns the file the castling rook starts on.
func (s CastlingSide) RookSourceFile() int { return rookSourceFiles[s] }

// RookTargetFile returns the file the castling rook lands on.
func (s CastlingSide) RookTargetFile() int { return rookTargetFiles[s] }

// CorridorFiles returns the files strictly between king and rook.
func (s CastlingSide) CorridorFiles() []int { return corridorFiles[s] }

// KingPathFiles returns the files the king traverses, excluding its source.
func (s CastlingSide) KingPathFiles() []int { return kingPathFiles[s] }

// CastlingRights is a four-bit set over (colour, side). Rights are only ever
// lost once the game is under way; gains exist for position construction.
type CastlingRights uint8

func rightBit(c Color, s CastlingSide) CastlingRights {
	return 1 << (uint8(c)*2 + uint8(s))
}

// NoCastlingRights is the empty rights set.
const NoCastlingRights CastlingRights = 0

// AllCastlingRights holds every right for both colours.
const AllCastlingRights CastlingRights = 0b1111

// Has reports whether the colour still holds the right for the given side.
func (r CastlingRights) Has(c Color, s CastlingSide) bool {
	return r&rightBit(c, s) != 0
}

// Any reports whether the colour holds at least one castling right.
func (r CastlingRights) Any(c Color) bool {
	return r.Has(c, Kingside) || r.Has(c, Queenside)
}

// IsEmpty reports whether no rights remain for either colour.
func (r CastlingRights) IsEmpty() bool {
	return r == 0
}

// Gain returns the rights with the given right added.
func (r CastlingRights) Gain(c Color, s CastlingSide) CastlingRights {
	return r | rightBit(c, s)
}

// Lose returns the rights with the given right removed.
func (r CastlingRights) Lose(c Color, s CastlingSide) CastlingRights {
	return r &^ rightBit(c, s)
}

// LoseAll returns the rights with both of the colour's rights removed.
func (r CastlingRights) LoseAll(c Color) CastlingRights {
	return r.Lose(c, Kingside).Lose(c, Queenside)
}

// LoseForRookAt removes the right whose rook starts on the given square, if
// any. The check is purely positional: a square on the colour's home rank and
// a rook-origin file clears that side's right regardless of what piece, if
// any, is actually there.
func (r CastlingRights) LoseForRookAt(sq Square, c Color) CastlingRights {
	if sq.Rank() != c.HomeRank() {
		return r
	}
	switch sq.File() {
	case Kingside.RookSourceFile():
		return r.Lose(c, Kingside)
	case Queenside.RookSourceFile():
		return r.Lose(c, Queenside)
	}
	return r
}
