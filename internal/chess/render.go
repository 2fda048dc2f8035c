package chess

import "strings"

var pieceGlyphs = [2][6]rune{
	White: {Knight: '♘', Bishop: '♗', Rook: '♖', Queen: '♕', Pawn: '♙', King: '♔'},
	Black: {Knight: '♞', Bishop: '♝', Rook: '♜', Queen: '♛', Pawn: '♟', King: '♚'},
}

const emptyGlyph = '·'

// String returns the piece's unicode glyph.
func (p Piece) String() string {
	if !p.IsPiece() {
		return string(emptyGlyph)
	}
	return string(pieceGlyphs[p.Color()][p.Kind()])
}

// String renders the board as an 8x8 grid from White's perspective, with
// file letters above and below and rank numbers on both sides.
func (b *Board) String() string {
	const coords = "  a b c d e f g h"
	var sb strings.Builder
	sb.WriteString(coords)
	sb.WriteByte('\n')
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			if p, ok := b.PieceAt(SquareAt(rank, file)); ok {
				sb.WriteString(p.String())
			} else {
				sb.WriteRune(emptyGlyph)
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte('\n')
	}
	sb.WriteString(coords)
	return sb.String()
}
