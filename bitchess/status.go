package bitchess

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func (b *Board) IsCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// IsStalemate reports whether the side to move has no legal moves while not
// in check.
func (b *Board) IsStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// IsDrawByFiftyMoves reports whether the 50-move rule draw is claimable
// (100 plies without a pawn move or capture).
func (b *Board) IsDrawByFiftyMoves() bool {
	return b.halfmoveClock >= 100
}

// IsInsufficientMaterial reports the dead-position material draws: bare
// kings, a lone minor piece against a bare king, and king+bishop each with
// both bishops on same-colored squares. Everything else, including the
// conventionally drawn K+N+N vs K, is not declared.
func (b *Board) IsInsufficientMaterial() bool {
	switch PopCount(b.occupied) {
	case 2:
		// King versus king.
		return true
	case 3:
		if PopCount(b.allPieces[White]) == 1 || PopCount(b.allPieces[Black]) == 1 {
			minors := b.pieces[White][Knight] | b.pieces[White][Bishop] |
				b.pieces[Black][Knight] | b.pieces[Black][Bishop]
			return PopCount(minors) == 1
		}
	case 4:
		if PopCount(b.pieces[White][Bishop]) == 1 &&
			PopCount(b.pieces[Black][Bishop]) == 1 &&
			PopCount(b.allPieces[White]) == 2 &&
			PopCount(b.allPieces[Black]) == 2 {
			wb := Lsb(b.pieces[White][Bishop])
			bbs := Lsb(b.pieces[Black][Bishop])
			return (wb.Rank()+wb.File())%2 == (bbs.Rank()+bbs.File())%2
		}
	}
	return false
}
