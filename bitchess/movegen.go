package bitchess

// ==========================
// Attack queries
// ==========================

// IsSquareAttacked reports whether the given square is attacked by the
// given color.
//
// The pawn lookup deliberately indexes the table with the *defending*
// color: pawnAttacks[c][sq] is the set of squares a color-c pawn on sq
// attacks, and by reciprocity those are exactly the squares from which
// pawns of the opposite color could capture into sq.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	if pawnAttacks[by.Opponent()][sq]&b.pieces[by][Pawn] != 0 {
		return true
	}
	if knightAttacks[sq]&b.pieces[by][Knight] != 0 {
		return true
	}
	if kingAttacks[sq]&b.pieces[by][King] != 0 {
		return true
	}
	if bishopAttacks(sq, b.occupied)&(b.pieces[by][Bishop]|b.pieces[by][Queen]) != 0 {
		return true
	}
	if rookAttacks(sq, b.occupied)&(b.pieces[by][Rook]|b.pieces[by][Queen]) != 0 {
		return true
	}
	return false
}

// InCheck reports whether the specified color's king is currently attacked.
func (b *Board) InCheck(c Color) bool {
	ks := b.KingSquare(c)
	return ks != NoSquare && b.IsSquareAttacked(ks, c.Opponent())
}

// AttackedSquares returns the union of all squares attacked by the given
// color with the current occupancy.
func (b *Board) AttackedSquares(by Color) uint64 {
	var attacks uint64
	for pt := Pawn; pt <= King; pt++ {
		pieces := b.pieces[by][pt]
		for pieces != 0 {
			attacks |= AttacksOf(pt, PopLsb(&pieces), by, b.occupied)
		}
	}
	return attacks
}

// ==========================
// Move generation
// ==========================

// PseudoLegalMoves returns every move obeying the piece movement rules for
// the side to move, without testing whether the mover's king is left in
// check. Castling is gated on the right being present, the path being
// empty, and neither the king's square nor the transit square being
// attacked; the destination square is left to the legality filter.
func (b *Board) PseudoLegalMoves() []Move {
	return b.PseudoLegalMovesInto(make([]Move, 0, 64))
}

// PseudoLegalMovesInto appends the pseudo-legal moves into dst and returns
// it. dst is truncated first so buffers can be reused across calls.
func (b *Board) PseudoLegalMovesInto(dst []Move) []Move {
	moves := dst[:0]
	us := b.sideToMove
	them := us.Opponent()
	ourPieces := b.allPieces[us]
	theirPieces := b.allPieces[them]
	occ := b.occupied

	// Pawns. Forward is +8 for White, -8 for Black; promotions fan out
	// into the four piece choices.
	pushDir := 8
	startRank, promoRank := 1, 7
	if us == Black {
		pushDir = -8
		startRank, promoRank = 6, 0
	}
	appendPawnMove := func(from, to Square) {
		if to.Rank() == promoRank {
			moves = append(moves,
				Move{From: from, To: to, Promotion: Queen},
				Move{From: from, To: to, Promotion: Rook},
				Move{From: from, To: to, Promotion: Bishop},
				Move{From: from, To: to, Promotion: Knight},
			)
		} else {
			moves = append(moves, Move{From: from, To: to, Promotion: NoPieceType})
		}
	}
	pawns := b.pieces[us][Pawn]
	for pawns != 0 {
		from := PopLsb(&pawns)

		one := from + Square(pushDir)
		if one >= A1 && one <= H8 && occ&bb(one) == 0 {
			appendPawnMove(from, one)
			if from.Rank() == startRank {
				two := one + Square(pushDir)
				if occ&bb(two) == 0 {
					moves = append(moves, Move{From: from, To: two, Promotion: NoPieceType})
				}
			}
		}

		caps := pawnAttacks[us][from] & theirPieces
		for caps != 0 {
			appendPawnMove(from, PopLsb(&caps))
		}

		// En passant targets rank 3 or 6 only, so no promotion case here.
		if b.enPassantSquare != NoSquare && pawnAttacks[us][from]&bb(b.enPassantSquare) != 0 {
			moves = append(moves, Move{From: from, To: b.enPassantSquare, Promotion: NoPieceType})
		}
	}

	// Knights.
	knights := b.pieces[us][Knight]
	for knights != 0 {
		from := PopLsb(&knights)
		targets := knightAttacks[from] &^ ourPieces
		for targets != 0 {
			moves = append(moves, Move{From: from, To: PopLsb(&targets), Promotion: NoPieceType})
		}
	}

	// Bishops, rooks, queens.
	for _, pt := range [3]PieceType{Bishop, Rook, Queen} {
		sliders := b.pieces[us][pt]
		for sliders != 0 {
			from := PopLsb(&sliders)
			targets := AttacksOf(pt, from, us, occ) &^ ourPieces
			for targets != 0 {
				moves = append(moves, Move{From: from, To: PopLsb(&targets), Promotion: NoPieceType})
			}
		}
	}

	// King.
	if kingBB := b.pieces[us][King]; kingBB != 0 {
		from := Lsb(kingBB)
		targets := kingAttacks[from] &^ ourPieces
		for targets != 0 {
			moves = append(moves, Move{From: from, To: PopLsb(&targets), Promotion: NoPieceType})
		}

		// Castling. The corner rook is verified alongside the rights bit so
		// that hand-built positions cannot castle with a phantom rook.
		rooks := b.pieces[us][Rook]
		if us == White {
			if b.castlingRights&CastlingWhiteK != 0 && rooks&bb(H1) != 0 &&
				occ&(bb(F1)|bb(G1)) == 0 &&
				!b.IsSquareAttacked(E1, Black) && !b.IsSquareAttacked(F1, Black) {
				moves = append(moves, Move{From: E1, To: G1, Promotion: NoPieceType})
			}
			if b.castlingRights&CastlingWhiteQ != 0 && rooks&bb(A1) != 0 &&
				occ&(bb(B1)|bb(C1)|bb(D1)) == 0 &&
				!b.IsSquareAttacked(E1, Black) && !b.IsSquareAttacked(D1, Black) {
				moves = append(moves, Move{From: E1, To: C1, Promotion: NoPieceType})
			}
		} else {
			if b.castlingRights&CastlingBlackK != 0 && rooks&bb(H8) != 0 &&
				occ&(bb(F8)|bb(G8)) == 0 &&
				!b.IsSquareAttacked(E8, White) && !b.IsSquareAttacked(F8, White) {
				moves = append(moves, Move{From: E8, To: G8, Promotion: NoPieceType})
			}
			if b.castlingRights&CastlingBlackQ != 0 && rooks&bb(A8) != 0 &&
				occ&(bb(B8)|bb(C8)|bb(D8)) == 0 &&
				!b.IsSquareAttacked(E8, White) && !b.IsSquareAttacked(D8, White) {
				moves = append(moves, Move{From: E8, To: C8, Promotion: NoPieceType})
			}
		}
	}

	return moves
}

// LegalMoves returns every legal move for the side to move: the
// pseudo-legal set filtered by trial-applying each candidate on a copy of
// the position and keeping those MakeMove accepts.
func (b *Board) LegalMoves() []Move {
	return b.LegalMovesInto(make([]Move, 0, 64))
}

// LegalMovesInto appends the legal moves into dst and returns it.
func (b *Board) LegalMovesInto(dst []Move) []Move {
	pseudo := b.PseudoLegalMovesInto(dst)
	legal := pseudo[:0]
	for _, m := range pseudo {
		trial := *b
		if trial.MakeMove(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move has any legal move.
func (b *Board) HasLegalMoves() bool {
	for _, m := range b.PseudoLegalMoves() {
		trial := *b
		if trial.MakeMove(m) {
			return true
		}
	}
	return false
}
