package bitchess

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// clearRookRights drops the castling right tied to a rook's original corner
// square, for moves from that corner and captures on it alike.
func clearRookRights(cr CastlingRights, sq Square) CastlingRights {
	switch sq {
	case A1:
		cr &^= CastlingWhiteQ
	case H1:
		cr &^= CastlingWhiteK
	case A8:
		cr &^= CastlingBlackQ
	case H8:
		cr &^= CastlingBlackK
	}
	return cr
}

// castleGeometry maps a king move onto its castling shape, if any.
type castleGeometry struct {
	right         CastlingRights
	rookFrom      Square
	rookTo        Square
	emptyPath     uint64
	transitSquare Square
}

func castleFor(c Color, from, to Square) (castleGeometry, bool) {
	switch {
	case c == White && from == E1 && to == G1:
		return castleGeometry{CastlingWhiteK, H1, F1, bb(F1) | bb(G1), F1}, true
	case c == White && from == E1 && to == C1:
		return castleGeometry{CastlingWhiteQ, A1, D1, bb(B1) | bb(C1) | bb(D1), D1}, true
	case c == Black && from == E8 && to == G8:
		return castleGeometry{CastlingBlackK, H8, F8, bb(F8) | bb(G8), F8}, true
	case c == Black && from == E8 && to == C8:
		return castleGeometry{CastlingBlackQ, A8, D8, bb(B8) | bb(C8) | bb(D8), D8}, true
	}
	return castleGeometry{}, false
}

// MakeMove applies a move to the board. The move is classified as castling,
// en passant, promotion, double push, or a plain move, and applied with the
// matching bookkeeping for castling rights, the en passant target, and the
// clocks. It returns false if the move is structurally invalid, does not
// move a piece of the side to play, fails a castling precondition, or would
// leave the mover's king attacked. A rejected move leaves the board
// unchanged.
func (b *Board) MakeMove(m Move) bool {
	if !m.IsValid() {
		return false
	}
	moving, movingColor := b.PieceAt(m.From)
	if moving == NoPieceType || movingColor != b.sideToMove {
		return false
	}
	captured, capturedColor := b.PieceAt(m.To)
	if captured != NoPieceType && capturedColor == movingColor {
		return false
	}
	isCapture := captured != NoPieceType

	us := b.sideToMove
	them := us.Opponent()

	// Restored wholesale if the applied move turns out to leave the mover
	// in check, so a failed MakeMove is a no-op.
	prev := *b

	geom, isCastle := castleFor(us, m.From, m.To)
	switch {
	case moving == King && isCastle:
		if b.castlingRights&geom.right == 0 ||
			b.pieces[us][Rook]&bb(geom.rookFrom) == 0 ||
			b.occupied&geom.emptyPath != 0 ||
			b.InCheck(us) ||
			b.IsSquareAttacked(geom.transitSquare, them) {
			return false
		}
		b.removePiece(m.From)
		b.addPiece(m.To, King, us)
		b.removePiece(geom.rookFrom)
		b.addPiece(geom.rookTo, Rook, us)
		if us == White {
			b.castlingRights &^= CastlingWhiteK | CastlingWhiteQ
		} else {
			b.castlingRights &^= CastlingBlackK | CastlingBlackQ
		}
		b.enPassantSquare = NoSquare

	case moving == Pawn && b.enPassantSquare != NoSquare && m.To == b.enPassantSquare:
		// The captured pawn sits one square behind the target from the
		// mover's point of view.
		capSq := m.To - 8
		if us == Black {
			capSq = m.To + 8
		}
		b.removePiece(capSq)
		b.removePiece(m.From)
		b.addPiece(m.To, Pawn, us)
		b.enPassantSquare = NoSquare
		isCapture = true

	case moving == Pawn && m.Promotion != NoPieceType:
		if m.Promotion == Pawn || m.Promotion >= King {
			return false
		}
		b.removePiece(m.From)
		if isCapture {
			b.removePiece(m.To)
			b.castlingRights = clearRookRights(b.castlingRights, m.To)
		}
		b.addPiece(m.To, m.Promotion, us)
		b.enPassantSquare = NoSquare

	case moving == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2:
		b.removePiece(m.From)
		b.addPiece(m.To, Pawn, us)
		if us == White {
			b.enPassantSquare = m.From + 8
		} else {
			b.enPassantSquare = m.From - 8
		}

	default:
		b.removePiece(m.From)
		if isCapture {
			b.removePiece(m.To)
		}
		b.addPiece(m.To, moving, us)
		if moving == King {
			if us == White {
				b.castlingRights &^= CastlingWhiteK | CastlingWhiteQ
			} else {
				b.castlingRights &^= CastlingBlackK | CastlingBlackQ
			}
		}
		if moving == Rook {
			b.castlingRights = clearRookRights(b.castlingRights, m.From)
		}
		if isCapture && captured == Rook {
			b.castlingRights = clearRookRights(b.castlingRights, m.To)
		}
		b.enPassantSquare = NoSquare
	}

	// Reject a move that leaves the mover's king attacked.
	if b.InCheck(us) {
		*b = prev
		return false
	}

	if moving == Pawn || isCapture {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	b.sideToMove = them
	if b.sideToMove == White {
		b.fullmoveNumber++
	}
	return true
}
