package bitchess

import "strings"

// Color identifies a side. NoColor is returned for empty squares.
type Color uint8

const (
	White   Color = 0
	Black   Color = 1
	NoColor Color = 2
)

// Opponent returns the other side. Only meaningful for White and Black.
func (c Color) Opponent() Color { return 1 - c }

// PieceType is a colorless chess piece kind, usable as an index into the
// per-piece bitboard arrays.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

// PieceValue gives the conventional material value per piece type
// (pawn=1, minors=3, rook=5, queen=9; the king carries no value).
var PieceValue = [6]int{1, 3, 3, 5, 9, 0}

var pieceTypeChars = [6]byte{'p', 'n', 'b', 'r', 'q', 'k'}

// Char returns the lowercase FEN letter for the piece type, or '?' for
// NoPieceType.
func (pt PieceType) Char() byte {
	if pt >= NoPieceType {
		return '?'
	}
	return pieceTypeChars[pt]
}

// CastlingRights is a bitmask over the four corner castling permissions.
type CastlingRights uint8

const (
	CastlingWhiteK CastlingRights = 1 << iota
	CastlingWhiteQ
	CastlingBlackK
	CastlingBlackQ

	CastlingNone CastlingRights = 0
	CastlingAny  CastlingRights = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// Square is a board position (0-63, a1=0, h8=63) or NoSquare.
type Square int

const NoSquare Square = -1

// Square constants, little-endian rank-file.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File returns the square's file (0 = a-file).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the square's rank (0 = rank 1).
func (sq Square) Rank() int { return int(sq) / 8 }

// SquareFromRankFile builds a square from 0-based rank and file.
func SquareFromRankFile(rank, file int) Square { return Square(rank*8 + file) }

// String returns the algebraic name of the square ("e4"), or "-" for
// NoSquare.
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// Board represents the complete chess game state: piece placement plus the
// irreversible state (side to move, castling rights, en passant target,
// halfmove clock, fullmove number). A Board is a plain value; copying it
// with assignment yields an independent position, which is what the
// trial-apply legality filter relies on.
type Board struct {
	// Piece bitboards, indexed by [color][piece type].
	pieces [2][6]uint64

	// Derived occupancy bitboards for each side, and their union.
	allPieces [2]uint64
	occupied  uint64

	// Mailbox mirror of the bitboards for O(1) piece-type lookups.
	// Color comes from allPieces.
	squares [64]PieceType

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfmoveClock   int
	fullmoveNumber  int

	// Chess960 is the UCI_Chess960 option flag. Castling itself is not
	// implemented for Chess960: FEN strings carrying letter-file castling
	// tokens are rejected whether or not the flag is set, and the flag only
	// selects a Chess960-specific error message for them.
	Chess960 bool
}

// NewBoard returns a board set up with the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// ==========================
// Accessors
// ==========================

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the current castling rights mask.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the current en passant target square or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock returns the number of plies since the last pawn move or
// capture.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's
// move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Pieces returns the bitboard for one (color, piece type) pair.
func (b *Board) Pieces(c Color, pt PieceType) uint64 { return b.pieces[c][pt] }

// AllPieces returns the occupancy bitboard for the given color.
func (b *Board) AllPieces(c Color) uint64 { return b.allPieces[c] }

// Occupied returns the bitboard of all occupied squares.
func (b *Board) Occupied() uint64 { return b.occupied }

// PieceAt returns the piece type and color on a square, or
// (NoPieceType, NoColor) if the square is empty.
func (b *Board) PieceAt(sq Square) (PieceType, Color) {
	bit := bb(sq)
	if b.allPieces[White]&bit != 0 {
		return b.squares[sq], White
	}
	if b.allPieces[Black]&bit != 0 {
		return b.squares[sq], Black
	}
	return NoPieceType, NoColor
}

// KingSquare returns the square of the given color's king, or NoSquare if
// the king is absent (only possible on hand-built positions).
func (b *Board) KingSquare(c Color) Square { return Lsb(b.pieces[c][King]) }

// ==========================
// Placement helpers
// ==========================

// addPiece places a piece on an empty square and updates the derived state.
func (b *Board) addPiece(sq Square, pt PieceType, c Color) {
	bit := bb(sq)
	b.pieces[c][pt] |= bit
	b.allPieces[c] |= bit
	b.occupied |= bit
	b.squares[sq] = pt
}

// removePiece clears a square and updates the derived state. Empty squares
// are left untouched.
func (b *Board) removePiece(sq Square) {
	pt, c := b.PieceAt(sq)
	if pt == NoPieceType {
		return
	}
	mask := ^bb(sq)
	b.pieces[c][pt] &= mask
	b.allPieces[c] &= mask
	b.occupied &= mask
	b.squares[sq] = NoPieceType
}

// updateDerived recomputes allPieces and occupied from the piece bitboards.
func (b *Board) updateDerived() {
	for c := White; c <= Black; c++ {
		b.allPieces[c] = 0
		for pt := Pawn; pt <= King; pt++ {
			b.allPieces[c] |= b.pieces[c][pt]
		}
	}
	b.occupied = b.allPieces[White] | b.allPieces[Black]
}

// Validate checks internal consistency between the piece bitboards, the
// derived occupancy, and the mailbox. Returns true if consistent.
func (b *Board) Validate() bool {
	var all [2]uint64
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for other := pt + 1; other <= King; other++ {
				if b.pieces[c][pt]&b.pieces[c][other] != 0 {
					return false
				}
			}
			all[c] |= b.pieces[c][pt]
		}
	}
	if all[White]&all[Black] != 0 {
		return false
	}
	if all != b.allPieces || b.occupied != all[White]|all[Black] {
		return false
	}
	for sq := A1; sq <= H8; sq++ {
		pt := NoPieceType
		for side := White; side <= Black; side++ {
			for p := Pawn; p <= King; p++ {
				if b.pieces[side][p]&bb(sq) != 0 {
					pt = p
				}
			}
		}
		if b.squares[sq] != pt {
			return false
		}
	}
	return true
}

// String renders the board as an ASCII diagram with the game-state summary,
// rank 8 at the top.
func (b *Board) String() string {
	const frame = "  +---+---+---+---+---+---+---+---+\n"
	var sb strings.Builder
	sb.WriteString(frame)
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteString(" |")
		for file := 0; file < 8; file++ {
			pt, c := b.PieceAt(SquareFromRankFile(rank, file))
			sb.WriteByte(' ')
			if pt == NoPieceType {
				sb.WriteByte(' ')
			} else {
				ch := pt.Char()
				if c == White {
					ch -= 'a' - 'A'
				}
				sb.WriteByte(ch)
			}
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
		sb.WriteString(frame)
	}
	sb.WriteString("    a   b   c   d   e   f   g   h\n")
	if b.sideToMove == White {
		sb.WriteString("Side to move: White\n")
	} else {
		sb.WriteString("Side to move: Black\n")
	}
	sb.WriteString("Castling: ")
	sb.WriteString(b.castlingRights.String())
	sb.WriteByte('\n')
	if b.enPassantSquare != NoSquare {
		sb.WriteString("En passant: ")
		sb.WriteString(b.enPassantSquare.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String returns the FEN castling field for the rights mask ("KQkq", "-", ...).
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr&CastlingWhiteK != 0 {
		sb.WriteByte('K')
	}
	if cr&CastlingWhiteQ != 0 {
		sb.WriteByte('Q')
	}
	if cr&CastlingBlackK != 0 {
		sb.WriteByte('k')
	}
	if cr&CastlingBlackQ != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}
