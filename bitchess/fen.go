package bitchess

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Starting piece placement per (color, piece type).
var startingPieces = [2][6]uint64{
	White: {
		Pawn:   0x000000000000FF00,
		Knight: 0x0000000000000042,
		Bishop: 0x0000000000000024,
		Rook:   0x0000000000000081,
		Queen:  0x0000000000000008,
		King:   0x0000000000000010,
	},
	Black: {
		Pawn:   0x00FF000000000000,
		Knight: 0x4200000000000000,
		Bishop: 0x2400000000000000,
		Rook:   0x8100000000000000,
		Queen:  0x0800000000000000,
		King:   0x1000000000000000,
	},
}

// Reset sets up the standard starting position. The Chess960 flag is
// preserved.
func (b *Board) Reset() {
	chess960 := b.Chess960
	*b = Board{Chess960: chess960}
	for c := White; c <= Black; c++ {
		b.pieces[c] = startingPieces[c]
	}
	b.updateDerived()
	for sq := A1; sq <= H8; sq++ {
		b.squares[sq] = NoPieceType
	}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			pieces := b.pieces[c][pt]
			for pieces != 0 {
				b.squares[PopLsb(&pieces)] = pt
			}
		}
	}
	b.sideToMove = White
	b.castlingRights = CastlingAny
	b.enPassantSquare = NoSquare
	b.halfmoveClock = 0
	b.fullmoveNumber = 1
}

func pieceFromChar(ch byte) (PieceType, Color) {
	c := White
	if ch >= 'a' && ch <= 'z' {
		c = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return Pawn, c
	case 'N':
		return Knight, c
	case 'B':
		return Bishop, c
	case 'R':
		return Rook, c
	case 'Q':
		return Queen, c
	case 'K':
		return King, c
	default:
		return NoPieceType, NoColor
	}
}

// ParseFEN parses a FEN string and returns a new board set up to that
// position.
func ParseFEN(fen string) (*Board, error) {
	b := &Board{}
	if err := b.SetFromFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// SetFromFEN replaces the board state with the position described by the
// six-field FEN string. On any malformed field the receiver is left
// unchanged and an error is returned.
func (b *Board) SetFromFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return errors.New("invalid FEN: expected 6 fields")
	}

	parsed := Board{Chess960: b.Chess960}
	parsed.enPassantSquare = NoSquare
	for sq := A1; sq <= H8; sq++ {
		parsed.squares[sq] = NoPieceType
	}

	// 1. Piece placement, ranks 8 down to 1.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return errors.New("invalid FEN: incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pt, c := pieceFromChar(ch)
			if pt == NoPieceType {
				return errors.New("invalid FEN: unrecognized piece character")
			}
			if file >= 8 {
				return errors.New("invalid FEN: too many squares in rank")
			}
			parsed.addPiece(SquareFromRankFile(rank, file), pt, c)
			file++
		}
		if file != 8 {
			return errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	// 2. Active color.
	switch fields[1] {
	case "w":
		parsed.sideToMove = White
	case "b":
		parsed.sideToMove = Black
	default:
		return errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	// 3. Castling rights. With Chess960 enabled, Shredder-style letter-file
	// tokens are rejected outright rather than silently dropped; the
	// castling machinery only understands the standard corners.
	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			switch ch := fields[2][j]; ch {
			case 'K':
				parsed.castlingRights |= CastlingWhiteK
			case 'Q':
				parsed.castlingRights |= CastlingWhiteQ
			case 'k':
				parsed.castlingRights |= CastlingBlackK
			case 'q':
				parsed.castlingRights |= CastlingBlackQ
			default:
				if b.Chess960 && ((ch >= 'A' && ch <= 'H') || (ch >= 'a' && ch <= 'h')) {
					return errors.New("invalid FEN: Chess960 castling files are not supported")
				}
				return errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}

	// 4. En passant target square.
	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return errors.New("invalid FEN: invalid en passant square")
		}
		file := fields[3][0]
		rank := fields[3][1]
		if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
			return errors.New("invalid FEN: en passant square out of range")
		}
		parsed.enPassantSquare = SquareFromRankFile(int(rank-'1'), int(file-'a'))
	}

	// 5. Halfmove clock.
	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return errors.New("invalid FEN: halfmove clock is not a number")
	}
	parsed.halfmoveClock = halfmove

	// 6. Fullmove number.
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return errors.New("invalid FEN: fullmove number is not a number")
	}
	parsed.fullmoveNumber = fullmove

	*b = parsed
	return nil
}

// ToFEN produces the FEN string representation of the board's current
// state. ParseFEN(b.ToFEN()) reproduces b for any reachable position.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pt, c := b.PieceAt(SquareFromRankFile(rank, file))
			if pt == NoPieceType {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			ch := pt.Char()
			if c == White {
				ch -= 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	sb.WriteString(b.castlingRights.String())
	sb.WriteByte(' ')

	sb.WriteString(b.enPassantSquare.String())
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}
