package bitchess

import (
	"math/bits"
	"strings"
)

// Precomputed masks for each rank (RankMask[0] = rank 1) and file
// (FileMask[0] = the a-file).
var RankMask [8]uint64
var FileMask [8]uint64

// Diagonal masks. DiagMask[file-rank+7] runs in the a1-h8 direction,
// AntiDiagMask[file+rank] in the a8-h1 direction.
var DiagMask [15]uint64
var AntiDiagMask [15]uint64

func init() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		bit := uint64(1) << uint(sq)
		RankMask[rank] |= bit
		FileMask[file] |= bit
		DiagMask[file-rank+7] |= bit
		AntiDiagMask[file+rank] |= bit
	}
}

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// PopCount returns the number of set bits in the bitboard.
func PopCount(b uint64) int { return bits.OnesCount64(b) }

// Lsb returns the square of the least significant set bit, or NoSquare
// for an empty bitboard.
func Lsb(b uint64) Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(b))
}

// Msb returns the square of the most significant set bit, or NoSquare
// for an empty bitboard.
func Msb(b uint64) Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(b))
}

// PopLsb removes the least significant set bit from the mask and returns
// its square. The mask must be non-empty.
func PopLsb(mask *uint64) Square {
	sq := Square(bits.TrailingZeros64(*mask))
	*mask &= *mask - 1
	return sq
}

// PrettyBitboard renders a bitboard as an 8x8 grid, rank 8 at the top,
// with 'x' marking set squares.
func PrettyBitboard(b uint64) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b&(uint64(1)<<uint(rank*8+file)) != 0 {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
