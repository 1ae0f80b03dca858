package bitchess_test

import (
	"testing"

	"github.com/andreaskoumoundouros/BitChess/bitchess"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		bitchess.FENStartPos,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 12 47",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	}
	for _, fen := range fens {
		b, err := bitchess.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.ToFEN(); got != fen {
			t.Fatalf("round trip mismatch:\n in  %q\n out %q", fen, got)
		}
		if !b.Validate() {
			t.Fatalf("parsed board failed validation for %q", fen)
		}
	}
}

func TestResetMatchesStartposFEN(t *testing.T) {
	b := bitchess.NewBoard()
	if got := b.ToFEN(); got != bitchess.FENStartPos {
		t.Fatalf("Reset FEN: got %q want %q", got, bitchess.FENStartPos)
	}
}

func TestParseFENFields(t *testing.T) {
	b, err := bitchess.ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 5 9")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if b.SideToMove() != bitchess.Black {
		t.Fatalf("side to move: got %v want Black", b.SideToMove())
	}
	if b.EnPassantSquare() != bitchess.E3 {
		t.Fatalf("en passant: got %v want e3", b.EnPassantSquare())
	}
	if b.HalfmoveClock() != 5 {
		t.Fatalf("halfmove clock: got %d want 5", b.HalfmoveClock())
	}
	if b.FullmoveNumber() != 9 {
		t.Fatalf("fullmove number: got %d want 9", b.FullmoveNumber())
	}
	if b.CastlingRights() != bitchess.CastlingAny {
		t.Fatalf("castling rights: got %v", b.CastlingRights())
	}
}

func TestMalformedFENLeavesBoardUnchanged(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",                 // missing fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",             // seven ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",    // overlong rank
		"rnbqkbnr/ppTppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",    // bad piece
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",    // bad color
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",    // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",   // bad ep
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - abc 1",  // bad clock
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 zero", // bad fullmove
	}
	b := bitchess.NewBoard()
	if !b.MakeMove(bitchess.MoveFromUCI("e2e4")) {
		t.Fatalf("e2e4 rejected")
	}
	before := b.ToFEN()
	for _, fen := range bad {
		if err := b.SetFromFEN(fen); err == nil {
			t.Fatalf("SetFromFEN(%q): expected error", fen)
		}
		if got := b.ToFEN(); got != before {
			t.Fatalf("board changed by failed parse of %q:\n got %q\n want %q", fen, got, before)
		}
	}
}

func TestChess960CastlingTokensRejected(t *testing.T) {
	b := bitchess.NewBoard()
	b.Chess960 = true
	shredder := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w HAha - 0 1"
	if err := b.SetFromFEN(shredder); err == nil {
		t.Fatalf("expected Shredder castling tokens to be rejected with Chess960 set")
	}
	// Standard tokens still parse with the flag set.
	if err := b.SetFromFEN(bitchess.FENStartPos); err != nil {
		t.Fatalf("standard FEN with Chess960 set: %v", err)
	}
	if !b.Chess960 {
		t.Fatalf("Chess960 flag lost across SetFromFEN")
	}
}
