package board_test

import (
	"testing"

	"laptudirm.com/x/corepos/pkg/board"
	"laptudirm.com/x/corepos/pkg/move"
	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
)

// snapshot captures every field Make/Unmake must restore exactly.
type snapshot struct {
	hash            uint64
	squares         string
	sideToMove      piece.Color
	enPassantTarget square.Square
	castlingRights  byte
	plys            int
	fullMoves       int
	drawClock       int
}

func snap(p *board.Position) snapshot {
	return snapshot{
		hash:            uint64(p.Hash),
		squares:         p.Squares.FEN(),
		sideToMove:      p.SideToMove,
		enPassantTarget: p.EnPassantTarget,
		castlingRights:  byte(p.CastlingRights),
		plys:            p.Plys,
		fullMoves:       p.FullMoves,
		drawClock:       p.DrawClock,
	}
}

func testMakeUnmakeRoundTrip(t *testing.T, fen string, m move.Move) {
	t.Helper()

	p, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q) returned error: %v", fen, err)
	}

	before := snap(p)
	token := p.Make(m)
	after := snap(p)

	if after == before {
		t.Fatalf("Make(%s) on %q left the position unchanged", m, fen)
	}

	p.Unmake(token)
	restored := snap(p)

	if restored != before {
		t.Errorf("Make/Unmake(%s) on %q did not round-trip:\nbefore:   %+v\nrestored: %+v", m, fen, before, restored)
	}
}

func TestMakeUnmakeQuiet(t *testing.T) {
	testMakeUnmakeRoundTrip(t, board.StartFEN, move.New(square.E2, square.E3, move.Quiet))
}

func TestMakeUnmakeDoublePush(t *testing.T) {
	testMakeUnmakeRoundTrip(t, board.StartFEN, move.New(square.E2, square.E4, move.DoublePush))
}

func TestMakeUnmakeRealCapture(t *testing.T) {
	fen := "rnbqkb1r/pppppppp/5n2/8/4N3/8/PPPPPPPP/R1BQKB1R w KQkq - 0 1"
	testMakeUnmakeRoundTrip(t, fen, move.New(square.E4, square.F6, move.Capture))
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	// white just pushed e2-e4; EnPassantTarget stores the landing square
	// e4, not the traditional passed-over square e3.
	fen := "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 2"
	testMakeUnmakeRoundTrip(t, fen, move.New(square.D4, square.E3, move.EnPassant))
}

func TestMakeUnmakeCastleKingside(t *testing.T) {
	fen := "rnbqk2r/pppp1ppp/5n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"
	testMakeUnmakeRoundTrip(t, fen, move.New(square.E1, square.G1, move.KingCastle))
}

func TestMakeUnmakeCastleQueenside(t *testing.T) {
	fen := "r3kbnr/pppqpppp/2np4/1B6/1b6/2NP4/PPPQPPPP/R3KBNR w KQkq - 6 5"
	testMakeUnmakeRoundTrip(t, fen, move.New(square.E1, square.C1, move.QueenCastle))
}

func TestMakeUnmakePromotion(t *testing.T) {
	fen := "rnbqkb2/ppppppPp/8/8/8/8/PPPPPP1P/RNBQKBNR w KQq - 0 1"
	testMakeUnmakeRoundTrip(t, fen, move.NewPromotion(square.G7, square.G8, piece.Knight, false))
}

func TestMakeUnmakeCapturePromotion(t *testing.T) {
	fen := "rnbqkb1r/ppppppPp/5n2/8/8/8/PPPPPP1P/RNBQKBNR w KQkq - 0 1"
	testMakeUnmakeRoundTrip(t, fen, move.NewPromotion(square.G7, square.H8, piece.Queen, true))
}

func TestMakeUpdatesDrawClock(t *testing.T) {
	p, err := board.FromFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("FromFEN returned error: %v", err)
	}
	p.Make(move.New(square.E2, square.E4, move.DoublePush))
	if p.DrawClock != 0 {
		t.Errorf("DrawClock after pawn push = %d, want 0", p.DrawClock)
	}
	p.Make(move.New(square.B8, square.C6, move.Quiet))
	if p.DrawClock != 1 {
		t.Errorf("DrawClock after knight move = %d, want 1", p.DrawClock)
	}
}
