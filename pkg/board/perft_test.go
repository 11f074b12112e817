package board_test

import (
	"testing"

	"laptudirm.com/x/corepos/pkg/board"
)

// the canonical Chess Programming Wiki perft suite.
var perftCases = []struct {
	name  string
	fen   string
	depth int
	nodes uint64
}{
	{"startpos d1", board.StartFEN, 1, 20},
	{"startpos d2", board.StartFEN, 2, 400},
	{"startpos d3", board.StartFEN, 3, 8902},
	{"startpos d4", board.StartFEN, 4, 197281},
	{"startpos d5", board.StartFEN, 5, 4865609},
	{"startpos d6", board.StartFEN, 6, 119060324},
	{"kiwipete d5", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 5, 193690690},
	{"position 3 d6", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 6, 11030083},
	{"position 4 d5", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 5, 15833292},
	{"position 5 d5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 5, 89941194},
	{"position 6 d5", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 5, 164075551},
}

func TestPerft(t *testing.T) {
	for _, tt := range perftCases {
		tt := tt
		if tt.depth >= 5 && testing.Short() {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			p, err := board.FromFEN(tt.fen)
			if err != nil {
				t.Fatalf("FromFEN(%q) returned error: %v", tt.fen, err)
			}
			if got := p.Perft(tt.depth, true); got != tt.nodes {
				t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.nodes)
			}
		})
	}
}

func TestLegalMovesStartPositionCount(t *testing.T) {
	p := board.New()
	if got := len(p.LegalMoves()); got != 20 {
		t.Errorf("len(LegalMoves()) at start = %d, want 20", got)
	}
}

func TestLegalMovesPinnedPieceCannotExposeKing(t *testing.T) {
	// black rook on d5 is pinned by the white rook on d1 against the
	// black king on d8; it must only be able to move along the d-file.
	p, err := board.FromFEN("3k4/8/8/3r4/8/8/8/3R3K b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN returned error: %v", err)
	}

	for _, m := range p.LegalMoves() {
		if p.Squares[m.From()].Type().String() != "r" {
			continue
		}
		if m.To().File() != m.From().File() {
			t.Errorf("pinned rook move %s leaves the d-file", m)
		}
	}
}

func TestLegalMovesNoCastleThroughCheck(t *testing.T) {
	// the f1 square the king would pass through is attacked by the black
	// rook on f8, so kingside castling must not be generated.
	p, err := board.FromFEN("4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("FromFEN returned error: %v", err)
	}

	for _, m := range p.LegalMoves() {
		if m.IsCastle() {
			t.Errorf("castle move %s generated while passing through check", m)
		}
	}
}
