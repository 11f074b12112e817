package board_test

import (
	"testing"

	"laptudirm.com/x/corepos/pkg/bitboard"
	"laptudirm.com/x/corepos/pkg/board"
	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
)

func TestClearFillSquareRoundTrip(t *testing.T) {
	p := board.New()

	hashBefore := p.Hash
	pc := p.ClearSquare(square.E2)

	if pc != piece.WhitePawn {
		t.Fatalf("ClearSquare(E2) = %v, want WhitePawn", pc)
	}
	if p.Squares[square.E2] != piece.NoPiece {
		t.Error("mailbox still has a piece on E2 after ClearSquare")
	}
	if p.Occupancy().IsSet(square.E2) {
		t.Error("occupancy still set on E2 after ClearSquare")
	}
	if p.Hash == hashBefore {
		t.Error("Hash unchanged after ClearSquare")
	}

	p.FillSquare(square.E2, pc)
	if p.Hash != hashBefore {
		t.Error("Hash not restored after FillSquare undoing ClearSquare")
	}
	if p.Squares[square.E2] != piece.WhitePawn {
		t.Error("mailbox not restored after FillSquare")
	}
}

func TestKingSquareTracksFillSquare(t *testing.T) {
	p := board.Empty()
	p.FillSquare(square.G3, piece.New(piece.King, piece.White))
	if got := p.KingSquare(piece.White); got != square.G3 {
		t.Errorf("KingSquare(White) = %v, want G3", got)
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		color piece.Color
		want  bool
	}{
		{
			name:  "start position is quiet",
			fen:   board.StartFEN,
			color: piece.White,
			want:  false,
		},
		{
			name:  "rook checks king along open file",
			fen:   "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1",
			color: piece.Black,
			want:  true,
		},
		{
			name:  "knight check",
			fen:   "4k3/8/8/8/8/3n4/8/4K3 b - - 0 1",
			color: piece.White,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := board.FromFEN(tt.fen)
			if err != nil {
				t.Fatalf("FromFEN(%q) returned error: %v", tt.fen, err)
			}
			if got := p.IsInCheck(tt.color); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestPinnedPieces(t *testing.T) {
	// white rook on d1 pins the white knight on d4 against the white king
	// on d8 ... but pins are always the moving side's own pieces against
	// its own king, so pin the black knight on d5 against the black king
	// on d8 with a white rook on d1.
	p, err := board.FromFEN("3k4/8/8/3n4/8/8/8/3R3K b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN returned error: %v", err)
	}

	pinnedHV, pinnedD := p.PinnedPieces(piece.Black)
	if !pinnedHV.IsSet(square.D5) {
		t.Errorf("expected D5 knight to be HV-pinned, pinnedHV = %v", pinnedHV)
	}
	if pinnedD != bitboard.Empty {
		t.Errorf("expected no diagonal pins, got %v", pinnedD)
	}
}

func TestCheckersContainsAttacker(t *testing.T) {
	p, err := board.FromFEN("4k3/8/8/8/8/8/8/4R1K1 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN returned error: %v", err)
	}
	checkers := p.Checkers(piece.Black)
	if !checkers.IsSet(square.E1) {
		t.Errorf("expected E1 rook among checkers, got %v", checkers)
	}
	if checkers.Count() != 1 {
		t.Errorf("expected exactly one checker, got %d", checkers.Count())
	}
}
