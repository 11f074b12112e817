package see_test

import (
	"testing"

	"laptudirm.com/x/corepos/pkg/board"
	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/see"
	"laptudirm.com/x/corepos/pkg/square"
)

func TestOfWinningExchange(t *testing.T) {
	fen := "1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1"
	p, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q) returned error: %v", fen, err)
	}
	if got := see.Of(p, square.E1, square.E5); got != 100 {
		t.Errorf("Of(e1, e5) = %d, want 100", got)
	}
}

func TestOfLosingExchange(t *testing.T) {
	fen := "1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - - 0 1"
	p, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q) returned error: %v", fen, err)
	}
	if got := see.Of(p, square.D3, square.E5); got != -225 {
		t.Errorf("Of(d3, e5) = %d, want -225", got)
	}
}

func TestOfUndefendedCaptureEqualsCapturedValue(t *testing.T) {
	// black rook on e5 is undefended; white rook on e1 simply wins it.
	fen := "1k6/8/8/4r3/8/8/8/2K1R3 w - - 0 1"
	p, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q) returned error: %v", fen, err)
	}
	want := piece.Rook.Value()
	if got := see.Of(p, square.E1, square.E5); got != want {
		t.Errorf("Of(e1, e5) = %d, want %d", got, want)
	}
}
