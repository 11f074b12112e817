package board_test

import (
	"testing"

	"laptudirm.com/x/corepos/pkg/board"
)

func TestFENRoundTrip(t *testing.T) {
	tests := []string{
		board.StartFEN,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
		// double push e7-e5; EnPassantTarget is the pusher's own landing
		// square (e5), not the square it passed over (e6).
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e5 0 2",
		// double push d2-d4; landing square d4, not d3.
		"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d4 0 1",
		"rn3rk1/pbp1qpp1/1p5p/3p4/3P4/3BPN2/PP3PPP/R2Q1RK1 b - - 3 12",
	}

	for _, want := range tests {
		t.Run(want, func(t *testing.T) {
			p, err := board.FromFEN(want)
			if err != nil {
				t.Fatalf("FromFEN(%q) returned error: %v", want, err)
			}
			if got := p.FEN(); got != want {
				t.Errorf("FEN() = %q, want %q", got, want)
			}
		})
	}
}

func TestFromFENErrors(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1", // 7 ranks
	}

	for _, in := range tests {
		if _, err := board.FromFEN(in); err == nil {
			t.Errorf("FromFEN(%q) returned no error, want one", in)
		}
	}
}

func TestNewIsStartPosition(t *testing.T) {
	p := board.New()
	if got := p.FEN(); got != board.StartFEN {
		t.Errorf("New().FEN() = %q, want %q", got, board.StartFEN)
	}
}
