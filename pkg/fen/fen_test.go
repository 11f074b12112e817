package fen_test

import (
	"errors"
	"testing"

	"laptudirm.com/x/corepos/pkg/fen"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want fen.Fields
	}{
		{
			name: "full six fields",
			in:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq c5 0 1",
			want: fen.Fields{
				"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "w", "KQkq", "c5", "0", "1",
			},
		},
		{
			name: "halfmove and fullmove omitted",
			in:   "8/8/8/8/8/8/8/K6k w - -",
			want: fen.Fields{"8/8/8/8/8/8/8/K6k", "w", "-", "-", "0", "1"},
		},
		{
			name: "fullmove omitted",
			in:   "8/8/8/8/8/8/8/K6k b - - 12",
			want: fen.Fields{"8/8/8/8/8/8/8/K6k", "b", "-", "-", "12", "1"},
		},
		{
			name: "extra whitespace between fields",
			in:   "8/8/8/8/8/8/8/K6k   w   -   -   0   1",
			want: fen.Fields{"8/8/8/8/8/8/8/K6k", "w", "-", "-", "0", "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fen.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"a b c",
	}

	for _, in := range tests {
		if _, err := fen.Parse(in); !errors.Is(err, fen.ErrNoPosition) {
			t.Errorf("Parse(%q) error = %v, want ErrNoPosition", in, err)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	in := fen.Start
	fields, err := fen.Parse(in)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", in, err)
	}
	if got := fields.String(); got != in {
		t.Errorf("String() = %q, want %q", got, in)
	}
}
