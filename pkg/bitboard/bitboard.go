// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bitboard implements a 64-bit bitboard and other related
// functions for manipulating them.
package bitboard

import (
	"math/bits"
	"strings"

	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
)

// Board is a set of squares represented as a 64-bit bitmask, bit i
// corresponding to square.Square(i).
type Board uint64

const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// String returns an 8x8 ASCII representation of the board, rank 8 first.
func (b Board) String() string {
	var sb strings.Builder
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			if b.IsSet(square.From(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			if f != square.FileH {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Up shifts the board one rank towards the given color's promotion rank.
func (b Board) Up(c piece.Color) Board {
	switch c {
	case piece.White:
		return b.North()
	case piece.Black:
		return b.South()
	default:
		panic("bad color")
	}
}

// Down shifts the board one rank away from the given color's promotion rank.
func (b Board) Down(c piece.Color) Board {
	switch c {
	case piece.White:
		return b.South()
	case piece.Black:
		return b.North()
	default:
		panic("bad color")
	}
}

// North shifts the board towards the eighth rank.
func (b Board) North() Board {
	return b << 8
}

// South shifts the board towards the first rank.
func (b Board) South() Board {
	return b >> 8
}

// East shifts the board towards the h file.
func (b Board) East() Board {
	return (b &^ Files[square.FileH]) << 1
}

// West shifts the board towards the a file.
func (b Board) West() Board {
	return (b &^ Files[square.FileA]) >> 1
}

// Pop removes and returns the least significant set square of the board.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set squares in the board.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the least significant set square of the board, or
// square.None if the board is empty.
func (b Board) FirstOne() square.Square {
	if b == 0 {
		return square.None
	}
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether the given square is set in the board.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set sets the given square in the board.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset clears the given square in the board.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}
