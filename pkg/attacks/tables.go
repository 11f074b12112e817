// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package attacks

import (
	"laptudirm.com/x/corepos/pkg/bitboard"
	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
)

// King, Knight, and Pawn hold precomputed non-sliding attack bitboards.
var (
	King   [square.N]bitboard.Board
	Knight [square.N]bitboard.Board
	Pawn   [piece.ColorN][square.N]bitboard.Board
)

func init() {
	for s := square.A1; s <= square.H8; s++ {
		King[s] = kingAttacksFrom(s)
		Knight[s] = knightAttacksFrom(s)
		Pawn[piece.White][s] = pawnAttacksFrom(s, piece.White)
		Pawn[piece.Black][s] = pawnAttacksFrom(s, piece.Black)
	}
}

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func knightAttacksFrom(s square.Square) bitboard.Board {
	var b bitboard.Board
	f, r := int(s.File()), int(s.Rank())
	for _, d := range knightDeltas {
		nf, nr := f+d[0], r+d[1]
		if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			b.Set(square.From(square.File(nf), square.Rank(nr)))
		}
	}
	return b
}

var kingDeltas = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func kingAttacksFrom(s square.Square) bitboard.Board {
	var b bitboard.Board
	f, r := int(s.File()), int(s.Rank())
	for _, d := range kingDeltas {
		nf, nr := f+d[0], r+d[1]
		if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			b.Set(square.From(square.File(nf), square.Rank(nr)))
		}
	}
	return b
}

func pawnAttacksFrom(s square.Square, c piece.Color) bitboard.Board {
	f, r := int(s.File()), int(s.Rank())
	dr := 1
	if c == piece.Black {
		dr = -1
	}

	var b bitboard.Board
	for _, df := range [2]int{-1, 1} {
		nf, nr := f+df, r+dr
		if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			b.Set(square.From(square.File(nf), square.Rank(nr)))
		}
	}
	return b
}

// PawnsLeft returns the set of squares the given pawns attack towards the
// a file.
func PawnsLeft(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).West()
}

// PawnsRight returns the set of squares the given pawns attack towards the
// h file.
func PawnsRight(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).East()
}

// PawnPush returns the set of squares the given pawns can push a single
// square forward to (occupancy is not taken into account).
func PawnPush(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c)
}
