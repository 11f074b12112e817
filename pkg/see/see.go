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

// Package see implements static exchange evaluation: the material outcome
// of the full capture sequence landing on a single square, assuming both
// sides always recapture with their least valuable attacker.
package see

import (
	"laptudirm.com/x/corepos/pkg/attacks"
	"laptudirm.com/x/corepos/pkg/bitboard"
	"laptudirm.com/x/corepos/pkg/board"
	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
)

// Of evaluates the capture sequence that results from the piece on from
// capturing whatever sits on to, in p. p is not mutated. The square on to
// must be occupied by an enemy piece before the capture; the swap-list
// walk that follows stops as soon as a side has no attacker left.
func Of(p *board.Position, from, to square.Square) int {
	occ := p.Occupancy()
	us := p.Squares[from].Color()

	gain := make([]int, 1, 16)
	gain[0] = p.Squares[to].Type().Value()

	attacker := p.Squares[from].Type()
	occ &^= bitboard.Squares[from]
	side := us.Other()

	for {
		t, sq := leastValuableAttacker(p, to, side, occ)
		if t == piece.NoType {
			break
		}

		gain = append(gain, attacker.Value()-gain[len(gain)-1])

		occ &^= bitboard.Squares[sq]
		attacker = t
		side = side.Other()
	}

	for d := len(gain) - 2; d >= 0; d-- {
		if neg := -gain[d+1]; neg < gain[d] {
			gain[d] = neg
		}
	}
	return gain[0]
}

// leastValuableAttacker returns the type and square of the cheapest piece
// of color by that attacks s given occupancy occ, recomputing slider
// attacks against occ so that x-rays behind already-removed pawns,
// bishops, rooks, and queens are discovered as the exchange progresses.
func leastValuableAttacker(p *board.Position, s square.Square, by piece.Color, occ bitboard.Board) (piece.Type, square.Square) {
	friends := p.ColorBBs[by] & occ

	pawns := attacks.Pawn[by.Other()][s] & p.PieceBBs[piece.Pawn] & friends
	if pawns != bitboard.Empty {
		return piece.Pawn, pawns.FirstOne()
	}

	knights := attacks.Knight[s] & p.PieceBBs[piece.Knight] & friends
	if knights != bitboard.Empty {
		return piece.Knight, knights.FirstOne()
	}

	bishops := attacks.Bishop(s, occ) & p.PieceBBs[piece.Bishop] & friends
	if bishops != bitboard.Empty {
		return piece.Bishop, bishops.FirstOne()
	}

	rooks := attacks.Rook(s, occ) & p.PieceBBs[piece.Rook] & friends
	if rooks != bitboard.Empty {
		return piece.Rook, rooks.FirstOne()
	}

	queens := attacks.Queen(s, occ) & p.PieceBBs[piece.Queen] & friends
	if queens != bitboard.Empty {
		return piece.Queen, queens.FirstOne()
	}

	kings := attacks.King[s] & p.PieceBBs[piece.King] & friends
	if kings != bitboard.Empty {
		return piece.King, kings.FirstOne()
	}

	return piece.NoType, square.None
}
