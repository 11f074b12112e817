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

// Package attacks provides precomputed attack bitboards for every piece
// type. Knight, king, and pawn attacks are plain lookup tables; sliding
// piece (bishop/rook/queen) attacks are served by the magic bitboard
// tables in the attacks/magic subpackage.
package attacks

import (
	"laptudirm.com/x/corepos/pkg/attacks/magic"
	"laptudirm.com/x/corepos/pkg/bitboard"
	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
)

// Of returns the attack bitboard of a piece of the given type and color
// standing on s, given the board's current occupancy. occ is ignored for
// non-sliding piece types.
func Of(t piece.Type, c piece.Color, s square.Square, occ bitboard.Board) bitboard.Board {
	switch t {
	case piece.Pawn:
		return Pawn[c][s]
	case piece.Knight:
		return Knight[s]
	case piece.Bishop:
		return magic.Bishop(s, occ)
	case piece.Rook:
		return magic.Rook(s, occ)
	case piece.Queen:
		return magic.Bishop(s, occ) | magic.Rook(s, occ)
	case piece.King:
		return King[s]
	default:
		panic("attacks of: bad piece type")
	}
}

// Bishop returns the attack bitboard of a bishop on s given occ.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	return magic.Bishop(s, occ)
}

// Rook returns the attack bitboard of a rook on s given occ.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	return magic.Rook(s, occ)
}

// Queen returns the attack bitboard of a queen on s given occ.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return magic.Bishop(s, occ) | magic.Rook(s, occ)
}
