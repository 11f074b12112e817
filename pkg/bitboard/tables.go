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

package bitboard

import "laptudirm.com/x/corepos/pkg/square"

// Squares holds the singleton bitboard of every square.
var Squares [square.N]Board

// Files holds the bitboard of every square on a given file.
var Files [square.FileN]Board

// Ranks holds the bitboard of every square on a given rank.
var Ranks [square.RankN]Board

// Diagonals holds the bitboard of every square on a given a1-h8-direction
// diagonal, indexed by square.Diagonal.
var Diagonals [square.DiagonalN]Board

// AntiDiagonals holds the bitboard of every square on a given
// a8-h1-direction diagonal, indexed by square.AntiDiagonal.
var AntiDiagonals [square.AntiDiagonalN]Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = Board(1) << uint(s)
		Files[s.File()] |= Squares[s]
		Ranks[s.Rank()] |= Squares[s]
		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}
}
