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

package magic

import (
	"laptudirm.com/x/corepos/pkg/bitboard"
	"laptudirm.com/x/corepos/pkg/square"
)

// entry holds the per-square data needed to probe a sliding piece's flat
// attack table.
type entry struct {
	mask   bitboard.Board // relevant occupancy squares
	number uint64         // magic multiplier
	shift  uint           // 64 - relevant occupancy bit count
	offset int            // index of this square's block in the flat table
}

var (
	bishopEntries [square.N]entry
	rookEntries   [square.N]entry

	bishopTable []bitboard.Board
	rookTable   []bitboard.Board
)

var bishopDeltas = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDeltas = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

func init() {
	buildTable(bishopEntries[:], &bishopTable, bishopDeltas, bishopNumbers)
	buildTable(rookEntries[:], &rookTable, rookDeltas, rookNumbers)
}

// buildTable constructs the flat attack table for one piece kind using the
// supplied magic numbers. It enumerates every occupancy subset of each
// square's relevant-occupancy mask (by counting through 2^bits indices and
// mapping each index onto the mask with subsetOf) and stores
// the resulting attack bitboard at the index the magic number maps it to.
// This constructs a lookup table from a given magic; it never searches
// for one.
func buildTable(entries []entry, table *[]bitboard.Board, deltas [4][2]int, numbers [64]uint64) {
	offset := 0
	for s := square.A1; s <= square.H8; s++ {
		mask := relevantOccupancy(s, deltas)
		bitCount := mask.Count()
		size := 1 << bitCount

		entries[s] = entry{
			mask:   mask,
			number: numbers[s],
			shift:  uint(64 - bitCount),
			offset: offset,
		}
		offset += size
	}

	*table = make([]bitboard.Board, offset)

	for s := square.A1; s <= square.H8; s++ {
		e := &entries[s]
		bitCount := 64 - int(e.shift)
		for i := 0; i < 1<<bitCount; i++ {
			occ := subsetOf(i, e.mask)
			index := (uint64(occ) * e.number) >> e.shift
			(*table)[e.offset+int(index)] = raysAttack(s, occ, deltas)
		}
	}
}

// relevantOccupancy returns the squares whose occupancy can possibly
// affect a slider's attack set from s, excluding the board edge in each
// ray direction (an edge occupant never blocks anything beyond it).
func relevantOccupancy(s square.Square, deltas [4][2]int) bitboard.Board {
	var b bitboard.Board
	f, r := int(s.File()), int(s.Rank())
	for _, d := range deltas {
		nf, nr := f+d[0], r+d[1]
		for onBoard(nf, nr) && onBoard(nf+d[0], nr+d[1]) {
			b.Set(square.From(square.File(nf), square.Rank(nr)))
			nf += d[0]
			nr += d[1]
		}
	}
	return b
}

// raysAttack returns the squares a slider on s attacks given the full
// board occupancy occ, stopping at and including the first blocker in
// each direction.
func raysAttack(s square.Square, occ bitboard.Board, deltas [4][2]int) bitboard.Board {
	var b bitboard.Board
	f, r := int(s.File()), int(s.Rank())
	for _, d := range deltas {
		nf, nr := f+d[0], r+d[1]
		for onBoard(nf, nr) {
			to := square.From(square.File(nf), square.Rank(nr))
			b.Set(to)
			if occ.IsSet(to) {
				break
			}
			nf += d[0]
			nr += d[1]
		}
	}
	return b
}

func onBoard(f, r int) bool {
	return f >= 0 && f < 8 && r >= 0 && r < 8
}

// subsetOf returns the index-th subset of mask's set bits, treating index
// as a bitmask over mask's population: bit i of index selects the i-th
// lowest set square of mask.
func subsetOf(index int, mask bitboard.Board) bitboard.Board {
	var occ bitboard.Board
	m := mask
	for i := 0; m != 0; i++ {
		sq := m.Pop()
		if index&(1<<i) != 0 {
			occ.Set(sq)
		}
	}
	return occ
}

// Bishop returns the attack bitboard of a bishop on s given occupancy occ.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	return probe(&bishopEntries[s], bishopTable, occ)
}

// Rook returns the attack bitboard of a rook on s given occupancy occ.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	return probe(&rookEntries[s], rookTable, occ)
}

func probe(e *entry, table []bitboard.Board, occ bitboard.Board) bitboard.Board {
	occ &= e.mask
	index := (uint64(occ) * e.number) >> e.shift
	return table[e.offset+int(index)]
}
