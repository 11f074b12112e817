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

// between[a][b] is the open (exclusive-exclusive) set of squares strictly
// between a and b along a shared rank, file, or diagonal. Empty if a and b
// are not aligned, adjacent, or equal.
var between [square.N][square.N]Board

// line[a][b] is the full board-clipped line through a and b, inclusive of
// both endpoints. Empty if a and b are not aligned or are equal.
var line [square.N][square.N]Board

// rayDeltas are the file/rank steps of the eight compass directions.
var rayDeltas = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// bit returns the singleton board of s. It does not read Squares, which
// tables.go's init fills only after this file's init has run.
func bit(s square.Square) Board {
	return Board(1) << uint(s)
}

func init() {
	for a := square.A1; a <= square.H8; a++ {
		for _, d := range rayDeltas {
			af, ar := int(a.File()), int(a.Rank())
			var ray Board
			f, r := af+d[0], ar+d[1]
			for f >= 0 && f < 8 && r >= 0 && r < 8 {
				b := square.From(square.File(f), square.Rank(r))
				ray |= bit(b)
				between[a][b] = ray &^ bit(b)

				full := ray
				// extend the line backwards through a to the board edge.
				bf, br := af-d[0], ar-d[1]
				for bf >= 0 && bf < 8 && br >= 0 && br < 8 {
					full |= bit(square.From(square.File(bf), square.Rank(br)))
					bf -= d[0]
					br -= d[1]
				}
				full |= bit(a)
				line[a][b] = full

				f += d[0]
				r += d[1]
			}
		}
	}
}

// Between returns the open set of squares strictly between a and b along a
// shared rank, file, or diagonal. It is empty if a and b do not share one.
func Between(a, b square.Square) Board {
	return between[a][b]
}

// Line returns the full board-clipped line through a and b, inclusive of
// both squares. It is empty if a and b do not share a rank, file, or
// diagonal.
func Line(a, b square.Square) Board {
	return line[a][b]
}
