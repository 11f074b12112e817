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

// Package mailbox implements an 8x8 mailbox chessboard representation.
// https://www.chessprogramming.org/8x8_Board
package mailbox

import (
	"fmt"
	"strconv"
	"strings"

	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
)

// Board represents an 8x8 chessboard of pieces, indexed by square.Square.
type Board [square.N]piece.Piece

// String converts a Board into its human readable box-drawing
// representation, rank 8 first.
func (b Board) String() string {
	var s strings.Builder

	s.WriteString("+---+---+---+---+---+---+---+---+\n")

	for r := square.Rank8; r >= square.Rank1; r-- {
		s.WriteString("| ")
		for f := square.FileA; f <= square.FileH; f++ {
			s.WriteString(b[square.From(f, r)].String())
			s.WriteString(" | ")
		}
		fmt.Fprintln(&s, int(r)+1)
		s.WriteString("+---+---+---+---+---+---+---+---+\n")
	}

	s.WriteString("  a   b   c   d   e   f   g   h\n")
	return s.String()
}

// FEN generates the placement field of a FEN string representing the
// current Board position.
func (b Board) FEN() string {
	var sb strings.Builder

	for r := square.Rank8; r >= square.Rank1; r-- {
		empty := 0
		for f := square.FileA; f <= square.FileH; f++ {
			p := b[square.From(f, r)]
			if p == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != square.Rank1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
