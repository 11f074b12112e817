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

// Package fen tokenizes Forsyth-Edwards Notation strings into their
// constituent fields. It does not interpret the fields; pkg/board builds
// a Position from them.
package fen

import (
	"errors"
	"strings"
)

// ErrNoPosition is returned when a string does not have enough fields to
// be a FEN position.
var ErrNoPosition = errors.New("fen: no position")

// Fields holds the six whitespace-separated fields of a FEN string:
// placement, side to move, castling rights, en-passant target, halfmove
// clock, and fullmove number.
type Fields [6]string

// Placement, SideToMove, Castling, and EnPassant are the four fields the
// core actually interprets; HalfMove and FullMove are tolerated but
// otherwise unused.
const (
	Placement = iota
	SideToMove
	Castling
	EnPassant
	HalfMove
	FullMove
)

// Start is the FEN of the standard starting position.
const Start = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse tokenizes a FEN string into its Fields. The halfmove and fullmove
// fields default to "0" and "1" respectively when omitted. An input with
// fewer than the four mandatory fields is not a position.
func Parse(s string) (Fields, error) {
	tokens := strings.Fields(s)
	if len(tokens) < 4 {
		return Fields{}, ErrNoPosition
	}

	switch len(tokens) {
	case 4:
		tokens = append(tokens, "0", "1")
	case 5:
		tokens = append(tokens, "1")
	}

	return Fields(tokens[:6]), nil
}

// String joins the Fields back into a single FEN string.
func (f Fields) String() string {
	return strings.Join(f[:], " ")
}
