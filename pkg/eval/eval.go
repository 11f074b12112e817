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

// Package eval implements the incremental material/positional accumulator
// a Position keeps up to date on every Make/Unmake, so callers never need
// to rescan the board to score it. The weights here are a concrete,
// swappable implementation of the scoring interface; nothing in pkg/board
// depends on these specific values.
package eval

import (
	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
)

// Score is a centipawn evaluation score.
type Score int32

// Accumulator holds the running (material, positional) score of a
// position from White's perspective, split per color so either side's
// component can be added or removed in O(1) as pieces move.
type Accumulator struct {
	material   [piece.ColorN]Score
	positional [piece.ColorN]Score
}

// AddPiece adds p's contribution at square s to the accumulator.
func (a *Accumulator) AddPiece(p piece.Piece, s square.Square) {
	c := p.Color()
	a.material[c] += Score(p.Type().Value())
	a.positional[c] += pieceSquareValue(p, s)
}

// RemovePiece removes p's contribution at square s from the accumulator.
func (a *Accumulator) RemovePiece(p piece.Piece, s square.Square) {
	c := p.Color()
	a.material[c] -= Score(p.Type().Value())
	a.positional[c] -= pieceSquareValue(p, s)
}

// Score returns the accumulator's score from the perspective of pov: a
// positive score favors pov.
func (a *Accumulator) Score(pov piece.Color) Score {
	us := a.material[pov] + a.positional[pov]
	them := a.material[pov.Other()] + a.positional[pov.Other()]
	return us - them
}

// Material returns the total material score, white minus black.
func (a *Accumulator) Material() Score {
	return a.material[piece.White] - a.material[piece.Black]
}

func pieceSquareValue(p piece.Piece, s square.Square) Score {
	if p.Color() == piece.Black {
		s = s.Mirror()
	}
	return pieceSquareTable[p.Type()][s]
}
