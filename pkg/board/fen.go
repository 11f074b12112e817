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

package board

import (
	"fmt"
	"strconv"
	"strings"

	"laptudirm.com/x/corepos/pkg/castling"
	"laptudirm.com/x/corepos/pkg/fen"
	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
	"laptudirm.com/x/corepos/pkg/zobrist"
)

// StartFEN is the FEN of the standard starting position.
const StartFEN = fen.Start

// FromFEN builds a Position from a FEN string. It returns an error rather
// than a partially-built Position if the string is malformed.
func FromFEN(s string) (p *Position, err error) {
	// the piece, color, and square parsers panic on an invalid id; report
	// that as a parse error instead.
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("%w: %v", fen.ErrNoPosition, r)
		}
	}()

	fields, err := fen.Parse(s)
	if err != nil {
		return nil, err
	}

	p = Empty()

	p.SideToMove = piece.NewColor(fields[fen.SideToMove])
	if p.SideToMove == piece.Black {
		p.Hash ^= zobrist.SideToMove
	}

	ranks := strings.Split(fields[fen.Placement], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: %d ranks in placement", fen.ErrNoPosition, len(ranks))
	}

	for i, rank := range ranks {
		r := square.Rank8 - square.Rank(i)
		f := square.FileA
		for _, id := range rank {
			if id >= '1' && id <= '8' {
				f += square.File(id - '0')
				continue
			}
			if f > square.FileH {
				return nil, fmt.Errorf("%w: overflowing rank %q", fen.ErrNoPosition, rank)
			}
			p.FillSquare(square.From(f, r), piece.NewFromString(string(id)))
			f++
		}
		if f != square.FileH+1 {
			return nil, fmt.Errorf("%w: rank %q does not cover eight files", fen.ErrNoPosition, rank)
		}
	}

	p.CastlingRights = castling.NewRights(fields[fen.Castling])
	p.Hash ^= zobrist.Castling[p.CastlingRights]

	p.EnPassantTarget = square.New(fields[fen.EnPassant])
	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}

	p.DrawClock, _ = strconv.Atoi(fields[fen.HalfMove])
	p.FullMoves, _ = strconv.Atoi(fields[fen.FullMove])

	return p, nil
}

// FEN returns the FEN string of the current Position.
func (p *Position) FEN() string {
	fields := fen.Fields{
		fen.Placement:  p.Squares.FEN(),
		fen.SideToMove: p.SideToMove.String(),
		fen.Castling:   p.CastlingRights.String(),
		fen.EnPassant:  p.EnPassantTarget.String(),
		fen.HalfMove:   strconv.Itoa(p.DrawClock),
		fen.FullMove:   strconv.Itoa(p.FullMoves),
	}
	return fields.String()
}
