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
	"laptudirm.com/x/corepos/pkg/castling"
	"laptudirm.com/x/corepos/pkg/move"
	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
	"laptudirm.com/x/corepos/pkg/zobrist"
)

// up returns the square one step towards c's promotion rank from s.
func up(s square.Square, c piece.Color) square.Square {
	if c == piece.White {
		return s + 8
	}
	return s - 8
}

// down returns the square one step towards c's own back rank from s.
func down(s square.Square, c piece.Color) square.Square {
	return up(s, c.Other())
}

// rookStartRight maps a rook's starting square to the right it guards, so
// moving or capturing a rook off that square revokes the right.
var rookStartRight [square.N]castling.Rights

func init() {
	rookStartRight[square.A1] = castling.WhiteQueenside
	rookStartRight[square.H1] = castling.WhiteKingside
	rookStartRight[square.A8] = castling.BlackQueenside
	rookStartRight[square.H8] = castling.BlackKingside
}

// colorRights is the full castling-rights mask belonging to c.
func colorRights(c piece.Color) castling.Rights {
	if c == piece.White {
		return castling.White
	}
	return castling.Black
}

// Make plays m on the position, assumed to be legal, and returns a Token
// that Unmake can later use to restore the position exactly.
func (p *Position) Make(m move.Move) move.Token {
	from := m.From()
	to := m.To()
	info := m.Info()

	us := p.SideToMove
	them := us.Other()

	priorEP := p.EnPassantTarget
	priorRights := p.CastlingRights
	movedType := p.Squares[from].Type()

	p.Hash ^= zobrist.Castling[p.CastlingRights]

	captured := piece.NoType

	switch info {
	case move.EnPassant:
		capSq := down(to, us)
		captured = p.ClearSquare(capSq).Type()
	default:
		if m.IsCapture() {
			captured = p.Squares[to].Type()
			p.CastlingRights &^= rookStartRight[to]
			p.ClearSquare(to)
		}
	}

	if m.IsPromotion() {
		p.ClearSquare(from)
		p.FillSquare(to, piece.New(m.Promotion(), us))
	} else {
		p.movePiece(from, to)
	}

	if m.IsCastle() {
		info := castling.Infos[us][m.CastleSide()]
		p.movePiece(info.RookFrom, info.RookTo)
	}

	switch {
	case movedType == piece.King:
		p.CastlingRights &^= colorRights(us)
	default:
		p.CastlingRights &^= rookStartRight[from]
	}
	p.CastlingRights &^= rookStartRight[to]

	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}
	if info == move.DoublePush {
		p.EnPassantTarget = to
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	} else {
		p.EnPassantTarget = square.None
	}

	p.Hash ^= zobrist.Castling[p.CastlingRights]

	p.Plys++
	if p.SideToMove = them; p.SideToMove == piece.White {
		p.FullMoves++
	}
	p.Hash ^= zobrist.SideToMove

	// DrawClock is parsed from FEN and kept current, but never enforced
	// (the fifty-move rule is out of scope).
	if captured != piece.NoType || movedType == piece.Pawn {
		p.DrawClock = 0
	} else {
		p.DrawClock++
	}

	return move.NewToken(m, captured, priorEP, priorRights)
}

// Unmake reverses the move encoded in t, restoring the position to exactly
// the state it was in before the matching Make call.
func (p *Position) Unmake(t move.Token) {
	m := t.Move()
	from := m.From()
	to := m.To()
	info := m.Info()

	if p.SideToMove = p.SideToMove.Other(); p.SideToMove == piece.Black {
		p.FullMoves--
	}
	p.Plys--
	p.Hash ^= zobrist.SideToMove

	us := p.SideToMove

	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}
	if t.PriorEnPassantValid() {
		// a pending en-passant target was left by whichever side last
		// moved, i.e. the side that is not us.
		rank := square.Rank4
		if us == piece.White {
			rank = square.Rank5
		}
		p.EnPassantTarget = square.From(t.PriorEnPassantFile(), rank)
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	} else {
		p.EnPassantTarget = square.None
	}

	p.Hash ^= zobrist.Castling[p.CastlingRights]
	p.CastlingRights = t.PriorCastlingRights()
	p.Hash ^= zobrist.Castling[p.CastlingRights]

	if m.IsCastle() {
		info := castling.Infos[us][m.CastleSide()]
		p.movePiece(info.RookTo, info.RookFrom)
	}

	if m.IsPromotion() {
		p.ClearSquare(to)
		p.FillSquare(from, piece.New(piece.Pawn, us))
	} else {
		p.movePiece(to, from)
	}

	if info == move.EnPassant {
		p.FillSquare(down(to, us), piece.New(piece.Pawn, us.Other()))
	} else if m.IsCapture() {
		p.FillSquare(to, piece.New(t.Captured(), us.Other()))
	}

	// Make incremented DrawClock for every move that was neither a capture
	// nor a pawn move.
	if t.Captured() == piece.NoType && p.Squares[from].Type() != piece.Pawn {
		p.DrawClock--
	}
}
