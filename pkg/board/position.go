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

// Package board implements the mutable chess position: the by-square and
// by-bitboard representation, legal move generation, and the make/unmake
// engine that keeps the Zobrist hash and evaluation accumulator current.
package board

import (
	"fmt"

	"laptudirm.com/x/corepos/pkg/attacks"
	"laptudirm.com/x/corepos/pkg/bitboard"
	"laptudirm.com/x/corepos/pkg/castling"
	"laptudirm.com/x/corepos/pkg/eval"
	"laptudirm.com/x/corepos/pkg/mailbox"
	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
	"laptudirm.com/x/corepos/pkg/zobrist"
)

// Position represents the full state of a chess position: a by-square
// mailbox, per-(color,type) bitboards, side to move, castling rights, the
// en-passant target, and the incrementally-maintained Zobrist hash and
// evaluation accumulator.
type Position struct {
	Hash    zobrist.Key
	Squares mailbox.Board

	PieceBBs [piece.TypeN]bitboard.Board
	ColorBBs [piece.ColorN]bitboard.Board

	Kings [piece.ColorN]square.Square

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights

	Eval eval.Accumulator

	Plys      int
	FullMoves int
	DrawClock int
}

// Empty returns a Position with no pieces, White to move, no castling
// rights, and no en-passant target.
func Empty() *Position {
	return &Position{
		EnPassantTarget: square.None,
		FullMoves:       1,
	}
}

// New returns the standard starting Position.
func New() *Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic("board: bad start fen: " + err.Error())
	}
	return p
}

// String converts a Position into a human-readable string.
func (p *Position) String() string {
	return fmt.Sprintf("%s\nFen: %s\nKey: %X\n", p.Squares, p.FEN(), p.Hash)
}

// Occupancy returns the set of every occupied square.
func (p *Position) Occupancy() bitboard.Board {
	return p.ColorBBs[piece.White] | p.ColorBBs[piece.Black]
}

// Pawns, Knights, Bishops, Rooks, Queens, and King return the bitboard of
// the given color's pieces of that type.
func (p *Position) Pawns(c piece.Color) bitboard.Board   { return p.PieceBBs[piece.Pawn] & p.ColorBBs[c] }
func (p *Position) Knights(c piece.Color) bitboard.Board { return p.PieceBBs[piece.Knight] & p.ColorBBs[c] }
func (p *Position) Bishops(c piece.Color) bitboard.Board { return p.PieceBBs[piece.Bishop] & p.ColorBBs[c] }
func (p *Position) Rooks(c piece.Color) bitboard.Board   { return p.PieceBBs[piece.Rook] & p.ColorBBs[c] }
func (p *Position) Queens(c piece.Color) bitboard.Board  { return p.PieceBBs[piece.Queen] & p.ColorBBs[c] }
func (p *Position) King(c piece.Color) bitboard.Board    { return p.PieceBBs[piece.King] & p.ColorBBs[c] }

// KingSquare returns the square of the given color's king.
func (p *Position) KingSquare(c piece.Color) square.Square {
	return p.Kings[c]
}

// ClearSquare removes whatever piece sits on s, updating the mailbox,
// bitboards, and Zobrist hash.
func (p *Position) ClearSquare(s square.Square) piece.Piece {
	pc := p.Squares[s]

	p.ColorBBs[pc.Color()].Unset(s)
	p.PieceBBs[pc.Type()].Unset(s)
	p.Squares[s] = piece.NoPiece
	p.Hash ^= zobrist.PieceSquare[pc][s]
	p.Eval.RemovePiece(pc, s)

	return pc
}

// FillSquare places pc on s, updating the mailbox, bitboards, and Zobrist
// hash.
func (p *Position) FillSquare(s square.Square, pc piece.Piece) {
	c := pc.Color()
	t := pc.Type()

	p.ColorBBs[c].Set(s)
	p.PieceBBs[t].Set(s)
	p.Squares[s] = pc
	p.Hash ^= zobrist.PieceSquare[pc][s]
	p.Eval.AddPiece(pc, s)

	if t == piece.King {
		p.Kings[c] = s
	}
}

// movePiece relocates the piece on from to to, equivalent to but cheaper
// than ClearSquare(from) followed by FillSquare(to, piece). to must be
// empty.
func (p *Position) movePiece(from, to square.Square) {
	pc := p.Squares[from]
	c := pc.Color()
	t := pc.Type()

	p.ColorBBs[c].Unset(from)
	p.ColorBBs[c].Set(to)
	p.PieceBBs[t].Unset(from)
	p.PieceBBs[t].Set(to)

	p.Squares[from] = piece.NoPiece
	p.Squares[to] = pc

	p.Hash ^= zobrist.PieceSquare[pc][from]
	p.Hash ^= zobrist.PieceSquare[pc][to]

	p.Eval.RemovePiece(pc, from)
	p.Eval.AddPiece(pc, to)

	if t == piece.King {
		p.Kings[c] = to
	}
}

// AttackersOf returns the set of by's pieces that attack s, given the
// supplied occupancy. Passing an occupancy other than p.Occupancy() lets
// callers simulate a square being vacated, e.g. when testing whether a
// king's destination is attacked once the king itself stops blocking a
// ray, or when re-deriving en-passant discovered checks.
func (p *Position) AttackersOf(s square.Square, by piece.Color, occ bitboard.Board) bitboard.Board {
	pawns := attacks.Pawn[by.Other()][s] & p.Pawns(by)
	knights := attacks.Knight[s] & p.Knights(by)
	king := attacks.King[s] & p.King(by)

	queens := p.Queens(by)
	diagonal := attacks.Bishop(s, occ) & (p.Bishops(by) | queens)
	straight := attacks.Rook(s, occ) & (p.Rooks(by) | queens)

	return pawns | knights | king | diagonal | straight
}

// IsAttacked reports whether s is attacked by a piece of color by, given
// the current board occupancy.
func (p *Position) IsAttacked(s square.Square, by piece.Color) bool {
	return p.AttackersOf(s, by, p.Occupancy()) != bitboard.Empty
}

// IsInCheck reports whether c's king is currently attacked.
func (p *Position) IsInCheck(c piece.Color) bool {
	return p.IsAttacked(p.Kings[c], c.Other())
}

// Checkers returns the set of the opponent's pieces directly checking c's
// king.
func (p *Position) Checkers(c piece.Color) bitboard.Board {
	return p.AttackersOf(p.Kings[c], c.Other(), p.Occupancy())
}

// PinnedPieces returns the pin rays of c's king, split by whether the
// pinning ray is a file/rank (pinnedHV) or a diagonal (pinnedD). A ray is
// included when an enemy slider's ray to the king, computed as if the king
// itself were that slider, is blocked by exactly one of c's pieces; the
// mask holds every square between the king and that slider plus the
// slider's own square. A piece of c is pinned if it stands on one of
// these masks, and a pinned piece may only move within its mask.
func (p *Position) PinnedPieces(c piece.Color) (pinnedHV, pinnedD bitboard.Board) {
	them := c.Other()
	kingSq := p.Kings[c]

	friends := p.ColorBBs[c]
	enemies := p.ColorBBs[them]

	for rooks := (p.Rooks(them) | p.Queens(them)) & attacks.Rook(kingSq, enemies); rooks != bitboard.Empty; {
		sniper := rooks.Pop()
		ray := bitboard.Between(kingSq, sniper) | bitboard.Squares[sniper]
		if (ray & friends).Count() == 1 {
			pinnedHV |= ray
		}
	}

	for bishops := (p.Bishops(them) | p.Queens(them)) & attacks.Bishop(kingSq, enemies); bishops != bitboard.Empty; {
		sniper := bishops.Pop()
		ray := bitboard.Between(kingSq, sniper) | bitboard.Squares[sniper]
		if (ray & friends).Count() == 1 {
			pinnedD |= ray
		}
	}

	return pinnedHV, pinnedD
}

// seenSquares returns every square attacked by a color's pieces, with its
// own king excluded as a blocker (the king must move off a ray, so the
// squares behind it are also unsafe for it to retreat to).
func (p *Position) seenSquares(by piece.Color) bitboard.Board {
	blockers := p.Occupancy() &^ p.King(by.Other())

	seen := attacks.PawnsLeft(p.Pawns(by), by) | attacks.PawnsRight(p.Pawns(by), by)

	for knights := p.Knights(by); knights != bitboard.Empty; {
		seen |= attacks.Knight[knights.Pop()]
	}
	for bishops := p.Bishops(by); bishops != bitboard.Empty; {
		seen |= attacks.Bishop(bishops.Pop(), blockers)
	}
	for rooks := p.Rooks(by); rooks != bitboard.Empty; {
		seen |= attacks.Rook(rooks.Pop(), blockers)
	}
	for queens := p.Queens(by); queens != bitboard.Empty; {
		seen |= attacks.Queen(queens.Pop(), blockers)
	}

	seen |= attacks.King[p.Kings[by]]

	return seen
}
