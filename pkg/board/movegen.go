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
	"laptudirm.com/x/corepos/pkg/attacks"
	"laptudirm.com/x/corepos/pkg/bitboard"
	"laptudirm.com/x/corepos/pkg/castling"
	"laptudirm.com/x/corepos/pkg/move"
	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
)

// GenerationKind selects which destination squares GenerateMoves
// considers for non-king pieces.
type GenerationKind int

const (
	// Quiet generates moves to empty squares only.
	Quiet GenerationKind = iota
	// Capture generates moves to opponent-occupied squares only.
	Capture
	// Evasion generates moves that resolve the side to move's check: a
	// block or a capture of the checking piece. Only valid when in check.
	Evasion
	// NonEvasion generates moves to any non-friendly square. Only valid
	// when not in check.
	NonEvasion
)

// LegalMoves returns every legal move available to the side to move:
// evasions if its king is in check, non-evasions otherwise.
func (p *Position) LegalMoves() []move.Move {
	if p.IsInCheck(p.SideToMove) {
		return p.GenerateMoves(Evasion)
	}
	return p.GenerateMoves(NonEvasion)
}

// moveGen holds the state shared by one call to GenerateMoves.
type moveGen struct {
	*Position

	kind GenerationKind

	us, them piece.Color

	friends, enemies, occupied bitboard.Board

	checkN    int
	checkMask bitboard.Board

	pinnedHV, pinnedD bitboard.Board

	seenByEnemy bitboard.Board

	target     bitboard.Board
	kingTarget bitboard.Board
}

// GenerateMoves produces the full legal move list for the side to move
// under the given generation kind. Quiet and Capture are meant for
// quiescence-style partial generation; Evasion and NonEvasion (selected by
// LegalMoves based on check status) produce the complete legal move list.
func (p *Position) GenerateMoves(kind GenerationKind) []move.Move {
	g := &moveGen{Position: p, kind: kind}
	g.init()

	moves := make([]move.Move, 0, 48)

	g.appendKingMoves(&moves)
	if g.checkN >= 2 {
		return moves
	}

	g.appendKnightMoves(&moves)
	g.appendBishopMoves(&moves)
	g.appendRookMoves(&moves)
	g.appendQueenMoves(&moves)
	g.appendPawnMoves(&moves)

	return moves
}

func (g *moveGen) init() {
	g.us = g.SideToMove
	g.them = g.us.Other()

	g.friends = g.ColorBBs[g.us]
	g.enemies = g.ColorBBs[g.them]
	g.occupied = g.friends | g.enemies

	g.checkN, g.checkMask = g.calculateCheckmask()
	g.pinnedHV, g.pinnedD = g.PinnedPieces(g.us)
	g.seenByEnemy = g.seenSquares(g.them)

	switch g.kind {
	case Quiet:
		g.target = ^g.occupied & g.checkMask
		g.kingTarget = ^g.friends &^ g.seenByEnemy
	case Capture:
		g.target = g.enemies & g.checkMask
		g.kingTarget = g.enemies &^ g.seenByEnemy
	default: // Evasion, NonEvasion
		g.target = ^g.friends & g.checkMask
		g.kingTarget = ^g.friends &^ g.seenByEnemy
	}
}

// calculateCheckmask returns the number of checkers on the side to move's
// king and the check-mask: the set of squares a friendly piece can move to
// in order to resolve a single check (universe when not in check). On a
// double check the count is 2 and the mask is not used, since only king
// moves are generated.
func (g *moveGen) calculateCheckmask() (int, bitboard.Board) {
	kingSq := g.Kings[g.us]

	pawns := g.Pawns(g.them) & attacks.Pawn[g.us][kingSq]
	knights := g.Knights(g.them) & attacks.Knight[kingSq]
	bishops := (g.Bishops(g.them) | g.Queens(g.them)) & attacks.Bishop(kingSq, g.occupied)
	rooks := (g.Rooks(g.them) | g.Queens(g.them)) & attacks.Rook(kingSq, g.occupied)

	checkN := 0
	mask := bitboard.Empty

	switch {
	case pawns != bitboard.Empty:
		mask |= pawns
		checkN++
	case knights != bitboard.Empty:
		mask |= knights
		checkN++
	}

	if bishops != bitboard.Empty {
		if bishops.Count() > 1 {
			checkN += 2
		} else {
			sq := bishops.FirstOne()
			mask |= bitboard.Between(kingSq, sq) | bitboard.Squares[sq]
			checkN++
		}
	}

	if checkN < 2 && rooks != bitboard.Empty {
		if rooks.Count() > 1 {
			checkN += 2
		} else {
			sq := rooks.FirstOne()
			mask |= bitboard.Between(kingSq, sq) | bitboard.Squares[sq]
			checkN++
		}
	}

	if checkN == 0 {
		mask = bitboard.Universe
	}

	return checkN, mask
}

func (g *moveGen) appendKingMoves(moves *[]move.Move) {
	kingSq := g.Kings[g.us]
	destinations := attacks.King[kingSq] & g.kingTarget
	g.serialize(moves, kingSq, destinations)

	if g.checkN == 0 && (g.kind == Quiet || g.kind == NonEvasion) {
		g.appendCastlingMoves(moves)
	}
}

func (g *moveGen) appendCastlingMoves(moves *[]move.Move) {
	for _, side := range [...]castling.Side{castling.KingSide, castling.QueenSide} {
		right := castling.Right(g.us, side)
		if g.CastlingRights&right == 0 {
			continue
		}

		info := castling.Infos[g.us][side]
		if g.occupied&info.EmptyMask != 0 {
			continue
		}
		if g.seenByEnemy&info.SafeMask != 0 {
			continue
		}

		kind := move.KingCastle
		if side == castling.QueenSide {
			kind = move.QueenCastle
		}
		*moves = append(*moves, move.New(info.KingFrom, info.KingTo, kind))
	}
}

func (g *moveGen) appendKnightMoves(moves *[]move.Move) {
	for knights := g.Knights(g.us) &^ (g.pinnedD | g.pinnedHV); knights != bitboard.Empty; {
		from := knights.Pop()
		g.serialize(moves, from, attacks.Knight[from]&g.target)
	}
}

func (g *moveGen) appendBishopMoves(moves *[]move.Move) {
	g.appendSliderMoves(moves, g.Bishops(g.us), attacks.Bishop, g.pinnedD, g.pinnedHV)
}

func (g *moveGen) appendRookMoves(moves *[]move.Move) {
	g.appendSliderMoves(moves, g.Rooks(g.us), attacks.Rook, g.pinnedHV, g.pinnedD)
}

func (g *moveGen) appendQueenMoves(moves *[]move.Move) {
	queens := g.Queens(g.us)
	g.appendSliderMoves(moves, queens, attacks.Bishop, g.pinnedD, g.pinnedHV)
	g.appendSliderMoves(moves, queens, attacks.Rook, g.pinnedHV, g.pinnedD)
}

// appendSliderMoves appends moves for pieces sliding along ownPin's axis
// (diagonal for bishops, horizontal/vertical for rooks). otherPin is the
// pin mask of the other axis: a piece pinned along it cannot move this way
// at all. Queens are passed through twice, once per axis, with the two
// masks swapped.
func (g *moveGen) appendSliderMoves(moves *[]move.Move, sliders bitboard.Board, attack func(square.Square, bitboard.Board) bitboard.Board, ownPin, otherPin bitboard.Board) {
	sliders &^= otherPin

	pinned := sliders & ownPin
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		g.serialize(moves, from, attack(from, g.occupied)&g.target&ownPin)
	}

	unpinned := sliders &^ ownPin
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		g.serialize(moves, from, attack(from, g.occupied)&g.target)
	}
}

func (g *moveGen) serialize(moves *[]move.Move, from square.Square, destinations bitboard.Board) {
	for destinations != bitboard.Empty {
		to := destinations.Pop()
		if g.enemies.IsSet(to) {
			*moves = append(*moves, move.New(from, to, move.Capture))
		} else {
			*moves = append(*moves, move.New(from, to, move.Quiet))
		}
	}
}

func (g *moveGen) appendPawnMoves(moves *[]move.Move) {
	pawns := g.Pawns(g.us)

	promotionRank := bitboard.Ranks[square.Rank8]
	doublePushRank := bitboard.Ranks[square.Rank3]
	if g.us == piece.Black {
		promotionRank = bitboard.Ranks[square.Rank1]
		doublePushRank = bitboard.Ranks[square.Rank6]
	}

	captureTarget := g.enemies & g.checkMask
	pushTarget := ^g.occupied & g.checkMask
	if g.kind == Capture {
		pushTarget = bitboard.Empty // pure-capture generation has no quiet pushes
	} else if g.kind == Quiet {
		captureTarget = bitboard.Empty
	}

	attackers := pawns &^ g.pinnedHV

	unpinnedAttackers := attackers &^ g.pinnedD
	pinnedAttackers := attackers & g.pinnedD

	left := attacks.PawnsLeft(unpinnedAttackers, g.us) & captureTarget
	left |= attacks.PawnsLeft(pinnedAttackers, g.us) & captureTarget & g.pinnedD

	right := attacks.PawnsRight(unpinnedAttackers, g.us) & captureTarget
	right |= attacks.PawnsRight(pinnedAttackers, g.us) & captureTarget & g.pinnedD

	g.appendPawnDestinations(moves, left&^promotionRank, g.us, true, false)
	g.appendPawnDestinations(moves, right&^promotionRank, g.us, false, false)
	g.appendPawnDestinations(moves, left&promotionRank, g.us, true, true)
	g.appendPawnDestinations(moves, right&promotionRank, g.us, false, true)

	pushers := pawns &^ g.pinnedD
	unpinnedPushers := pushers &^ g.pinnedHV
	pinnedPushers := pushers & g.pinnedHV

	singleUnpinned := unpinnedPushers.Up(g.us)
	singlePinned := pinnedPushers.Up(g.us) & g.pinnedHV

	single := (singleUnpinned | singlePinned) &^ g.occupied
	double := single.Up(g.us) & doublePushRank.Up(g.us) & pushTarget
	single &= pushTarget

	g.appendPawnPushes(moves, single&^promotionRank, g.us, false, false)
	g.appendPawnPushes(moves, double, g.us, true, false)
	g.appendPawnPushes(moves, single&promotionRank, g.us, false, true)

	g.appendEnPassant(moves, attackers)
}

// appendPawnDestinations serializes diagonal pawn-capture destinations
// into moves, expanding to all four promotion pieces when promoting.
func (g *moveGen) appendPawnDestinations(moves *[]move.Move, destinations bitboard.Board, c piece.Color, fromLeft, promo bool) {
	for destinations != bitboard.Empty {
		to := destinations.Pop()
		from := down(to, c)
		if fromLeft {
			from = east(from)
		} else {
			from = west(from)
		}
		if promo {
			appendPromotions(moves, from, to, true)
		} else {
			*moves = append(*moves, move.New(from, to, move.Capture))
		}
	}
}

func (g *moveGen) appendPawnPushes(moves *[]move.Move, destinations bitboard.Board, c piece.Color, double, promo bool) {
	for destinations != bitboard.Empty {
		to := destinations.Pop()
		from := down(to, c)
		info := move.Quiet
		if double {
			from = down(from, c)
			info = move.DoublePush
		}
		if promo {
			appendPromotions(moves, from, to, false)
		} else {
			*moves = append(*moves, move.New(from, to, info))
		}
	}
}

func appendPromotions(moves *[]move.Move, from, to square.Square, capture bool) {
	for _, t := range piece.Promotions {
		*moves = append(*moves, move.NewPromotion(from, to, t, capture))
	}
}

// east and west step a square one file over without wrapping-around
// protection; callers only ever apply them to squares already known, from
// the attack bitboard they were extracted from, to have a diagonal
// neighbour on that side.
func east(s square.Square) square.Square { return s + 1 }
func west(s square.Square) square.Square { return s - 1 }

// appendEnPassant appends the en-passant capture, if any, legal for the
// pawns able to attack (i.e. not pinned horizontally/vertically).
func (g *moveGen) appendEnPassant(moves *[]move.Move, attackers bitboard.Board) {
	target := g.EnPassantTarget
	if target == square.None {
		return
	}

	to := up(target, g.us) // the capturing pawn's landing square
	capturedSq := target

	epMask := bitboard.Squares[to] | bitboard.Squares[capturedSq]
	if g.checkMask&epMask == 0 {
		return
	}

	kingSq := g.Kings[g.us]
	enemyRooksQueens := (g.Rooks(g.them) | g.Queens(g.them)) & bitboard.Ranks[target.Rank()]
	isPossiblePin := bitboard.Squares[kingSq]&bitboard.Ranks[target.Rank()] != 0 && enemyRooksQueens != bitboard.Empty

	for froms := attacks.Pawn[g.them][to] & attackers; froms != bitboard.Empty; {
		from := froms.Pop()

		if g.pinnedD.IsSet(from) && !g.pinnedD.IsSet(to) {
			continue
		}

		blockers := g.occupied &^ (bitboard.Squares[from] | bitboard.Squares[capturedSq])
		if isPossiblePin && attacks.Rook(kingSq, blockers)&enemyRooksQueens != 0 {
			continue
		}

		*moves = append(*moves, move.New(from, to, move.EnPassant))
	}
}
