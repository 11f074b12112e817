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

// Package move implements the compact Move encoding passed to
// Position.Make, and the larger Token encoding Make returns so Unmake can
// reverse a move without the caller keeping any undo state of its own.
package move

import (
	"fmt"

	"laptudirm.com/x/corepos/pkg/castling"
	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
)

// Move is a 16-bit encoding of a move: from:6 | to:6 | info:4.
type Move uint16

const (
	fromOffset = 0
	toOffset   = 6
	infoOffset = 12

	fromMask = 0x3f
	toMask   = 0x3f
	infoMask = 0xf
)

// Info identifies the kind of a move, packed in a Move's top 4 bits.
type Info uint16

const (
	Quiet       Info = 0
	DoublePush  Info = 1
	KingCastle  Info = 2
	QueenCastle Info = 3
	Capture     Info = 4
	EnPassant   Info = 5
	// 6, 7 unused

	PromoQueen  Info = 8
	PromoRook   Info = 9
	PromoBishop Info = 10
	PromoKnight Info = 11

	PromoCaptureQueen  Info = 12
	PromoCaptureRook   Info = 13
	PromoCaptureBishop Info = 14
	PromoCaptureKnight Info = 15
)

// promoType maps a promotion Info value to the promoted-to piece type.
var promoType = map[Info]piece.Type{
	PromoQueen: piece.Queen, PromoCaptureQueen: piece.Queen,
	PromoRook: piece.Rook, PromoCaptureRook: piece.Rook,
	PromoBishop: piece.Bishop, PromoCaptureBishop: piece.Bishop,
	PromoKnight: piece.Knight, PromoCaptureKnight: piece.Knight,
}

// promoInfo maps a promoted-to piece type to its {quiet, capture} Info
// values.
var promoInfo = map[piece.Type][2]Info{
	piece.Queen:  {PromoQueen, PromoCaptureQueen},
	piece.Rook:   {PromoRook, PromoCaptureRook},
	piece.Bishop: {PromoBishop, PromoCaptureBishop},
	piece.Knight: {PromoKnight, PromoCaptureKnight},
}

// New packs a from/to/info triple into a Move.
func New(from, to square.Square, info Info) Move {
	return Move(from)<<fromOffset | Move(to)<<toOffset | Move(info)<<infoOffset
}

// NewPromotion packs a promotion move for the given promoted-to piece type.
func NewPromotion(from, to square.Square, promo piece.Type, capture bool) Move {
	infos, ok := promoInfo[promo]
	if !ok {
		panic("move: bad promotion piece type")
	}
	if capture {
		return New(from, to, infos[1])
	}
	return New(from, to, infos[0])
}

// None is the zero Move, used as a sentinel "no move".
const None Move = 0

// From returns the move's origin square.
func (m Move) From() square.Square {
	return square.Square((m >> fromOffset) & fromMask)
}

// To returns the move's destination square.
func (m Move) To() square.Square {
	return square.Square((m >> toOffset) & toMask)
}

// Info returns the move's kind.
func (m Move) Info() Info {
	return Info((m >> infoOffset) & infoMask)
}

// IsCapture reports whether the move removes an enemy piece from the
// board (including en-passant, excluding castling).
func (m Move) IsCapture() bool {
	switch m.Info() {
	case Capture, EnPassant, PromoCaptureQueen, PromoCaptureRook,
		PromoCaptureBishop, PromoCaptureKnight:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	_, ok := promoType[m.Info()]
	return ok
}

// Promotion returns the piece type the move promotes to. Only valid when
// IsPromotion is true.
func (m Move) Promotion() piece.Type {
	return promoType[m.Info()]
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Info() == EnPassant
}

// IsDoublePush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePush() bool {
	return m.Info() == DoublePush
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Info() == KingCastle || m.Info() == QueenCastle
}

// CastleSide returns the castling side of a castling move. Only valid when
// IsCastle is true.
func (m Move) CastleSide() castling.Side {
	if m.Info() == KingCastle {
		return castling.KingSide
	}
	return castling.QueenSide
}

// String returns the move in coordinate notation (e.g. "e2e4", "a7a8q").
func (m Move) String() string {
	if m.IsPromotion() {
		return fmt.Sprintf("%s%s%s", m.From(), m.To(), m.Promotion())
	}
	return fmt.Sprintf("%s%s", m.From(), m.To())
}
