// Package castling implements castling rights tracking and the static
// per-side geometry (king/rook squares, required-empty and required-safe
// paths) needed by the move generator.
package castling

import (
	"laptudirm.com/x/corepos/pkg/bitboard"
	"laptudirm.com/x/corepos/pkg/piece"
	"laptudirm.com/x/corepos/pkg/square"
)

// Rights is a 4-bit mask of available castling rights, bit
// 2*color+side identifying each right.
type Rights byte

// NewRights parses a castling rights field ("KQkq", "Kq", "-", ...).
func NewRights(r string) Rights {
	var rights Rights

	if r == "-" {
		return None
	}

	if r != "" && r[0] == 'K' {
		r = r[1:]
		rights |= WhiteKingside
	}

	if r != "" && r[0] == 'Q' {
		r = r[1:]
		rights |= WhiteQueenside
	}

	if r != "" && r[0] == 'k' {
		r = r[1:]
		rights |= BlackKingside
	}

	if r != "" && r[0] == 'q' {
		rights |= BlackQueenside
	}

	return rights
}

const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	Kingside  Rights = WhiteKingside | BlackKingside
	Queenside Rights = WhiteQueenside | BlackQueenside

	All Rights = White | Black

	N = 16
)

func (c Rights) String() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}

	if c&WhiteQueenside != 0 {
		str += "Q"
	}

	if c&BlackKingside != 0 {
		str += "k"
	}

	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}

// ForColor returns the subset of rights belonging to the given color.
func (c Rights) ForColor(color piece.Color) Rights {
	if color == piece.White {
		return c & White
	}
	return c & Black
}

// Side identifies kingside or queenside castling.
type Side int

const (
	KingSide Side = iota
	QueenSide

	SideN = 2
)

// Right returns the Rights bit corresponding to the given color and side.
func Right(c piece.Color, s Side) Rights {
	return 1 << (2*Rights(c) + Rights(s))
}

// Info holds the static geometry of one color/side castling move: the
// king's start and destination squares, the rook's start and destination
// squares, the squares that must be empty for the move to be pseudo-legal,
// and the squares (including the king's start and destination) that must
// not be attacked by the opponent for the move to be legal.
type Info struct {
	KingFrom, KingTo square.Square
	RookFrom, RookTo square.Square
	EmptyMask        bitboard.Board
	SafeMask         bitboard.Board
}

// Infos holds the castling geometry indexed by color and side.
var Infos [piece.ColorN][SideN]Info

func init() {
	Infos[piece.White][KingSide] = Info{
		KingFrom: square.E1, KingTo: square.G1,
		RookFrom: square.H1, RookTo: square.F1,
	}
	Infos[piece.White][QueenSide] = Info{
		KingFrom: square.E1, KingTo: square.C1,
		RookFrom: square.A1, RookTo: square.D1,
	}
	Infos[piece.Black][KingSide] = Info{
		KingFrom: square.E8, KingTo: square.G8,
		RookFrom: square.H8, RookTo: square.F8,
	}
	Infos[piece.Black][QueenSide] = Info{
		KingFrom: square.E8, KingTo: square.C8,
		RookFrom: square.A8, RookTo: square.D8,
	}

	for c := piece.White; c <= piece.Black; c++ {
		for s := KingSide; s <= QueenSide; s++ {
			info := &Infos[c][s]

			// the empty mask is every square strictly between the rook
			// and king's start squares, plus the king and rook's
			// destinations, excluding their own start squares.
			empty := bitboard.Between(info.RookFrom, info.KingFrom)
			empty.Set(info.KingTo)
			empty.Set(info.RookTo)
			empty.Unset(info.KingFrom)
			empty.Unset(info.RookFrom)
			info.EmptyMask = empty

			// the king must not pass through or land on an attacked
			// square; the rook's path is not checked for attacks.
			safe := bitboard.Between(info.KingFrom, info.KingTo)
			safe.Set(info.KingFrom)
			safe.Set(info.KingTo)
			info.SafeMask = safe
		}
	}
}
