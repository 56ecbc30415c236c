// Copyright (C) 2025 The chesskit authors

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package chess

import (
	"fmt"
	"strconv"
)

// Board holds the piece placement of a chess position: one SquareSet per
// side and one per role, plus the union of all occupied squares. It carries
// no turn, castling or counter information; see [Setup] and [Position] for
// those.
//
// Board is an immutable value. [Board.SetPieceAt] and [Board.RemovePieceAt]
// return new boards.
type Board struct {
	occupied SquareSet
	sides    [2]SquareSet
	roles    [6]SquareSet
}

func roleIndex(r Role) int {
	return int(r) - 1
}

// StandardBoard returns the piece placement of the starting position.
func StandardBoard() Board {
	return Board{
		occupied: 0xffff_0000_0000_ffff,
		sides: [2]SquareSet{
			0x0000_0000_0000_ffff,
			0xffff_0000_0000_0000,
		},
		roles: [6]SquareSet{
			0x00ff_0000_0000_ff00, // pawns
			0x4200_0000_0000_0042, // knights
			0x2400_0000_0000_0024, // bishops
			0x8100_0000_0000_0081, // rooks
			0x0800_0000_0000_0008, // queens
			0x1000_0000_0000_0010, // kings
		},
	}
}

// Occupied returns the set of all occupied squares.
func (b Board) Occupied() SquareSet {
	return b.occupied
}

// BySide returns the set of squares occupied by the given side.
func (b Board) BySide(side Side) SquareSet {
	return b.sides[side]
}

// ByRole returns the set of squares occupied by pieces of the given role,
// either side. The empty set is returned for [NoRole].
func (b Board) ByRole(role Role) SquareSet {
	if role == NoRole {
		return EmptySet
	}
	return b.roles[roleIndex(role)]
}

// ByPiece returns the set of squares occupied by the given piece.
func (b Board) ByPiece(p Piece) SquareSet {
	return b.PiecesOf(p.Side, p.Role)
}

// PiecesOf returns the set of squares holding a piece of the given side and
// role.
func (b Board) PiecesOf(side Side, role Role) SquareSet {
	return b.sides[side] & b.ByRole(role)
}

// RoleAt returns the role of the piece on the given square, or [NoRole] if
// the square is empty.
func (b Board) RoleAt(s Square) Role {
	if !b.occupied.Has(s) {
		return NoRole
	}
	for role := Pawn; role <= King; role++ {
		if b.roles[roleIndex(role)].Has(s) {
			return role
		}
	}
	return NoRole
}

// SideAt returns the side of the piece on the given square. ok is false if
// the square is empty.
func (b Board) SideAt(s Square) (side Side, ok bool) {
	if b.sides[White].Has(s) {
		return White, true
	}
	if b.sides[Black].Has(s) {
		return Black, true
	}
	return White, false
}

// PieceAt returns the piece on the given square, or [NoPiece] if the square
// is empty.
func (b Board) PieceAt(s Square) Piece {
	role := b.RoleAt(s)
	if role == NoRole {
		return NoPiece
	}
	side, _ := b.SideAt(s)
	return Piece{side, role}
}

// KingOf returns the square of the given side's king, or NoSquare if that
// side has no king. If a side somehow has several kings, the lowest square
// wins.
func (b Board) KingOf(side Side) Square {
	return b.PiecesOf(side, King).First()
}

// MaterialCount counts the pieces of the given side per role.
func (b Board) MaterialCount(side Side) map[Role]int {
	count := make(map[Role]int, 6)
	for role := Pawn; role <= King; role++ {
		count[role] = b.PiecesOf(side, role).Size()
	}
	return count
}

// SetPieceAt returns a copy of the board with p placed on s, replacing
// whatever was there.
func (b Board) SetPieceAt(s Square, p Piece) Board {
	if p.Role == NoRole {
		return b.RemovePieceAt(s)
	}
	next := b.RemovePieceAt(s)
	next.occupied = next.occupied.WithSquare(s)
	next.sides[p.Side] = next.sides[p.Side].WithSquare(s)
	next.roles[roleIndex(p.Role)] = next.roles[roleIndex(p.Role)].WithSquare(s)
	return next
}

// RemovePieceAt returns a copy of the board with the square s emptied.
func (b Board) RemovePieceAt(s Square) Board {
	next := b
	next.occupied = next.occupied.WithoutSquare(s)
	for i := range next.sides {
		next.sides[i] = next.sides[i].WithoutSquare(s)
	}
	for i := range next.roles {
		next.roles[i] = next.roles[i].WithoutSquare(s)
	}
	return next
}

// AttacksTo returns the squares holding pieces of the attacking side that
// attack s, sliding through the caller-supplied occupancy. Passing an
// occupancy different from [Board.Occupied] answers hypothetical questions,
// for example whether a square would be attacked once the king steps off its
// current square.
func (b Board) AttacksTo(s Square, attacker Side, occupied SquareSet) SquareSet {
	queens := b.ByRole(Queen)
	return b.sides[attacker] &
		(RookAttacks(s, occupied)&(b.ByRole(Rook)|queens) |
			BishopAttacks(s, occupied)&(b.ByRole(Bishop)|queens) |
			KnightAttacks(s)&b.ByRole(Knight) |
			KingAttacks(s)&b.ByRole(King) |
			PawnAttacks(attacker.Opposite(), s)&b.ByRole(Pawn))
}

// ParseBoardFen parses the piece placement field of an FEN, e.g.
// "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR". Returns [ErrFenBoard]
// wrapped with detail if the field is malformed.
func ParseBoardFen(field string) (Board, error) {
	var board Board
	file, rank := 0, 7
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '/':
			if file != 8 {
				return Board{}, fmt.Errorf("%w: rank %d has %d files", ErrFenBoard, rank+1, file)
			}
			if rank == 0 {
				return Board{}, fmt.Errorf("%w: too many ranks", ErrFenBoard)
			}
			file, rank = 0, rank-1
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > 8 {
				return Board{}, fmt.Errorf("%w: rank %d has more than 8 files", ErrFenBoard, rank+1)
			}
		default:
			piece := parsePiece(c)
			if piece == NoPiece || file > 7 {
				return Board{}, fmt.Errorf("%w: unexpected character %q", ErrFenBoard, c)
			}
			board = board.SetPieceAt(MakeSquare(file, rank), piece)
			file++
		}
	}
	if rank != 0 || file != 8 {
		return Board{}, fmt.Errorf("%w: incomplete board", ErrFenBoard)
	}
	return board, nil
}

// Fen returns the piece placement field of the board in FEN notation.
func (b Board) Fen() string {
	fen := ""
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(MakeSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				fen += strconv.Itoa(empty)
				empty = 0
			}
			fen += piece.String()
		}
		if empty > 0 {
			fen += strconv.Itoa(empty)
		}
		if rank != 0 {
			fen += "/"
		}
	}
	return fen
}

// String returns a board like representation as seen from white's side.
// Uppercase letters are white and lowercase letters are black.
func (b Board) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		s += strconv.Itoa(rank + 1)
		for file := 0; file < 8; file++ {
			s += b.PieceAt(MakeSquare(file, rank)).String()
		}
		s += "\n"
	}
	s += " abcdefgh"
	return s
}
