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

import "testing"

func TestSideOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Errorf("incorrect opposite side")
	}
	for _, side := range []Side{White, Black} {
		if side.Opposite().Opposite() != side {
			t.Errorf("opposite is not an involution for %v", side)
		}
	}
}

func TestRoleString(t *testing.T) {
	cases := map[Role]string{
		Pawn:   "p",
		Knight: "n",
		Bishop: "b",
		Rook:   "r",
		Queen:  "q",
		King:   "k",
		NoRole: "-",
	}
	for role, expected := range cases {
		if role.String() != expected {
			t.Errorf("incorrect string for role %d: expected %q, got %q", role, expected, role)
		}
	}
}

func TestPieceString(t *testing.T) {
	if WhiteKnight.String() != "N" || BlackKnight.String() != "n" {
		t.Errorf("incorrect piece letters for knights")
	}
	if WhiteKing.String() != "K" || BlackQueen.String() != "q" {
		t.Errorf("incorrect piece letters for royals")
	}
	if NoPiece.String() != "-" {
		t.Errorf("incorrect string for NoPiece")
	}
}

func TestParsePiece(t *testing.T) {
	for _, piece := range []Piece{
		WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
		BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
	} {
		if parsePiece(piece.String()[0]) != piece {
			t.Errorf("piece %v does not round trip through its letter", piece)
		}
	}
	for _, bad := range []byte{'x', '1', '-', ' '} {
		if parsePiece(bad) != NoPiece {
			t.Errorf("expected NoPiece for %q", bad)
		}
	}
}
