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

// Square represents one of the 64 squares of a chess board in little-endian
// rank-file order: A1 is 0, B1 is 1, and so on up to H8 at 63. [NoSquare]
// marks the absence of a square.
type Square int8

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// MakeSquare builds a square from its file (0 for the a-file through 7 for
// the h-file) and rank (0 for the first rank through 7 for the eighth).
// NoSquare is returned if either coordinate is out of range.
func MakeSquare(file int, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(file + 8*rank)
}

// File returns the file of the square, 0 for the a-file through 7 for the
// h-file.
func (s Square) File() int {
	return int(s) & 7
}

// Rank returns the rank of the square, 0 for the first rank through 7 for
// the eighth.
func (s Square) Rank() int {
	return int(s) >> 3
}

// IsValid returns true for the squares 0 through 63.
func (s Square) IsValid() bool {
	return s >= A1 && s <= H8
}

// String returns the algebraic name of the square (e.g. "a8"). Gives "-" for
// [NoSquare].
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare parses an algebraic square name like "e4". NoSquare is
// returned if str is not the name of a square.
func ParseSquare(str string) Square {
	if len(str) != 2 {
		return NoSquare
	}
	if str[0] < 'a' || str[0] > 'h' || str[1] < '1' || str[1] > '8' {
		return NoSquare
	}
	return MakeSquare(int(str[0]-'a'), int(str[1]-'1'))
}
