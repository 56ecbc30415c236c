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
	"math/bits"
	"strconv"
)

// SquareSet is a set of squares represented as a 64 bit mask. Each bit
// corresponds to a square, with the least significant bit (rightmost bit if
// using bit shifts) being A1, then B1, all the way up to H8.
//
// SquareSets are values. Every operation returns a new set and never mutates
// the receiver, so they are safe to share freely.
type SquareSet uint64

const (
	EmptySet SquareSet = 0
	FullSet  SquareSet = 0xffff_ffff_ffff_ffff

	LightSquares SquareSet = 0x55aa_55aa_55aa_55aa
	DarkSquares  SquareSet = 0xaa55_aa55_aa55_aa55

	// Diagonal is the a1-h8 diagonal, Antidiagonal the h1-a8 one.
	Diagonal     SquareSet = 0x8040_2010_0804_0201
	Antidiagonal SquareSet = 0x0102_0408_1020_4080

	Corners   SquareSet = 0x8100_0000_0000_0081
	Center    SquareSet = 0x0000_0018_1800_0000
	Backranks SquareSet = 0xff00_0000_0000_00ff
)

// SquareSetFromSquare returns the set containing only s. The empty set is
// returned for NoSquare.
func SquareSetFromSquare(s Square) SquareSet {
	if s == NoSquare {
		return EmptySet
	}
	return 1 << uint(s)
}

// SquareSetFromFile returns the set of all squares on the given file (0 for
// the a-file through 7 for the h-file).
func SquareSetFromFile(file int) SquareSet {
	return 0x0101_0101_0101_0101 << uint(file)
}

// SquareSetFromRank returns the set of all squares on the given rank (0 for
// the first rank through 7 for the eighth).
func SquareSetFromRank(rank int) SquareSet {
	return 0xff << uint(8*rank)
}

// BackrankOf returns the promotion-less home rank of the given side: the
// first rank for white, the eighth for black.
func BackrankOf(side Side) SquareSet {
	if side == White {
		return SquareSetFromRank(0)
	}
	return SquareSetFromRank(7)
}

// Union returns the set of squares in either ss or other.
func (ss SquareSet) Union(other SquareSet) SquareSet {
	return ss | other
}

// Intersect returns the set of squares in both ss and other.
func (ss SquareSet) Intersect(other SquareSet) SquareSet {
	return ss & other
}

// Diff returns the set of squares in ss but not in other.
func (ss SquareSet) Diff(other SquareSet) SquareSet {
	return ss &^ other
}

// Xor returns the set of squares in exactly one of ss and other.
func (ss SquareSet) Xor(other SquareSet) SquareSet {
	return ss ^ other
}

// Complement returns the set of squares not in ss.
func (ss SquareSet) Complement() SquareSet {
	return ^ss
}

// IsIntersected returns true if ss and other have at least one square in
// common.
func (ss SquareSet) IsIntersected(other SquareSet) bool {
	return ss&other != 0
}

// IsDisjoint returns true if ss and other have no square in common.
func (ss SquareSet) IsDisjoint(other SquareSet) bool {
	return ss&other == 0
}

// Shl shifts the set towards H8. Shifts of 64 or more yield the empty set,
// shifts of zero or less yield ss unchanged.
func (ss SquareSet) Shl(n int) SquareSet {
	if n >= 64 {
		return EmptySet
	}
	if n <= 0 {
		return ss
	}
	return ss << uint(n)
}

// Shr shifts the set towards A1. Shifts of 64 or more yield the empty set,
// shifts of zero or less yield ss unchanged.
func (ss SquareSet) Shr(n int) SquareSet {
	if n >= 64 {
		return EmptySet
	}
	if n <= 0 {
		return ss
	}
	return ss >> uint(n)
}

// FlipVertical mirrors the set along the horizontal axis between the fourth
// and fifth ranks, swapping ranks 1 and 8, 2 and 7, and so on. It is its own
// inverse.
func (ss SquareSet) FlipVertical() SquareSet {
	return SquareSet(bits.ReverseBytes64(uint64(ss)))
}

// MirrorHorizontal mirrors the set along the vertical axis between the d and
// e files, swapping the a and h files, b and g, and so on. It is its own
// inverse.
func (ss SquareSet) MirrorHorizontal() SquareSet {
	return SquareSet(bits.Reverse64(bits.ReverseBytes64(uint64(ss))))
}

// Has returns true if s is a member of the set.
func (ss SquareSet) Has(s Square) bool {
	return s != NoSquare && ss&(1<<uint(s)) != 0
}

// WithSquare returns a copy of the set with s added.
func (ss SquareSet) WithSquare(s Square) SquareSet {
	return ss | SquareSetFromSquare(s)
}

// WithoutSquare returns a copy of the set with s removed.
func (ss SquareSet) WithoutSquare(s Square) SquareSet {
	return ss &^ SquareSetFromSquare(s)
}

// ToggleSquare returns a copy of the set with the membership of s flipped.
func (ss SquareSet) ToggleSquare(s Square) SquareSet {
	return ss ^ SquareSetFromSquare(s)
}

// Size returns the number of squares in the set.
func (ss SquareSet) Size() int {
	return bits.OnesCount64(uint64(ss))
}

// IsEmpty returns true if the set contains no squares.
func (ss SquareSet) IsEmpty() bool {
	return ss == 0
}

// MoreThanOne returns true if the set contains at least two squares.
func (ss SquareSet) MoreThanOne() bool {
	return ss&(ss-1) != 0
}

// First returns the lowest square of the set, or NoSquare if the set is
// empty.
func (ss SquareSet) First() Square {
	if ss == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(ss)))
}

// Last returns the highest square of the set, or NoSquare if the set is
// empty.
func (ss SquareSet) Last() Square {
	if ss == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(ss)))
}

// SingleSquare returns the sole member of the set, or NoSquare if the set is
// empty or holds more than one square.
func (ss SquareSet) SingleSquare() Square {
	if ss == 0 || ss.MoreThanOne() {
		return NoSquare
	}
	return ss.First()
}

// withoutFirst drops the lowest square of the set.
func (ss SquareSet) withoutFirst() SquareSet {
	return ss & (ss - 1)
}

// Squares returns the members of the set ordered from A1 to H8.
func (ss SquareSet) Squares() []Square {
	squares := make([]Square, 0, ss.Size())
	for rest := ss; rest != 0; rest = rest.withoutFirst() {
		squares = append(squares, rest.First())
	}
	return squares
}

// SquaresReversed returns the members of the set ordered from H8 to A1.
func (ss SquareSet) SquaresReversed() []Square {
	squares := make([]Square, 0, ss.Size())
	for rest := ss; rest != 0; rest = rest.WithoutSquare(rest.Last()) {
		squares = append(squares, rest.Last())
	}
	return squares
}

// String gives a string representing the set as if you were looking at a
// chess board from white's perspective.
func (ss SquareSet) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			bit := 0
			if ss.Has(MakeSquare(file, rank)) {
				bit = 1
			}
			s += strconv.Itoa(bit)
		}
		if rank != 0 {
			s += "\n"
		}
	}
	return s
}
