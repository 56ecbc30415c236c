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
	"testing"

	"github.com/google/go-cmp/cmp"
)

var setLawSamples = []SquareSet{
	EmptySet,
	FullSet,
	LightSquares,
	Diagonal,
	Antidiagonal,
	Corners,
	Center,
	Backranks,
	0x00ff_0000_0000_ff00,
	0x0123_4567_89ab_cdef,
}

func TestSquareSetAlgebraLaws(t *testing.T) {
	for _, a := range setLawSamples {
		for _, b := range setLawSamples {
			if a.Union(b) != b.Union(a) {
				t.Errorf("union not commutative for %x and %x", uint64(a), uint64(b))
			}
			for _, c := range setLawSamples {
				left := a.Intersect(b.Union(c))
				right := a.Intersect(b).Union(a.Intersect(c))
				if left != right {
					t.Errorf("intersection does not distribute over union for %x, %x, %x",
						uint64(a), uint64(b), uint64(c))
				}
			}
		}
	}
}

func TestSquareSetShiftLaws(t *testing.T) {
	for _, a := range setLawSamples {
		for k := 0; k < 64; k++ {
			lowBits := FullSet.Shr(k)
			if a.Shl(k).Shr(k) != a.Intersect(lowBits) {
				t.Errorf("shl/shr does not preserve the low %d bits of %x", 64-k, uint64(a))
			}
		}
		if a.Shl(64) != EmptySet || a.Shr(64) != EmptySet || a.Shl(100) != EmptySet {
			t.Errorf("shift beyond 63 should saturate to empty for %x", uint64(a))
		}
		if a.Shl(0) != a || a.Shr(-3) != a {
			t.Errorf("shift by zero or less should be the identity for %x", uint64(a))
		}
	}
}

func TestSquareSetFlipInvolutions(t *testing.T) {
	for _, a := range setLawSamples {
		if a.FlipVertical().FlipVertical() != a {
			t.Errorf("FlipVertical not an involution for %x", uint64(a))
		}
		if a.MirrorHorizontal().MirrorHorizontal() != a {
			t.Errorf("MirrorHorizontal not an involution for %x", uint64(a))
		}
	}
	if SquareSetFromSquare(A1).FlipVertical() != SquareSetFromSquare(A8) {
		t.Errorf("FlipVertical should move a1 to a8")
	}
	if SquareSetFromSquare(A1).MirrorHorizontal() != SquareSetFromSquare(H1) {
		t.Errorf("MirrorHorizontal should move a1 to h1")
	}
	if Diagonal.MirrorHorizontal() != Antidiagonal {
		t.Errorf("mirroring the diagonal should give the antidiagonal")
	}
}

func TestSquareSetDiagonal(t *testing.T) {
	expected := []Square{A1, B2, C3, D4, E5, F6, G7, H8}
	if diff := cmp.Diff(expected, Diagonal.Squares()); diff != "" {
		t.Errorf("incorrect squares for the a1-h8 diagonal (-want +got):\n%s", diff)
	}
	expectedString := "00000001\n" +
		"00000010\n" +
		"00000100\n" +
		"00001000\n" +
		"00010000\n" +
		"00100000\n" +
		"01000000\n" +
		"10000000"
	if Diagonal.String() != expectedString {
		t.Errorf("incorrect string for the a1-h8 diagonal:\n%s", Diagonal)
	}
}

func TestSquareSetIteration(t *testing.T) {
	set := EmptySet.WithSquare(C2).WithSquare(H8).WithSquare(A1).WithSquare(F5)
	if diff := cmp.Diff([]Square{A1, C2, F5, H8}, set.Squares()); diff != "" {
		t.Errorf("incorrect ascending iteration (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Square{H8, F5, C2, A1}, set.SquaresReversed()); diff != "" {
		t.Errorf("incorrect descending iteration (-want +got):\n%s", diff)
	}
}

func TestSquareSetFirstLastSingle(t *testing.T) {
	if EmptySet.First() != NoSquare || EmptySet.Last() != NoSquare {
		t.Errorf("first and last of the empty set should be NoSquare")
	}
	if EmptySet.SingleSquare() != NoSquare {
		t.Errorf("single square of the empty set should be NoSquare")
	}
	set := EmptySet.WithSquare(D4)
	if set.First() != D4 || set.Last() != D4 || set.SingleSquare() != D4 {
		t.Errorf("incorrect result for the singleton {d4}")
	}
	if set.MoreThanOne() {
		t.Errorf("singleton should not have more than one square")
	}
	set = set.WithSquare(G7)
	if set.First() != D4 || set.Last() != G7 {
		t.Errorf("incorrect first or last for {d4, g7}")
	}
	if set.SingleSquare() != NoSquare {
		t.Errorf("single square of a two element set should be NoSquare")
	}
	if !set.MoreThanOne() {
		t.Errorf("two element set should have more than one square")
	}
}

func TestSquareSetMembership(t *testing.T) {
	set := EmptySet.WithSquare(E4)
	if !set.Has(E4) || set.Has(E5) {
		t.Errorf("incorrect membership after WithSquare")
	}
	if set.WithoutSquare(E4) != EmptySet {
		t.Errorf("WithoutSquare should remove the square")
	}
	if set.ToggleSquare(E4) != EmptySet || set.ToggleSquare(A1) != set.WithSquare(A1) {
		t.Errorf("incorrect result for ToggleSquare")
	}
	if set.Has(NoSquare) {
		t.Errorf("no set contains NoSquare")
	}
	if set.Size() != 1 || FullSet.Size() != 64 || EmptySet.Size() != 0 {
		t.Errorf("incorrect sizes")
	}
}

func TestSquareSetConstants(t *testing.T) {
	if LightSquares.Union(DarkSquares) != FullSet || !LightSquares.IsDisjoint(DarkSquares) {
		t.Errorf("light and dark squares should partition the board")
	}
	if LightSquares.Has(A1) || !DarkSquares.Has(A1) || !LightSquares.Has(H1) {
		t.Errorf("a1 is dark and h1 is light")
	}
	if Corners != EmptySet.WithSquare(A1).WithSquare(H1).WithSquare(A8).WithSquare(H8) {
		t.Errorf("incorrect corners")
	}
	if Center != EmptySet.WithSquare(D4).WithSquare(E4).WithSquare(D5).WithSquare(E5) {
		t.Errorf("incorrect center")
	}
	if Backranks != SquareSetFromRank(0).Union(SquareSetFromRank(7)) {
		t.Errorf("incorrect backranks")
	}
}
