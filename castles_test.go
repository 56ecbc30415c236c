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

func TestDefaultCastles(t *testing.T) {
	castles := DefaultCastles()
	if castles.UnmovedRooks() != Corners {
		t.Errorf("incorrect unmoved rooks for the starting position")
	}
	if castles.RookOf(White, KingSide) != H1 || castles.RookOf(White, QueenSide) != A1 {
		t.Errorf("incorrect white rook squares")
	}
	if castles.RookOf(Black, KingSide) != H8 || castles.RookOf(Black, QueenSide) != A8 {
		t.Errorf("incorrect black rook squares")
	}
	if castles.PathOf(White, KingSide) != setOf(F1, G1) {
		t.Errorf("incorrect white kingside path:\n%s", castles.PathOf(White, KingSide))
	}
	if castles.PathOf(White, QueenSide) != setOf(B1, C1, D1) {
		t.Errorf("incorrect white queenside path:\n%s", castles.PathOf(White, QueenSide))
	}
	if castles.PathOf(Black, KingSide) != setOf(F8, G8) {
		t.Errorf("incorrect black kingside path:\n%s", castles.PathOf(Black, KingSide))
	}
	if castles.PathOf(Black, QueenSide) != setOf(B8, C8, D8) {
		t.Errorf("incorrect black queenside path:\n%s", castles.PathOf(Black, QueenSide))
	}
}

func TestNoCastles(t *testing.T) {
	castles := NoCastles()
	if castles.UnmovedRooks() != EmptySet {
		t.Errorf("expected no unmoved rooks")
	}
	for _, side := range []Side{White, Black} {
		for _, cs := range []CastlingSide{KingSide, QueenSide} {
			if castles.RookOf(side, cs) != NoSquare || castles.PathOf(side, cs) != EmptySet {
				t.Errorf("expected no right for %v %v side", side, cs)
			}
		}
	}
}

func TestCastlesFromSetupPairsFlankingRooks(t *testing.T) {
	setup, err := ParseFen("1r2k3/8/8/8/8/8/8/1R2K3 w Bb - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	castles := CastlesFromSetup(setup)
	if castles.RookOf(White, QueenSide) != B1 || castles.RookOf(White, KingSide) != NoSquare {
		t.Errorf("expected only a queenside right with the rook on b1")
	}
	// Path from an inner rook: rook walks b1-d1, king walks e1-c1.
	if castles.PathOf(White, QueenSide) != setOf(C1, D1) {
		t.Errorf("incorrect queenside path for a b1 rook:\n%s", castles.PathOf(White, QueenSide))
	}
}

func TestCastlesFromSetupIgnoresDisplacedKing(t *testing.T) {
	// King off its backrank: no rights for that side.
	setup, err := ParseFen("r3k2r/8/8/8/8/8/4K3/R6R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	castles := CastlesFromSetup(setup)
	if castles.RookOf(White, KingSide) != NoSquare || castles.RookOf(White, QueenSide) != NoSquare {
		t.Errorf("a displaced king should lose both rights")
	}
	if castles.RookOf(Black, KingSide) != H8 || castles.RookOf(Black, QueenSide) != A8 {
		t.Errorf("the other side keeps its rights")
	}
}

func TestCastlesDiscardRookAt(t *testing.T) {
	castles := DefaultCastles().discardRookAt(H1)
	if castles.RookOf(White, KingSide) != NoSquare {
		t.Errorf("discarding h1 should clear the white kingside right")
	}
	if castles.RookOf(White, QueenSide) != A1 || castles.RookOf(Black, KingSide) != H8 {
		t.Errorf("other rights should survive")
	}
	if castles.UnmovedRooks() != Corners.WithoutSquare(H1) {
		t.Errorf("incorrect unmoved rooks after the discard")
	}
	if castles.discardRookAt(E4) != castles {
		t.Errorf("discarding an untracked square should change nothing")
	}
}

func TestCastlesDiscardSide(t *testing.T) {
	castles := DefaultCastles().discardSide(Black)
	if castles.RookOf(Black, KingSide) != NoSquare || castles.RookOf(Black, QueenSide) != NoSquare {
		t.Errorf("discarding a side should clear both of its rights")
	}
	if castles.RookOf(White, KingSide) != H1 || castles.RookOf(White, QueenSide) != A1 {
		t.Errorf("the other side's rights should survive")
	}
	if castles.UnmovedRooks() != setOf(A1, H1) {
		t.Errorf("incorrect unmoved rooks after the discard")
	}
}
