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
	"os"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chesskit-go/chess/internal/config"
	"github.com/chesskit-go/chess/internal/logging"
)

var out = message.NewPrinter(language.English)

func TestMain(m *testing.M) {
	if err := config.Setup(""); err != nil {
		panic(err)
	}
	logging.GetTestLog()
	os.Exit(m.Run())
}

// The reference node counts below are the well known values from the
// chessprogramming wiki.
func TestPerftInitialPosition(t *testing.T) {
	expected := []uint64{20, 400, 8902, 197281}
	pos := NewPosition()
	for depth, nodes := range expected {
		got := Perft(pos, depth+1)
		out.Printf("initial perft(%d) = %d\n", depth+1, got)
		if got != nodes {
			t.Errorf("incorrect perft(%d) for the initial position: expected %d, got %d",
				depth+1, nodes, got)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos := mustPosition(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	expected := []uint64{48, 2039, 97862}
	for depth, nodes := range expected {
		got := Perft(pos, depth+1)
		out.Printf("kiwipete perft(%d) = %d\n", depth+1, got)
		if got != nodes {
			t.Errorf("incorrect perft(%d) for kiwipete: expected %d, got %d", depth+1, nodes, got)
		}
	}
}

func TestPerftEndgame(t *testing.T) {
	// Position 3 from the chessprogramming wiki, heavy on en passant and
	// pins.
	pos := mustPosition(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	expected := []uint64{14, 191, 2812, 43238}
	for depth, nodes := range expected {
		got := Perft(pos, depth+1)
		if got != nodes {
			t.Errorf("incorrect perft(%d) for the endgame position: expected %d, got %d",
				depth+1, nodes, got)
		}
	}
}

func TestPerftPromotions(t *testing.T) {
	// Position 5 from the chessprogramming wiki, promotion heavy.
	pos := mustPosition(t, "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	expected := []uint64{44, 1486, 62379}
	for depth, nodes := range expected {
		got := Perft(pos, depth+1)
		if got != nodes {
			t.Errorf("incorrect perft(%d) for the promotion position: expected %d, got %d",
				depth+1, nodes, got)
		}
	}
}

func TestPerftDepthZero(t *testing.T) {
	if Perft(NewPosition(), 0) != 1 {
		t.Errorf("perft at depth zero should count one leaf")
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	pos := NewPosition()
	var sum uint64
	for _, nodes := range Divide(pos, 3) {
		sum += nodes
	}
	if sum != Perft(pos, 3) {
		t.Errorf("divide should sum to the perft count")
	}
}
