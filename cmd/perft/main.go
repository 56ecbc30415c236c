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

// Command perft walks the legal move tree of a position and prints the node
// count per depth, the standard move generator correctness check.
//
// Usage:
//
//	perft [-fen <fen>] [-depth <n>] [-divide] [-config <file>]
package main

import (
	"flag"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chesskit-go/chess"
	"github.com/chesskit-go/chess/internal/config"
	"github.com/chesskit-go/chess/internal/logging"
)

var out = message.NewPrinter(language.English)

func main() {
	fen := flag.String("fen", chess.DefaultFEN, "position to search")
	depth := flag.Int("depth", 5, "maximum depth")
	divide := flag.Bool("divide", false, "print per-move counts at the maximum depth")
	configFile := flag.String("config", "", "TOML settings file")
	flag.Parse()

	log := logging.GetLog()
	if err := config.Setup(*configFile); err != nil {
		log.Errorf("could not read config %s: %v", *configFile, err)
		os.Exit(1)
	}

	pos, err := chess.ParsePositionFen(*fen)
	if err != nil {
		log.Errorf("invalid position %q: %v", *fen, err)
		os.Exit(1)
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodes := chess.Perft(pos, d)
		elapsed := time.Since(start)
		out.Printf("perft(%d) = %d (%v)\n", d, nodes, elapsed.Round(time.Millisecond))
	}

	if *divide {
		for m, nodes := range chess.Divide(pos, *depth) {
			out.Printf("%s: %d\n", m, nodes)
		}
	}
}
