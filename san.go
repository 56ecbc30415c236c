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
	"strings"
)

// SAN renders a legal move in [Standard Algebraic Notation], including the
// "+" and "#" suffixes derived from the resulting position. The move is
// assumed to be legal; rendering an illegal move gives an unspecified
// string.
//
// [Standard Algebraic Notation]: https://www.saremba.de/chessgml/standards/pgn/pgn-complete.htm#c8.2.3
func (pos Position) SAN(m Move) string {
	san := pos.sanWithoutSuffix(m)
	after := pos.PlayUnchecked(pos.NormalizeMove(m))
	if outcome := after.Outcome(); outcome == WhiteWins || outcome == BlackWins {
		san += "#"
	} else if after.IsCheck() {
		san += "+"
	}
	return san
}

func (pos Position) sanWithoutSuffix(m Move) string {
	role := pos.board.RoleAt(m.From)
	if role == NoRole {
		return "--"
	}
	if cs, ok := pos.castlingSideOf(m); ok {
		if cs == KingSide {
			return "O-O"
		}
		return "O-O-O"
	}

	if role == Pawn {
		san := ""
		if m.From.File() != m.To.File() {
			san = string(rune('a'+m.From.File())) + "x"
		}
		san += m.To.String()
		if m.Promotion != NoRole {
			san += "=" + strings.ToUpper(m.Promotion.String())
		}
		return san
	}

	san := strings.ToUpper(role.String())

	// Disambiguate against the other pieces of the same role that could also
	// legally reach the destination.
	ctx := pos.makeContext()
	others := EmptySet
	for _, other := range pos.board.PiecesOf(pos.turn, role).WithoutSquare(m.From).Squares() {
		if pos.legalMovesOf(other, ctx).Has(m.To) {
			others = others.WithSquare(other)
		}
	}
	if !others.IsEmpty() {
		sameFile := others.IsIntersected(SquareSetFromFile(m.From.File()))
		sameRank := others.IsIntersected(SquareSetFromRank(m.From.Rank()))
		switch {
		case !sameFile:
			san += string(rune('a' + m.From.File()))
		case !sameRank:
			san += string(rune('1' + m.From.Rank()))
		default:
			san += m.From.String()
		}
	}

	if pos.board.Occupied().Has(m.To) {
		san += "x"
	}
	return san + m.To.String()
}

// ParseSAN parses a move in Standard Algebraic Notation against the
// position. Trailing check, mate and annotation marks ("+", "#", "!", "?")
// are ignored. An error is returned if the text does not denote exactly one
// legal move.
func (pos Position) ParseSAN(san string) (Move, error) {
	stripped := strings.TrimRight(san, "!?#+")

	switch stripped {
	case "O-O", "O-O-O":
		cs := KingSide
		if stripped == "O-O-O" {
			cs = QueenSide
		}
		king := pos.board.KingOf(pos.turn)
		rook := pos.castles.RookOf(pos.turn, cs)
		if king == NoSquare || rook == NoSquare {
			return Move{}, fmt.Errorf("could not parse SAN move %q: no %s side castling right", san, cs)
		}
		m := Move{king, rook, NoRole}
		if !pos.IsLegal(m) {
			return Move{}, fmt.Errorf("could not parse SAN move %q: castling not legal", san)
		}
		return m, nil
	}

	if len(stripped) < 2 {
		return Move{}, fmt.Errorf("could not parse SAN move %q: too short", san)
	}
	if stripped[0] >= 'a' && stripped[0] <= 'h' {
		return pos.parsePawnSAN(san, stripped)
	}
	return pos.parsePieceSAN(san, stripped)
}

func (pos Position) parsePawnSAN(san string, stripped string) (Move, error) {
	promotion := NoRole
	if i := strings.IndexByte(stripped, '='); i >= 0 {
		if i != len(stripped)-2 {
			return Move{}, fmt.Errorf("could not parse SAN move %q: malformed promotion", san)
		}
		switch promotion = parseRole(stripped[len(stripped)-1] | 0x20); promotion {
		case Knight, Bishop, Rook, Queen:
		default:
			return Move{}, fmt.Errorf("could not parse SAN move %q: invalid promotion role", san)
		}
		stripped = stripped[:i]
	}

	fromFile := int(stripped[0] - 'a')
	var to Square
	switch {
	case len(stripped) == 2:
		to = ParseSquare(stripped)
	case len(stripped) == 4 && stripped[1] == 'x':
		to = ParseSquare(stripped[2:])
	default:
		return Move{}, fmt.Errorf("could not parse SAN move %q: malformed pawn move", san)
	}
	if to == NoSquare {
		return Move{}, fmt.Errorf("could not parse SAN move %q: invalid destination", san)
	}
	if (promotion != NoRole) != Backranks.Has(to) {
		return Move{}, fmt.Errorf("could not parse SAN move %q: promotion and destination rank disagree", san)
	}

	// Of the pawns on the source file that can legally reach the
	// destination, the highest one moves for white and the lowest one for
	// black.
	candidates := pos.board.PiecesOf(pos.turn, Pawn).Intersect(SquareSetFromFile(fromFile))
	ordered := candidates.Squares()
	if pos.turn == White {
		ordered = candidates.SquaresReversed()
	}
	ctx := pos.makeContext()
	for _, from := range ordered {
		if pos.legalMovesOf(from, ctx).Has(to) {
			return Move{from, to, promotion}, nil
		}
	}
	return Move{}, fmt.Errorf("could not parse SAN move %q: no pawn can play it", san)
}

func (pos Position) parsePieceSAN(san string, stripped string) (Move, error) {
	role := NoRole
	if stripped[0] >= 'A' && stripped[0] <= 'Z' {
		role = parseRole(stripped[0] | 0x20)
	}
	if role == NoRole || role == Pawn {
		return Move{}, fmt.Errorf("could not parse SAN move %q: invalid piece letter", san)
	}

	rest := stripped[1:]
	if len(rest) < 2 {
		return Move{}, fmt.Errorf("could not parse SAN move %q: missing destination", san)
	}
	to := ParseSquare(rest[len(rest)-2:])
	if to == NoSquare {
		return Move{}, fmt.Errorf("could not parse SAN move %q: invalid destination", san)
	}
	disambiguator := rest[:len(rest)-2]
	disambiguator = strings.TrimSuffix(disambiguator, "x")

	candidates := pos.board.PiecesOf(pos.turn, role)
	switch len(disambiguator) {
	case 0:
	case 1:
		c := disambiguator[0]
		switch {
		case c >= 'a' && c <= 'h':
			candidates = candidates.Intersect(SquareSetFromFile(int(c - 'a')))
		case c >= '1' && c <= '8':
			candidates = candidates.Intersect(SquareSetFromRank(int(c - '1')))
		default:
			return Move{}, fmt.Errorf("could not parse SAN move %q: invalid disambiguation", san)
		}
	case 2:
		from := ParseSquare(disambiguator)
		if from == NoSquare {
			return Move{}, fmt.Errorf("could not parse SAN move %q: invalid disambiguation", san)
		}
		candidates = candidates.Intersect(SquareSetFromSquare(from))
	default:
		return Move{}, fmt.Errorf("could not parse SAN move %q: invalid disambiguation", san)
	}

	ctx := pos.makeContext()
	from := NoSquare
	for _, candidate := range candidates.Squares() {
		if !pos.legalMovesOf(candidate, ctx).Has(to) {
			continue
		}
		if from != NoSquare {
			return Move{}, fmt.Errorf("could not parse SAN move %q: ambiguous", san)
		}
		from = candidate
	}
	if from == NoSquare {
		return Move{}, fmt.Errorf("could not parse SAN move %q: no legal interpretation", san)
	}
	return Move{from, to, NoRole}, nil
}
