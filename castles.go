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

// CastlingSide distinguishes the two castling directions.
type CastlingSide uint8

const (
	KingSide CastlingSide = iota
	QueenSide
)

// String returns "king" or "queen".
func (cs CastlingSide) String() string {
	if cs == KingSide {
		return "king"
	}
	return "queen"
}

// kingCastlesTo returns the fixed destination of the king when castling: the
// g-file for kingside, the c-file for queenside, on the side's backrank.
func kingCastlesTo(side Side, cs CastlingSide) Square {
	rank := 0
	if side == Black {
		rank = 7
	}
	if cs == KingSide {
		return MakeSquare(6, rank)
	}
	return MakeSquare(2, rank)
}

// rookCastlesTo returns the fixed destination of the rook when castling: the
// f-file for kingside, the d-file for queenside, on the side's backrank.
func rookCastlesTo(side Side, cs CastlingSide) Square {
	rank := 0
	if side == Black {
		rank = 7
	}
	if cs == KingSide {
		return MakeSquare(5, rank)
	}
	return MakeSquare(3, rank)
}

// Castles tracks the castling rights of a position: the set of rooks that
// have not moved yet and, per side and castling side, the origin square of
// the castling rook and the squares that must be empty for the castle to be
// playable.
//
// Castles is an immutable value; the discard operations return copies.
type Castles struct {
	unmovedRooks SquareSet
	rook         [2][2]Square
	path         [2][2]SquareSet
}

// NoCastles returns castling rights with every right cleared.
func NoCastles() Castles {
	var c Castles
	for side := range c.rook {
		for cs := range c.rook[side] {
			c.rook[side][cs] = NoSquare
		}
	}
	return c
}

// DefaultCastles returns the castling rights of the standard starting
// position.
func DefaultCastles() Castles {
	return CastlesFromSetup(DefaultSetup())
}

// CastlesFromSetup derives castling rights from a setup. On each backrank
// the unmoved rooks flanking the king are paired with it: the lowest rook
// below the king becomes the queenside rook, the highest rook above it the
// kingside rook. Sides whose king is missing from its backrank get no
// rights.
func CastlesFromSetup(setup Setup) Castles {
	castles := NoCastles()
	rooks := setup.UnmovedRooks & setup.Board.ByRole(Rook)
	for _, side := range []Side{White, Black} {
		backrank := BackrankOf(side)
		king := setup.Board.KingOf(side)
		if king == NoSquare || !backrank.Has(king) {
			continue
		}
		backrankRooks := rooks & setup.Board.BySide(side) & backrank
		if first := backrankRooks.First(); first != NoSquare && first < king {
			castles = castles.add(side, QueenSide, king, first)
		}
		if last := backrankRooks.Last(); last != NoSquare && king < last {
			castles = castles.add(side, KingSide, king, last)
		}
	}
	return castles
}

// add records a right. The path covers the king's and the rook's walks
// including both destination squares but excluding both origin squares; the
// king and rook never count as blockers of their own castle.
func (c Castles) add(side Side, cs CastlingSide, king Square, rook Square) Castles {
	kingTo := kingCastlesTo(side, cs)
	rookTo := rookCastlesTo(side, cs)
	c.unmovedRooks = c.unmovedRooks.WithSquare(rook)
	c.rook[side][cs] = rook
	c.path[side][cs] = Between(rook, rookTo).WithSquare(rookTo).
		Union(Between(king, kingTo).WithSquare(kingTo)).
		WithoutSquare(king).
		WithoutSquare(rook)
	return c
}

// UnmovedRooks returns the set of rooks castling rights still point at.
func (c Castles) UnmovedRooks() SquareSet {
	return c.unmovedRooks
}

// RookOf returns the origin square of the castling rook for the given side
// and castling side, or NoSquare if the right does not exist.
func (c Castles) RookOf(side Side, cs CastlingSide) Square {
	return c.rook[side][cs]
}

// PathOf returns the squares that must be empty for the given castle. The
// empty set is returned if the right does not exist.
func (c Castles) PathOf(side Side, cs CastlingSide) SquareSet {
	return c.path[side][cs]
}

// discardRookAt clears any right whose rook stands on sq.
func (c Castles) discardRookAt(sq Square) Castles {
	if !c.unmovedRooks.Has(sq) {
		return c
	}
	c.unmovedRooks = c.unmovedRooks.WithoutSquare(sq)
	for side := range c.rook {
		for cs := range c.rook[side] {
			if c.rook[side][cs] == sq {
				c.rook[side][cs] = NoSquare
				c.path[side][cs] = EmptySet
			}
		}
	}
	return c
}

// discardSide clears both rights of a side.
func (c Castles) discardSide(side Side) Castles {
	c.unmovedRooks = c.unmovedRooks.Diff(BackrankOf(side))
	for cs := range c.rook[side] {
		c.rook[side][cs] = NoSquare
		c.path[side][cs] = EmptySet
	}
	return c
}
