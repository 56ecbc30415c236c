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
	"strings"
)

// DefaultFEN is the FEN of the standard starting position.
const DefaultFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// RemainingChecks is the number of checks each side still has to deliver in
// a three-check game. It is parsed from and written back to FEN but never
// consulted by the move generator.
type RemainingChecks struct {
	White int
	Black int
}

// Setup records all parts of a [Forsyth-Edwards Notation] string without any
// validation. A Setup is not required to describe a reachable or even a
// legal position; [FromSetup] turns it into a validated [Position].
//
// EpSquare is [NoSquare] when the FEN carries no en passant square.
// RemainingChecks is nil unless the FEN carried a three-check field.
//
// [Forsyth-Edwards Notation]: https://www.saremba.de/chessgml/standards/pgn/pgn-complete.htm#c16.1
type Setup struct {
	Board           Board
	Turn            Side
	UnmovedRooks    SquareSet
	EpSquare        Square
	Halfmoves       int
	Fullmoves       int
	RemainingChecks *RemainingChecks
}

// DefaultSetup returns the Setup of the standard starting position.
func DefaultSetup() Setup {
	return Setup{
		Board:        StandardBoard(),
		Turn:         White,
		UnmovedRooks: Corners,
		EpSquare:     NoSquare,
		Halfmoves:    0,
		Fullmoves:    1,
	}
}

// ParseFen parses an FEN string into a Setup. Parsing is lenient: fields may
// be separated by any run of whitespace or underscores, and missing trailing
// fields default to "w - - 0 1". A three-check remaining checks field is
// accepted both in its canonical place after the fullmove number and, as in
// early three-check FENs, before the halfmove clock.
func ParseFen(fen string) (Setup, error) {
	parts := strings.FieldsFunc(fen, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '_'
	})
	if len(parts) == 0 {
		return Setup{}, fmt.Errorf("%w: empty string", ErrFen)
	}

	setup := Setup{EpSquare: NoSquare, Fullmoves: 1}

	board, err := ParseBoardFen(parts[0])
	if err != nil {
		return Setup{}, err
	}
	setup.Board = board
	parts = parts[1:]

	if len(parts) > 0 {
		turn, ok := parseSide(parts[0])
		if !ok {
			return Setup{}, fmt.Errorf("%w: %q", ErrFenTurn, parts[0])
		}
		setup.Turn = turn
		parts = parts[1:]
	}

	if len(parts) > 0 {
		unmovedRooks, err := parseCastlingFen(board, parts[0])
		if err != nil {
			return Setup{}, err
		}
		setup.UnmovedRooks = unmovedRooks
		parts = parts[1:]
	}

	if len(parts) > 0 {
		if parts[0] != "-" {
			sq := ParseSquare(parts[0])
			if sq == NoSquare {
				return Setup{}, fmt.Errorf("%w: %q", ErrFenEpSquare, parts[0])
			}
			setup.EpSquare = sq
		}
		parts = parts[1:]
	}

	// Early three-check FENs put the remaining checks before the halfmove
	// clock.
	if len(parts) > 0 && strings.Contains(parts[0], "+") {
		checks, err := parseRemainingChecks(parts[0])
		if err != nil {
			return Setup{}, err
		}
		setup.RemainingChecks = checks
		parts = parts[1:]
	}

	if len(parts) > 0 {
		halfmoves, err := parseSmallUint(parts[0])
		if err != nil {
			return Setup{}, fmt.Errorf("%w: %q", ErrFenHalfmoves, parts[0])
		}
		setup.Halfmoves = halfmoves
		parts = parts[1:]
	}

	if len(parts) > 0 {
		fullmoves, err := parseSmallUint(parts[0])
		if err != nil {
			return Setup{}, fmt.Errorf("%w: %q", ErrFenFullmoves, parts[0])
		}
		setup.Fullmoves = fullmoves
		parts = parts[1:]
	}

	if len(parts) > 0 {
		if setup.RemainingChecks != nil {
			return Setup{}, fmt.Errorf("%w: duplicate remaining checks field", ErrFen)
		}
		checks, err := parseRemainingChecks(parts[0])
		if err != nil {
			return Setup{}, err
		}
		setup.RemainingChecks = checks
		parts = parts[1:]
	}

	if len(parts) > 0 {
		return Setup{}, fmt.Errorf("%w: trailing fields %q", ErrFen, strings.Join(parts, " "))
	}
	return setup, nil
}

func parseSmallUint(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("not a number: %q", s)
		}
	}
	return strconv.Atoi(s)
}

func parseRemainingChecks(s string) (*RemainingChecks, error) {
	parts := strings.Split(s, "+")
	switch {
	case len(parts) == 3 && parts[0] == "":
		// Lichess style "+2+1" counts checks already given.
		white, errW := parseSmallUint(parts[1])
		black, errB := parseSmallUint(parts[2])
		if errW != nil || errB != nil || white > 3 || black > 3 {
			return nil, fmt.Errorf("%w: %q", ErrFenRemainingChecks, s)
		}
		return &RemainingChecks{White: 3 - white, Black: 3 - black}, nil
	case len(parts) == 2:
		white, errW := parseSmallUint(parts[0])
		black, errB := parseSmallUint(parts[1])
		if errW != nil || errB != nil || white > 3 || black > 3 {
			return nil, fmt.Errorf("%w: %q", ErrFenRemainingChecks, s)
		}
		return &RemainingChecks{White: white, Black: black}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrFenRemainingChecks, s)
	}
}

// parseCastlingFen resolves a castling field against the piece placement.
// "KQkq" letters select the outermost rook of the backrank, Shredder-FEN
// file letters select by file, "-" means no castling rights.
func parseCastlingFen(board Board, field string) (SquareSet, error) {
	unmovedRooks := EmptySet
	if field == "-" {
		return unmovedRooks, nil
	}
	for i := 0; i < len(field); i++ {
		c := field[i]
		lower := c | 0x20
		side := Black
		if c < 'a' {
			side = White
		}
		rank := 0
		if side == Black {
			rank = 7
		}
		switch {
		case lower >= 'a' && lower <= 'h':
			unmovedRooks = unmovedRooks.WithSquare(MakeSquare(int(lower-'a'), rank))
		case lower == 'k' || lower == 'q':
			backrank := BackrankOf(side)
			rooksAndKings := board.BySide(side) & backrank &
				(board.ByRole(Rook) | board.ByRole(King))
			candidate := rooksAndKings.First()
			fallbackFile := 0
			if lower == 'k' {
				candidate = rooksAndKings.Last()
				fallbackFile = 7
			}
			if candidate != NoSquare && board.ByRole(Rook).Has(candidate) {
				unmovedRooks = unmovedRooks.WithSquare(candidate)
			} else {
				unmovedRooks = unmovedRooks.WithSquare(MakeSquare(fallbackFile, rank))
			}
		default:
			return EmptySet, fmt.Errorf("%w: unexpected character %q", ErrFenCastling, c)
		}
	}
	if unmovedRooks.Intersect(SquareSetFromRank(0)).Size() > 2 ||
		unmovedRooks.Intersect(SquareSetFromRank(7)).Size() > 2 {
		return EmptySet, fmt.Errorf("%w: more than two unmoved rooks on a backrank", ErrFenCastling)
	}
	return unmovedRooks, nil
}

// makeCastlingFen writes castling rights as "KQkq" letters where the
// unmoved rook is the outermost rook of its backrank, falling back to
// Shredder-FEN file letters where it is not.
func makeCastlingFen(board Board, unmovedRooks SquareSet) string {
	fen := ""
	for _, side := range []Side{White, Black} {
		backrank := BackrankOf(side)
		king := board.KingOf(side)
		candidates := board.PiecesOf(side, Rook) & backrank
		for _, rook := range unmovedRooks.Intersect(candidates).SquaresReversed() {
			switch {
			case king != NoSquare && king < rook && rook == candidates.Last():
				if side == White {
					fen += "K"
				} else {
					fen += "k"
				}
			case king != NoSquare && rook < king && rook == candidates.First():
				if side == White {
					fen += "Q"
				} else {
					fen += "q"
				}
			default:
				c := rune('a' + rook.File())
				if side == White {
					c -= 0x20
				}
				fen += string(c)
			}
		}
	}
	if fen == "" {
		return "-"
	}
	return fen
}

// Fen returns the setup in FEN notation: board, turn, castling, en passant,
// halfmove clock and fullmove number, followed by the remaining checks field
// if present. The halfmove clock is clamped to [0, 9999] and the fullmove
// number to [1, 9999].
func (s Setup) Fen() string {
	turn := "w"
	if s.Turn == Black {
		turn = "b"
	}
	fen := s.Board.Fen() +
		" " + turn +
		" " + makeCastlingFen(s.Board, s.UnmovedRooks) +
		" " + s.EpSquare.String() +
		" " + strconv.Itoa(clamp(s.Halfmoves, 0, 9999)) +
		" " + strconv.Itoa(clamp(s.Fullmoves, 1, 9999))
	if s.RemainingChecks != nil {
		fen += " " + strconv.Itoa(s.RemainingChecks.White) + "+" + strconv.Itoa(s.RemainingChecks.Black)
	}
	return fen
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}

// UnmarshalText is an implementation of the [encoding.TextUnmarshaler]
// interface. It expects text in FEN notation.
func (s *Setup) UnmarshalText(fen []byte) error {
	setup, err := ParseFen(string(fen))
	if err != nil {
		return err
	}
	*s = setup
	return nil
}

// MarshalText is an implementation of the [encoding.TextMarshaler]
// interface. It provides the FEN representation of the setup.
func (s Setup) MarshalText() ([]byte, error) {
	return []byte(s.Fen()), nil
}
