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

import "errors"

// FEN parsing errors. [ParseFen] and [ParseBoardFen] wrap these with detail;
// match them with errors.Is.
var (
	ErrFen                = errors.New("chess: invalid fen")
	ErrFenBoard           = errors.New("chess: invalid board part in fen")
	ErrFenTurn            = errors.New("chess: invalid turn part in fen")
	ErrFenCastling        = errors.New("chess: invalid castling part in fen")
	ErrFenEpSquare        = errors.New("chess: invalid en passant part in fen")
	ErrFenHalfmoves       = errors.New("chess: invalid halfmoves part in fen")
	ErrFenFullmoves       = errors.New("chess: invalid fullmoves part in fen")
	ErrFenRemainingChecks = errors.New("chess: invalid remaining checks part in fen")
)

// Position validation errors returned by [FromSetup].
var (
	ErrEmptyBoard      = errors.New("chess: board has no pieces")
	ErrKings           = errors.New("chess: position must have exactly one king per side")
	ErrOppositeCheck   = errors.New("chess: side not to move is in check")
	ErrPawnsOnBackrank = errors.New("chess: pawns on backrank")
	ErrImpossibleCheck = errors.New("chess: unreachable checker configuration")
	ErrVariant         = errors.New("chess: unsupported variant rules")
)

// ErrIllegalMove is returned by [Position.Play] when the requested move is
// not legal in the position.
var ErrIllegalMove = errors.New("chess: illegal move")
