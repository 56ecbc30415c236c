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

import "fmt"

// Result represents the result of a game as it would appear in the PGN
// outcome tag.
type Result uint8

const (
	NoResult Result = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the PGN game termination marker: "1-0", "0-1", "1/2-1/2" or
// "*" for no result.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Position is a legal chess position: piece placement, side to move,
// castling rights, en passant square and the move counters.
//
// Positions are immutable values. [Position.Play] and
// [Position.PlayUnchecked] return the successor position and leave the
// receiver untouched, which makes positions safe to share between
// goroutines.
//
// The zero value is not a legal position; use [NewPosition] or [FromSetup].
type Position struct {
	board     Board
	turn      Side
	castles   Castles
	epSquare  Square
	halfmoves int
	fullmoves int
}

// NewPosition returns the standard starting position.
func NewPosition() Position {
	return Position{
		board:     StandardBoard(),
		turn:      White,
		castles:   DefaultCastles(),
		epSquare:  NoSquare,
		halfmoves: 0,
		fullmoves: 1,
	}
}

// FromSetup validates a setup and turns it into a position. The en passant
// square is kept only if it structurally makes sense: on the right rank,
// with the pushed pawn in place and its origin square empty.
//
// Set ignoreImpossibleCheck to accept checker configurations that could not
// have arisen from a legal move; the other validations always run. Returned
// errors match [ErrEmptyBoard], [ErrKings], [ErrOppositeCheck],
// [ErrPawnsOnBackrank] and [ErrImpossibleCheck] under errors.Is.
func FromSetup(setup Setup, ignoreImpossibleCheck bool) (Position, error) {
	pos := Position{
		board:     setup.Board,
		turn:      setup.Turn,
		castles:   CastlesFromSetup(setup),
		epSquare:  validEpSquare(setup),
		halfmoves: setup.Halfmoves,
		fullmoves: setup.Fullmoves,
	}
	if err := pos.validate(ignoreImpossibleCheck); err != nil {
		return Position{}, err
	}
	return pos, nil
}

// ParsePositionFen parses an FEN and validates it into a position.
func ParsePositionFen(fen string) (Position, error) {
	setup, err := ParseFen(fen)
	if err != nil {
		return Position{}, err
	}
	return FromSetup(setup, false)
}

// validEpSquare reduces a raw en passant square to the structural
// precondition of an en passant capture, or NoSquare.
func validEpSquare(setup Setup) Square {
	ep := setup.EpSquare
	if ep == NoSquare {
		return NoSquare
	}
	epRank, forward := 5, Square(8)
	if setup.Turn == Black {
		epRank, forward = 2, -8
	}
	if ep.Rank() != epRank {
		return NoSquare
	}
	if setup.Board.Occupied().Has(ep + forward) {
		return NoSquare
	}
	pushed := ep - forward
	if !setup.Board.PiecesOf(setup.Turn.Opposite(), Pawn).Has(pushed) {
		return NoSquare
	}
	return ep
}

func (pos Position) validate(ignoreImpossibleCheck bool) error {
	if pos.board.Occupied().IsEmpty() {
		return ErrEmptyBoard
	}
	if pos.board.ByRole(King).Size() != 2 {
		return ErrKings
	}
	ourKing := pos.board.KingOf(pos.turn)
	theirKing := pos.board.KingOf(pos.turn.Opposite())
	if ourKing == NoSquare || theirKing == NoSquare {
		return ErrKings
	}
	if !pos.board.AttacksTo(theirKing, pos.turn, pos.board.Occupied()).IsEmpty() {
		return ErrOppositeCheck
	}
	if Backranks.IsIntersected(pos.board.ByRole(Pawn)) {
		return ErrPawnsOnBackrank
	}
	if ignoreImpossibleCheck {
		return nil
	}
	return pos.validateCheckers(ourKing)
}

// validateCheckers rejects checker configurations that no legal move could
// have produced.
func (pos Position) validateCheckers(king Square) error {
	checkers := pos.Checkers()
	if checkers.IsEmpty() {
		return nil
	}
	if pos.epSquare != NoSquare {
		// The pushed pawn must be the only checker, or it has uncovered
		// check by a single sliding piece.
		pushedTo := pos.epSquare ^ 8
		pushedFrom := pos.epSquare ^ 24
		if checkers.MoreThanOne() ||
			(checkers.First() != pushedTo &&
				!pos.board.AttacksTo(king, pos.turn.Opposite(),
					pos.board.Occupied().WithoutSquare(pushedTo).WithSquare(pushedFrom)).IsEmpty()) {
			return ErrImpossibleCheck
		}
		return nil
	}
	if checkers.Size() > 2 {
		return ErrImpossibleCheck
	}
	if checkers.Size() == 2 && Ray(checkers.First(), checkers.Last()).Has(king) {
		return ErrImpossibleCheck
	}
	return nil
}

// Board returns the piece placement.
func (pos Position) Board() Board { return pos.board }

// Turn returns the side to move.
func (pos Position) Turn() Side { return pos.turn }

// Castles returns the castling rights.
func (pos Position) Castles() Castles { return pos.castles }

// EpSquare returns the en passant target square, or NoSquare. The square is
// kept even when no pawn can currently capture onto it; see [Position.Fen]
// for the capturable-only reduction.
func (pos Position) EpSquare() Square { return pos.epSquare }

// Halfmoves returns the halfmove clock.
func (pos Position) Halfmoves() int { return pos.halfmoves }

// Fullmoves returns the fullmove number.
func (pos Position) Fullmoves() int { return pos.fullmoves }

// Checkers returns the pieces giving check to the side to move.
func (pos Position) Checkers() SquareSet {
	king := pos.board.KingOf(pos.turn)
	if king == NoSquare {
		return EmptySet
	}
	return pos.board.AttacksTo(king, pos.turn.Opposite(), pos.board.Occupied())
}

// IsCheck returns true if the side to move is in check.
func (pos Position) IsCheck() bool {
	return !pos.Checkers().IsEmpty()
}

// context caches the per-move-generation facts shared by all pieces of the
// side to move.
type context struct {
	king     Square
	blockers SquareSet
	checkers SquareSet
}

func (pos Position) makeContext() context {
	king := pos.board.KingOf(pos.turn)
	if king == NoSquare {
		return context{king: NoSquare}
	}
	return context{
		king:     king,
		blockers: pos.sliderBlockers(king),
		checkers: pos.board.AttacksTo(king, pos.turn.Opposite(), pos.board.Occupied()),
	}
}

// sliderBlockers returns the pieces that are the sole occupant of the line
// between the king and an enemy sniper: the absolutely pinned pieces, plus
// enemy pieces shielding their own slider.
func (pos Position) sliderBlockers(king Square) SquareSet {
	board := pos.board
	queens := board.ByRole(Queen)
	snipers := board.BySide(pos.turn.Opposite()) &
		(RookAttacks(king, EmptySet)&(board.ByRole(Rook)|queens) |
			BishopAttacks(king, EmptySet)&(board.ByRole(Bishop)|queens))
	blockers := EmptySet
	for _, sniper := range snipers.Squares() {
		between := Between(king, sniper) & board.Occupied()
		if !between.MoreThanOne() {
			blockers |= between
		}
	}
	return blockers
}

// legalMovesOf returns the set of squares the piece on sq may legally move
// to. Castling destinations are encoded as the origin square of the rook.
func (pos Position) legalMovesOf(sq Square, ctx context) SquareSet {
	piece := pos.board.PieceAt(sq)
	if piece.Role == NoRole || piece.Side != pos.turn {
		return EmptySet
	}
	king := ctx.king
	if king == NoSquare {
		return EmptySet
	}

	var pseudo SquareSet
	legalEp := EmptySet
	switch piece.Role {
	case Pawn:
		pseudo = PawnAttacks(pos.turn, sq) & pos.board.BySide(pos.turn.Opposite())
		delta, startRank := Square(8), 1
		if pos.turn == Black {
			delta, startRank = -8, 6
		}
		step := sq + delta
		if step.IsValid() && !pos.board.Occupied().Has(step) {
			pseudo = pseudo.WithSquare(step)
			if sq.Rank() == startRank && !pos.board.Occupied().Has(step+delta) {
				pseudo = pseudo.WithSquare(step + delta)
			}
		}
		if pos.epSquare != NoSquare && pos.canCaptureEp(sq, ctx) {
			pushed := pos.epSquare - delta
			if ctx.checkers.IsEmpty() || ctx.checkers.SingleSquare() == pushed {
				legalEp = SquareSetFromSquare(pos.epSquare)
			}
		}
	case Knight:
		pseudo = KnightAttacks(sq)
	case Bishop:
		pseudo = BishopAttacks(sq, pos.board.Occupied())
	case Rook:
		pseudo = RookAttacks(sq, pos.board.Occupied())
	case Queen:
		pseudo = QueenAttacks(sq, pos.board.Occupied())
	case King:
		// The king's own square is removed from the occupancy so that a
		// slider keeps attacking through the square the king retreats from.
		occ := pos.board.Occupied().WithoutSquare(sq)
		pseudo = KingAttacks(sq).Diff(pos.board.BySide(pos.turn))
		for _, to := range pseudo.Squares() {
			if !pos.board.AttacksTo(to, pos.turn.Opposite(), occ).IsEmpty() {
				pseudo = pseudo.WithoutSquare(to)
			}
		}
		return pseudo.
			Union(pos.castlingDest(QueenSide, ctx)).
			Union(pos.castlingDest(KingSide, ctx))
	}

	pseudo = pseudo.Diff(pos.board.BySide(pos.turn))

	if !ctx.checkers.IsEmpty() {
		checker := ctx.checkers.SingleSquare()
		if checker == NoSquare {
			// Double check: only the king may move.
			return EmptySet
		}
		pseudo = pseudo & Between(checker, king).WithSquare(checker)
	}

	if ctx.blockers.Has(sq) {
		pseudo = pseudo & Ray(sq, king)
	}

	return pseudo | legalEp
}

// canCaptureEp verifies that capturing en passant does not leave the king in
// check once both the capturing and the captured pawn have left their
// squares.
func (pos Position) canCaptureEp(pawn Square, ctx context) bool {
	if !PawnAttacks(pos.turn, pawn).Has(pos.epSquare) {
		return false
	}
	if ctx.king == NoSquare {
		return true
	}
	captured := pos.epSquare - 8
	if pos.turn == Black {
		captured = pos.epSquare + 8
	}
	occupied := pos.board.Occupied().
		ToggleSquare(pawn).
		ToggleSquare(pos.epSquare).
		ToggleSquare(captured)
	return !pos.board.AttacksTo(ctx.king, pos.turn.Opposite(), occupied).
		IsIntersected(occupied)
}

// castlingDest returns the castling destination for the given side encoded
// as the rook's origin square, or the empty set if the castle is not
// currently legal.
func (pos Position) castlingDest(cs CastlingSide, ctx context) SquareSet {
	king := ctx.king
	if king == NoSquare || !ctx.checkers.IsEmpty() {
		return EmptySet
	}
	rook := pos.castles.RookOf(pos.turn, cs)
	if rook == NoSquare {
		return EmptySet
	}
	if pos.castles.PathOf(pos.turn, cs).IsIntersected(pos.board.Occupied()) {
		return EmptySet
	}

	kingTo := kingCastlesTo(pos.turn, cs)
	occ := pos.board.Occupied().WithoutSquare(king)
	for _, sq := range Between(king, kingTo).WithSquare(kingTo).Squares() {
		if !pos.board.AttacksTo(sq, pos.turn.Opposite(), occ).IsEmpty() {
			return EmptySet
		}
	}

	rookTo := rookCastlesTo(pos.turn, cs)
	after := pos.board.Occupied().
		ToggleSquare(king).
		ToggleSquare(rook).
		ToggleSquare(rookTo).
		WithSquare(kingTo)
	if !pos.board.AttacksTo(kingTo, pos.turn.Opposite(), after).IsEmpty() {
		return EmptySet
	}
	return SquareSetFromSquare(rook)
}

// LegalDestsFrom returns the squares the piece on sq may legally move to.
// Castling appears both as the king-to-rook encoding and as the conventional
// king destination on the g or c file.
func (pos Position) LegalDestsFrom(sq Square) SquareSet {
	ctx := pos.makeContext()
	dests := pos.legalMovesOf(sq, ctx)
	if sq == ctx.king {
		for _, cs := range []CastlingSide{KingSide, QueenSide} {
			if rook := pos.castles.RookOf(pos.turn, cs); rook != NoSquare && dests.Has(rook) {
				dests = dests.WithSquare(kingCastlesTo(pos.turn, cs))
			}
		}
	}
	return dests
}

// LegalMoves returns all legal moves for the side to move. Castling moves
// are encoded as the king moving to the origin square of its rook; pawn
// moves onto a backrank are expanded into the four promotions.
func (pos Position) LegalMoves() []Move {
	ctx := pos.makeContext()
	moves := make([]Move, 0, 48)
	for _, from := range pos.board.BySide(pos.turn).Squares() {
		dests := pos.legalMovesOf(from, ctx)
		if dests.IsEmpty() {
			continue
		}
		isPawn := pos.board.ByRole(Pawn).Has(from)
		for _, to := range dests.Squares() {
			if isPawn && Backranks.Has(to) {
				for _, promotion := range []Role{Queen, Rook, Bishop, Knight} {
					moves = append(moves, Move{from, to, promotion})
				}
			} else {
				moves = append(moves, Move{from, to, NoRole})
			}
		}
	}
	return moves
}

// hasSomeLegalMoves is the early-out version of LegalMoves used by the
// terminal state checks.
func (pos Position) hasSomeLegalMoves() bool {
	ctx := pos.makeContext()
	for _, from := range pos.board.BySide(pos.turn).Squares() {
		if !pos.legalMovesOf(from, ctx).IsEmpty() {
			return true
		}
	}
	return false
}

// IsLegal returns true if the side to move may play m. Both castling
// encodings are accepted.
func (pos Position) IsLegal(m Move) bool {
	if !m.From.IsValid() || !m.To.IsValid() {
		return false
	}
	if m.Promotion == Pawn || m.Promotion == King {
		return false
	}
	if m.Promotion != NoRole &&
		(!pos.board.ByRole(Pawn).Has(m.From) || !Backranks.Has(m.To)) {
		return false
	}
	dests := pos.legalMovesOf(m.From, pos.makeContext())
	return dests.Has(m.To) || dests.Has(pos.NormalizeMove(m).To)
}

// castlingSideOf detects a castling move in either encoding: the king moving
// onto the origin square of a rook it may still castle with, or the king
// moving two files along its rank.
func (pos Position) castlingSideOf(m Move) (CastlingSide, bool) {
	if !pos.board.PiecesOf(pos.turn, King).Has(m.From) {
		return 0, false
	}
	for _, cs := range []CastlingSide{KingSide, QueenSide} {
		if rook := pos.castles.RookOf(pos.turn, cs); rook != NoSquare && m.To == rook {
			return cs, true
		}
	}
	delta := int(m.To) - int(m.From)
	if abs(delta) == 2 && m.From.Rank() == m.To.Rank() {
		cs := KingSide
		if delta < 0 {
			cs = QueenSide
		}
		if pos.castles.RookOf(pos.turn, cs) != NoSquare {
			return cs, true
		}
	}
	return 0, false
}

// NormalizeMove rewrites a castling move given in the conventional king
// destination encoding into the king-to-rook encoding. Other moves are
// returned unchanged.
func (pos Position) NormalizeMove(m Move) Move {
	if cs, ok := pos.castlingSideOf(m); ok {
		return Move{m.From, pos.castles.RookOf(pos.turn, cs), NoRole}
	}
	return m
}

// Play validates m and returns the resulting position. [ErrIllegalMove] is
// returned if m is not legal.
func (pos Position) Play(m Move) (Position, error) {
	if !pos.IsLegal(m) {
		return Position{}, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	return pos.PlayUnchecked(pos.NormalizeMove(m)), nil
}

// PlayUnchecked applies m without checking its legality and returns the
// resulting position. Applying an illegal move gives an unspecified
// position but never panics; the original position is returned if the
// source square is empty.
func (pos Position) PlayUnchecked(m Move) Position {
	piece := pos.board.PieceAt(m.From)
	if piece == NoPiece {
		return pos
	}
	castlingSide, isCastling := pos.castlingSideOf(m)

	next := pos
	next.epSquare = NoSquare
	next.halfmoves = pos.halfmoves + 1
	if pos.turn == Black {
		next.fullmoves = pos.fullmoves + 1
	}
	next.turn = pos.turn.Opposite()

	board := pos.board.RemovePieceAt(m.From)
	castles := pos.castles

	captured := pos.board.PieceAt(m.To)
	if isCastling {
		captured = NoPiece
	}
	isCapture := captured != NoPiece

	switch piece.Role {
	case Pawn:
		if m.To == pos.epSquare {
			target := m.To - 8
			if pos.turn == Black {
				target = m.To + 8
			}
			board = board.RemovePieceAt(target)
			isCapture = true
		}
		if delta := int(m.To) - int(m.From); abs(delta) == 16 &&
			(m.From.Rank() == 1 || m.From.Rank() == 6) {
			next.epSquare = Square((int(m.From) + int(m.To)) / 2)
		}
	case Rook:
		castles = castles.discardRookAt(m.From)
	case King:
		if isCastling {
			rookFrom := pos.castles.RookOf(pos.turn, castlingSide)
			rook := pos.board.PieceAt(rookFrom)
			board = board.RemovePieceAt(rookFrom).
				SetPieceAt(kingCastlesTo(pos.turn, castlingSide), piece)
			if rook != NoPiece {
				board = board.SetPieceAt(rookCastlesTo(pos.turn, castlingSide), rook)
			}
		}
		castles = castles.discardSide(pos.turn)
	}

	if !isCastling {
		placed := piece
		if m.Promotion != NoRole {
			placed.Role = m.Promotion
		}
		board = board.SetPieceAt(m.To, placed)
	}

	if captured.Role == Rook {
		castles = castles.discardRookAt(m.To)
	}
	if isCapture || piece.Role == Pawn {
		next.halfmoves = 0
	}

	next.board = board
	next.castles = castles
	return next
}

// IsCheckmate returns true if the side to move is in check and has no legal
// moves.
func (pos Position) IsCheckmate() bool {
	return pos.IsCheck() && !pos.hasSomeLegalMoves()
}

// IsStalemate returns true if the side to move is not in check and has no
// legal moves.
func (pos Position) IsStalemate() bool {
	return !pos.IsCheck() && !pos.hasSomeLegalMoves()
}

// HasInsufficientMaterial returns true if the given side can never deliver
// mate: it has no pawns, rooks or queens, and either at most two knights
// against an opponent reduced to king and queens, or only bishops that all
// stand on one color complex with no pawns or knights on the board.
func (pos Position) HasInsufficientMaterial(side Side) bool {
	board := pos.board
	if board.BySide(side).IsIntersected(
		board.ByRole(Pawn) | board.ByRole(Rook) | board.ByRole(Queen)) {
		return false
	}
	if board.BySide(side).IsIntersected(board.ByRole(Knight)) {
		return board.PiecesOf(side, Knight).Size() <= 2 &&
			board.PiecesOf(side, Bishop).IsEmpty() &&
			board.BySide(side.Opposite()).
				Diff(board.ByRole(King)).
				Diff(board.ByRole(Queen)).
				IsEmpty()
	}
	if board.BySide(side).IsIntersected(board.ByRole(Bishop)) {
		sameColor := !board.ByRole(Bishop).IsIntersected(DarkSquares) ||
			!board.ByRole(Bishop).IsIntersected(LightSquares)
		return sameColor &&
			board.ByRole(Pawn).IsEmpty() &&
			board.ByRole(Knight).IsEmpty()
	}
	return true
}

// IsInsufficientMaterial returns true if neither side has mating material.
func (pos Position) IsInsufficientMaterial() bool {
	return pos.HasInsufficientMaterial(White) && pos.HasInsufficientMaterial(Black)
}

// Outcome returns the result of the position: a win for the side that
// delivered checkmate, a draw on stalemate or insufficient material, and
// [NoResult] while the game is still on.
func (pos Position) Outcome() Result {
	switch {
	case pos.IsCheckmate():
		if pos.turn == White {
			return BlackWins
		}
		return WhiteWins
	case pos.IsStalemate() || pos.IsInsufficientMaterial():
		return Draw
	default:
		return NoResult
	}
}

// legalEpSquare keeps the en passant square only if at least one pawn can
// legally capture onto it, so that emitted FENs never carry a misleading en
// passant square.
func (pos Position) legalEpSquare() Square {
	if pos.epSquare == NoSquare {
		return NoSquare
	}
	candidates := pos.board.PiecesOf(pos.turn, Pawn) &
		PawnAttacks(pos.turn.Opposite(), pos.epSquare)
	ctx := pos.makeContext()
	for _, candidate := range candidates.Squares() {
		if pos.legalMovesOf(candidate, ctx).Has(pos.epSquare) {
			return pos.epSquare
		}
	}
	return NoSquare
}

// ToSetup converts the position back into a setup. The en passant square is
// reduced to capturable-only.
func (pos Position) ToSetup() Setup {
	return Setup{
		Board:        pos.board,
		Turn:         pos.turn,
		UnmovedRooks: pos.castles.UnmovedRooks(),
		EpSquare:     pos.legalEpSquare(),
		Halfmoves:    pos.halfmoves,
		Fullmoves:    pos.fullmoves,
	}
}

// Fen returns the position in FEN notation.
func (pos Position) Fen() string {
	return pos.ToSetup().Fen()
}

// String returns the FEN of the position.
func (pos Position) String() string {
	return pos.Fen()
}
