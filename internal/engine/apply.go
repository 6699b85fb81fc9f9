package engine

import (
	"github.com/lgbarn/checkers-go/internal/draughts"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// Validate returns the legal move of the side to move that goes from from to
// to. If several capture chains share those endpoints, the first one in
// enumeration order is returned; use ValidatePath to pick a specific chain.
//
// Every failure is a *errors.MoveError wrapping errors.ErrInvalidMove.
func Validate(pos *draughts.Position, from, to draughts.Coord) (draughts.Move, error) {
	if err := checkSource(pos, from, to); err != nil {
		return draughts.Move{}, err
	}

	for _, m := range LegalMoves(pos) {
		if m.From == from && m.To == to {
			return m, nil
		}
	}
	return draughts.Move{}, rejection(pos, from, to)
}

// ValidatePath returns the legal move starting at from whose landing squares
// are exactly path. A single-element path behaves like Validate except that
// it never falls back to a different chain with the same destination.
func ValidatePath(pos *draughts.Position, from draughts.Coord, path []draughts.Coord) (draughts.Move, error) {
	if len(path) == 0 {
		return draughts.Move{}, errors.NewMoveError(from, from, errors.ReasonNotLegal)
	}
	to := path[len(path)-1]
	if err := checkSource(pos, from, path...); err != nil {
		return draughts.Move{}, err
	}

	for _, m := range LegalMoves(pos) {
		if m.From == from && samePath(m.Path(), path) {
			return m, nil
		}
	}
	if len(path) > 1 {
		return draughts.Move{}, errors.NewMoveError(from, to, errors.ReasonPathMismatch)
	}
	return draughts.Move{}, rejection(pos, from, to)
}

// Apply validates the move from from to to and returns the position after
// it. pos is not modified; on error the zero Position is returned.
func Apply(pos *draughts.Position, from, to draughts.Coord) (draughts.Position, error) {
	m, err := Validate(pos, from, to)
	if err != nil {
		return draughts.Position{}, err
	}
	return play(pos, m), nil
}

// ApplyMove applies m if it is exactly one of the legal moves, including its
// capture sequence. pos is not modified.
func ApplyMove(pos *draughts.Position, m draughts.Move) (draughts.Position, error) {
	if err := checkSource(pos, m.From, m.To); err != nil {
		return draughts.Position{}, err
	}
	for _, legal := range LegalMoves(pos) {
		if legal.Equal(m) {
			return play(pos, legal), nil
		}
	}
	if m.IsCapture() {
		return draughts.Position{}, errors.NewMoveError(m.From, m.To, errors.ReasonPathMismatch)
	}
	return draughts.Position{}, rejection(pos, m.From, m.To)
}

// play returns the position after the legal move m. The moving piece leaves
// From, every captured piece is removed and the piece lands on To, becoming
// a king on its promotion row. If the same side then has a capture
// anywhere on the board it moves again; otherwise the turn passes. This
// applies after simple moves as well as captures.
func play(pos *draughts.Position, m draughts.Move) draughts.Position {
	next := *pos

	piece := next.At(m.From)
	next.Set(m.From, draughts.Empty)
	for _, c := range m.Captures {
		next.Set(c, draughts.Empty)
	}
	if m.To.Row == piece.Side().PromotionRow() {
		piece = piece.Promote()
	}
	next.Set(m.To, piece)

	if HasMandatoryCapture(&next) {
		return next
	}
	next.ToMove = next.ToMove.Opposite()
	return next
}

// checkSource rejects coordinates off the board and sources that do not
// hold a piece of the side to move.
func checkSource(pos *draughts.Position, from draughts.Coord, to ...draughts.Coord) error {
	last := from
	if len(to) > 0 {
		last = to[len(to)-1]
	}
	if !from.InBounds() {
		return errors.NewMoveError(from, last, errors.ReasonOffBoard)
	}
	for _, c := range to {
		if !c.InBounds() {
			return errors.NewMoveError(from, last, errors.ReasonOffBoard)
		}
	}
	if !pos.At(from).Owned(pos.ToMove) {
		return errors.NewMoveError(from, last, errors.ReasonNotOwnPiece)
	}
	return nil
}

// rejection explains why no legal move joins from and to.
func rejection(pos *draughts.Position, from, to draughts.Coord) error {
	if HasMandatoryCapture(pos) {
		piece := pos.At(from)
		dirs := draughts.Directions(piece.Side(), piece.Rank())
		for _, m := range appendSimpleMoves(pos, from, dirs, nil) {
			if m.To == to {
				return errors.NewMoveError(from, to, errors.ReasonMustCapture)
			}
		}
	}
	return errors.NewMoveError(from, to, errors.ReasonNotLegal)
}

func samePath(a, b []draughts.Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
