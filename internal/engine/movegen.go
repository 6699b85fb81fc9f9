// Package engine provides English draughts move generation, validation and
// application over draughts.Position values.
package engine

import "github.com/lgbarn/checkers-go/internal/draughts"

// GenerateMoves returns every move the piece on from may make. If the piece
// has any capture, only its captures are returned (every prefix of every
// chain is included); otherwise its simple diagonal steps are returned.
//
// An empty result is returned, not an error, when from is off the board,
// empty, or holds a piece of the side not to move.
func GenerateMoves(pos *draughts.Position, from draughts.Coord) []draughts.Move {
	piece := pos.At(from)
	if !from.InBounds() || !piece.Owned(pos.ToMove) {
		return nil
	}

	dirs := draughts.Directions(piece.Side(), piece.Rank())

	var moves []draughts.Move
	for _, dir := range dirs {
		moves = extendCaptures(pos, from, from, piece.Side(), dir, nil, moves)
	}
	if len(moves) > 0 {
		return moves
	}

	return appendSimpleMoves(pos, from, dirs, moves)
}

// appendSimpleMoves appends a non-capturing step for each direction whose
// adjacent square is on the board and empty.
func appendSimpleMoves(pos *draughts.Position, from draughts.Coord, dirs []draughts.Direction, moves []draughts.Move) []draughts.Move {
	for _, dir := range dirs {
		to := from.Add(dir, 1)
		if to.InBounds() && pos.At(to).IsEmpty() {
			moves = append(moves, draughts.Move{From: from, To: to})
		}
	}
	return moves
}

// hasCapture reports whether the piece on from has at least one jump
// available, without building the chains.
func hasCapture(pos *draughts.Position, from draughts.Coord) bool {
	piece := pos.At(from)
	if piece.IsEmpty() {
		return false
	}
	for _, dir := range draughts.Directions(piece.Side(), piece.Rank()) {
		if _, ok := jumpTarget(pos, from, piece.Side(), dir, nil); ok {
			return true
		}
	}
	return false
}
