package engine

import "github.com/lgbarn/checkers-go/internal/draughts"

// MandatoryCaptures returns every capture available to the side to move,
// over all of its pieces in row-major order. When the result is non-empty
// the side must play one of these moves.
func MandatoryCaptures(pos *draughts.Position) []draughts.Move {
	var captures []draughts.Move
	for _, from := range pos.Pieces(pos.ToMove) {
		for _, m := range GenerateMoves(pos, from) {
			if m.IsCapture() {
				captures = append(captures, m)
			}
		}
	}
	return captures
}

// LegalMoves returns the legal moves for the side to move: the mandatory
// captures if there are any, otherwise every simple move of every piece.
func LegalMoves(pos *draughts.Position) []draughts.Move {
	if captures := MandatoryCaptures(pos); len(captures) > 0 {
		return captures
	}

	var moves []draughts.Move
	for _, from := range pos.Pieces(pos.ToMove) {
		moves = append(moves, GenerateMoves(pos, from)...)
	}
	return moves
}

// HasMandatoryCapture reports whether the side to move has any capture. It
// is equivalent to len(MandatoryCaptures(pos)) > 0 without building chains.
func HasMandatoryCapture(pos *draughts.Position) bool {
	for _, from := range pos.Pieces(pos.ToMove) {
		if hasCapture(pos, from) {
			return true
		}
	}
	return false
}

// LegalMovesFrom returns the legal moves of the piece on from, taking the
// mandatory-capture rule for the whole side into account: if another piece
// must capture, a piece with only simple moves has none.
func LegalMovesFrom(pos *draughts.Position, from draughts.Coord) []draughts.Move {
	moves := GenerateMoves(pos, from)
	if len(moves) == 0 || moves[0].IsCapture() {
		return moves
	}
	if HasMandatoryCapture(pos) {
		return nil
	}
	return moves
}
