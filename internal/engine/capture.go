package engine

import "github.com/lgbarn/checkers-go/internal/draughts"

// extendCaptures searches capture chains starting with a jump from at along
// dir. Every jump reached is appended to moves as a complete move from
// origin, then the search continues from the landing square in all four
// directions.
//
// captured is never modified: each branch receives its own copy, so sibling
// branches cannot see each other's captures. A square already in captured is
// never jumped again, which bounds the depth by the number of opposing pieces.
//
// The position itself is not changed during the search. The moving piece
// still occupies origin and captured pieces still stand on their squares, so
// neither can be landed on.
func extendCaptures(pos *draughts.Position, origin, at draughts.Coord, side draughts.Side, dir draughts.Direction, captured []draughts.Coord, moves []draughts.Move) []draughts.Move {
	landing, ok := jumpTarget(pos, at, side, dir, captured)
	if !ok {
		return moves
	}

	chain := make([]draughts.Coord, len(captured), len(captured)+1)
	copy(chain, captured)
	chain = append(chain, at.Add(dir, 1))

	moves = append(moves, draughts.Move{From: origin, To: landing, Captures: chain})

	for _, next := range draughts.AllDirections {
		moves = extendCaptures(pos, origin, landing, side, next, chain, moves)
	}
	return moves
}

// jumpTarget returns the landing square of a jump from at along dir, if the
// jump is legal: the adjacent square holds an opposing piece not already in
// captured and the square beyond it is on the board and empty.
func jumpTarget(pos *draughts.Position, at draughts.Coord, side draughts.Side, dir draughts.Direction, captured []draughts.Coord) (draughts.Coord, bool) {
	over := at.Add(dir, 1)
	landing := at.Add(dir, 2)
	if !landing.InBounds() {
		return draughts.Coord{}, false
	}
	if !pos.At(over).Owned(side.Opposite()) {
		return draughts.Coord{}, false
	}
	if !pos.At(landing).IsEmpty() {
		return draughts.Coord{}, false
	}
	for _, c := range captured {
		if c == over {
			return draughts.Coord{}, false
		}
	}
	return landing, true
}
