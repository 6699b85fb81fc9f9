package testutil

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/draughts"
)

// Piece places a square value on a coordinate when building test positions.
type Piece struct {
	At draughts.Coord
	Sq draughts.Square
}

// P is shorthand for a Piece at (row, col).
func P(row, col int, sq draughts.Square) Piece {
	return Piece{At: draughts.C(row, col), Sq: sq}
}

// Setup returns an otherwise empty position with the given pieces and side to
// move. Pieces on unplayable squares are a test bug and abort the test.
func Setup(t *testing.T, toMove draughts.Side, pieces ...Piece) draughts.Position {
	t.Helper()
	var pos draughts.Position
	pos.ToMove = toMove
	for _, p := range pieces {
		if !p.At.Playable() {
			t.Fatalf("test position places %v on unplayable square %v", p.Sq, p.At)
		}
		pos.Set(p.At, p.Sq)
	}
	return pos
}

// CheckInvariants reports any piece standing on an unplayable square, any
// invalid square value, and any side holding more than twelve pieces.
func CheckInvariants(t *testing.T, pos *draughts.Position) {
	t.Helper()
	for row := 0; row < draughts.BoardSize; row++ {
		for col := 0; col < draughts.BoardSize; col++ {
			c := draughts.C(row, col)
			sq := pos.At(c)
			if !sq.Valid() {
				t.Errorf("square %v holds invalid value %d", c, sq)
			}
			if !sq.IsEmpty() && !c.Playable() {
				t.Errorf("%v on unplayable square %v", sq, c)
			}
		}
	}
	for _, side := range []draughts.Side{draughts.First, draughts.Second} {
		if n := pos.Count(side); n > draughts.MaxPieces {
			t.Errorf("%v has %d pieces, want at most %d", side, n, draughts.MaxPieces)
		}
	}
}
