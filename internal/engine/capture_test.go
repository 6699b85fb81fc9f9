package engine

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/draughts"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

func TestCaptureChains(t *testing.T) {
	tests := []struct {
		name   string
		toMove draughts.Side
		pieces []testutil.Piece
		from   draughts.Coord
		want   []draughts.Move
	}{
		{
			name:   "two jumps emit both the prefix and the full chain",
			toMove: draughts.First,
			pieces: []testutil.Piece{P(2, 1, fm), P(3, 2, sm), P(5, 4, sm)},
			from:   c(2, 1),
			want: []draughts.Move{
				jump(c(2, 1), c(4, 3), c(3, 2)),
				jump(c(2, 1), c(6, 5), c(3, 2), c(5, 4)),
			},
		},
		{
			name:   "man changes direction after the first jump",
			toMove: draughts.First,
			pieces: []testutil.Piece{P(4, 1, fm), P(5, 2, sm), P(5, 4, sm)},
			from:   c(4, 1),
			want: []draughts.Move{
				jump(c(4, 1), c(6, 3), c(5, 2)),
				jump(c(4, 1), c(4, 5), c(5, 2), c(5, 4)),
			},
		},
		{
			name:   "second man chains toward row 0",
			toMove: draughts.Second,
			pieces: []testutil.Piece{P(6, 1, sm), P(5, 2, fm), P(3, 2, fk)},
			from:   c(6, 1),
			want: []draughts.Move{
				jump(c(6, 1), c(4, 3), c(5, 2)),
				jump(c(6, 1), c(2, 1), c(5, 2), c(3, 2)),
			},
		},
		{
			name:   "branching chain keeps siblings independent",
			toMove: draughts.First,
			pieces: []testutil.Piece{P(2, 3, fk), P(3, 2, sm), P(3, 4, sm), P(5, 2, sm), P(5, 4, sm)},
			from:   c(2, 3),
			want: []draughts.Move{
				jump(c(2, 3), c(4, 1), c(3, 2)),
				jump(c(2, 3), c(6, 3), c(3, 2), c(5, 2)),
				jump(c(2, 3), c(4, 5), c(3, 2), c(5, 2), c(5, 4)),
				jump(c(2, 3), c(4, 5), c(3, 4)),
				jump(c(2, 3), c(6, 3), c(3, 4), c(5, 4)),
				jump(c(2, 3), c(4, 1), c(3, 4), c(5, 4), c(5, 2)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.Setup(t, tt.toMove, tt.pieces...)
			got := GenerateMoves(&pos, tt.from)
			testutil.AssertEqual(t, got, tt.want, "GenerateMoves(%v)", tt.from)
		})
	}
}

func TestCaptureChains_TwoJumpChainInLegalMoves(t *testing.T) {
	pos := testutil.Setup(t, draughts.First, P(2, 1, fm), P(3, 2, sm), P(5, 4, sm), P(7, 0, sm))

	legal := LegalMoves(&pos)
	one := jump(c(2, 1), c(4, 3), c(3, 2))
	two := jump(c(2, 1), c(6, 5), c(3, 2), c(5, 4))
	testutil.AssertContainsMove(t, legal, one)
	testutil.AssertContainsMove(t, legal, two)

	for _, m := range legal {
		if len(m.Captures) == 2 && m.Captures[0] == m.Captures[1] {
			t.Errorf("two-jump move %v repeats a captured square", m)
		}
	}
}

func TestCaptureChains_NoSelfRecapture(t *testing.T) {
	// Five opposing men arranged so a king can jump round a closed loop of
	// landing squares (2,3) -> (4,5) -> (6,3) -> (4,1) -> (2,3) and back
	// across pieces it has already taken.
	pos := testutil.Setup(t, draughts.First,
		P(0, 1, fk),
		P(1, 2, sm), P(3, 4, sm), P(5, 4, sm), P(5, 2, sm), P(3, 2, sm),
	)

	moves := GenerateMoves(&pos, c(0, 1))
	if len(moves) == 0 {
		t.Fatal("GenerateMoves() found no captures")
	}

	longest := 0
	for _, m := range moves {
		seen := make(map[draughts.Coord]bool)
		for _, x := range m.Captures {
			if seen[x] {
				t.Errorf("move %v captures %v twice", m, x)
			}
			seen[x] = true
			if !pos.At(x).Owned(draughts.Second) {
				t.Errorf("move %v captures %v which holds %v", m, x, pos.At(x))
			}
		}
		if len(m.Captures) > longest {
			longest = len(m.Captures)
		}
		path := m.Path()
		if path[len(path)-1] != m.To {
			t.Errorf("move %v path %v does not end at To", m, path)
		}
	}
	if longest != 5 {
		t.Errorf("longest chain captures %d pieces, want 5", longest)
	}

	testutil.AssertContainsMove(t, moves,
		jump(c(0, 1), c(2, 3), c(1, 2), c(3, 4), c(5, 4), c(5, 2), c(3, 2)))
}

func TestCaptureChains_OriginStaysOccupied(t *testing.T) {
	// A chain that would return to the starting square stops one jump short.
	pos := testutil.Setup(t, draughts.First,
		P(2, 3, fk), P(3, 4, sm), P(5, 4, sm), P(5, 2, sm), P(3, 2, sm),
	)

	for _, m := range GenerateMoves(&pos, c(2, 3)) {
		if m.To == c(2, 3) {
			t.Errorf("move %v lands on its own starting square", m)
		}
		if len(m.Captures) > 3 {
			t.Errorf("move %v captures %d pieces, want at most 3", m, len(m.Captures))
		}
	}
}

func TestCaptureChains_DoesNotMutatePosition(t *testing.T) {
	pos := testutil.Setup(t, draughts.First, P(2, 1, fm), P(3, 2, sm), P(5, 4, sm))
	before := pos

	_ = GenerateMoves(&pos, c(2, 1))
	_ = LegalMoves(&pos)

	testutil.AssertEqual(t, pos, before, "position after generation")
}
