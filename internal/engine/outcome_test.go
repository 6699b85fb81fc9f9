package engine

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/draughts"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name       string
		toMove     draughts.Side
		pieces     []testutil.Piece
		terminal   bool
		wantWinner draughts.Side
	}{
		{
			name:     "both sides can move",
			toMove:   draughts.First,
			pieces:   []testutil.Piece{P(2, 1, fm), P(5, 2, sm)},
			terminal: false,
		},
		{
			name:       "first man blocked on the last row but one",
			toMove:     draughts.First,
			pieces:     []testutil.Piece{P(6, 7, fm), P(7, 6, sm)},
			terminal:   true,
			wantWinner: draughts.Second,
		},
		{
			name:       "side to move has no pieces",
			toMove:     draughts.Second,
			pieces:     []testutil.Piece{P(4, 3, fk)},
			terminal:   true,
			wantWinner: draughts.First,
		},
		{
			name:   "only a capture is available",
			toMove: draughts.First,
			pieces: []testutil.Piece{
				P(0, 1, fm), P(1, 0, sm), P(1, 2, sm),
			},
			terminal: false,
		},
		{
			name:       "second pinned in the corner",
			toMove:     draughts.Second,
			pieces:     []testutil.Piece{P(1, 0, sm), P(0, 1, fm), P(2, 1, fm), P(3, 2, fm)},
			terminal:   true,
			wantWinner: draughts.First,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.Setup(t, tt.toMove, tt.pieces...)
			if got := IsTerminal(&pos); got != tt.terminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.terminal)
			}
			if got := len(LegalMoves(&pos)) == 0; got != tt.terminal {
				t.Errorf("LegalMoves() empty = %v, want %v", got, tt.terminal)
			}

			winner, ok := Winner(&pos)
			if ok != tt.terminal {
				t.Fatalf("Winner() ok = %v, want %v", ok, tt.terminal)
			}
			if ok && winner != tt.wantWinner {
				t.Errorf("Winner() = %v, want %v", winner, tt.wantWinner)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Run("starting position", func(t *testing.T) {
		pos := draughts.NewPosition()
		want := Status{
			ToMove:       draughts.First,
			LegalMoves:   7,
			FirstPieces:  12,
			SecondPieces: 12,
		}
		testutil.AssertEqual(t, Describe(&pos), want)
	})

	t.Run("capture chain available", func(t *testing.T) {
		pos := testutil.Setup(t, draughts.First, P(2, 1, fm), P(3, 2, sm), P(5, 4, sk), P(7, 2, fk))
		want := Status{
			ToMove:         draughts.First,
			LegalMoves:     2,
			MustCapture:    true,
			FirstPieces:    2,
			SecondPieces:   2,
			FirstKings:     1,
			SecondKings:    1,
			MaxCaptureSize: 2,
		}
		testutil.AssertEqual(t, Describe(&pos), want)
	})

	t.Run("finished game", func(t *testing.T) {
		pos := testutil.Setup(t, draughts.First, P(6, 7, fm), P(7, 6, sm))
		want := Status{
			ToMove:       draughts.First,
			Terminal:     true,
			FirstPieces:  1,
			SecondPieces: 1,
			Winner:       "Second",
		}
		testutil.AssertEqual(t, Describe(&pos), want)
	})
}
