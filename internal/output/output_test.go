package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/draughts"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

const initialASCII = `  0 1 2 3 4 5 6 7
0 . b . b . b . b
1 b . b . b . b .
2 . b . b . b . b
3 . . . . . . . .
4 . . . . . . . .
5 w . w . w . w .
6 . w . w . w . w
7 w . w . w . w .

`

// TestBoardRenderer_ASCII verifies the initial board in ASCII symbols
func TestBoardRenderer_ASCII(t *testing.T) {
	pos := draughts.NewPosition()
	r := NewBoardRenderer(config.ASCII)

	var buf bytes.Buffer
	if err := r.Render(&buf, &pos); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	testutil.AssertEqual(t, buf.String(), initialASCII)
}

// TestBoardRenderer_Unicode verifies kings and the unicode symbol set
func TestBoardRenderer_Unicode(t *testing.T) {
	pos := testutil.Setup(t, draughts.First,
		testutil.P(0, 1, draughts.SecondKing),
		testutil.P(7, 6, draughts.FirstKing),
		testutil.P(3, 2, draughts.FirstMan),
		testutil.P(4, 5, draughts.SecondMan),
	)
	out := NewBoardRenderer(config.Unicode).String(&pos)
	lines := strings.Split(out, "\n")

	want := map[int]string{
		0: "  0 1 2 3 4 5 6 7",
		1: "0 · □ · · · · · ·",
		4: "3 · · ● · · · · ·",
		5: "4 · · · · · ○ · ·",
		8: "7 · · · · · · ■ ·",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

// TestBoardRenderer_UnknownSymbols verifies the ASCII fallback
func TestBoardRenderer_UnknownSymbols(t *testing.T) {
	r := NewBoardRenderer("emoji")
	if got := r.Symbol(draughts.SecondKing); got != "W" {
		t.Errorf("Symbol(SecondKing) = %q, want W", got)
	}
	if got := r.Symbol(draughts.Empty); got != "." {
		t.Errorf("Symbol(Empty) = %q, want .", got)
	}
}

// TestWriteMoves verifies the numbered move list
func TestWriteMoves(t *testing.T) {
	moves := []draughts.Move{
		{From: draughts.C(2, 1), To: draughts.C(4, 3), Captures: []draughts.Coord{draughts.C(3, 2)}},
		{From: draughts.C(2, 1), To: draughts.C(6, 5), Captures: []draughts.Coord{draughts.C(3, 2), draughts.C(5, 4)}},
	}

	var buf bytes.Buffer
	if err := WriteMoves(&buf, moves); err != nil {
		t.Fatalf("WriteMoves failed: %v", err)
	}
	want := " 1. (2,1)-(4,3) x(3,2)\n" +
		" 2. (2,1)-(6,5) x(3,2),(5,4)  via (4,3) (6,5)\n"
	testutil.AssertEqual(t, buf.String(), want)
}

// TestWriteDivide verifies perft divide output
func TestWriteDivide(t *testing.T) {
	entries := []engine.DivideEntry{
		{Move: draughts.Move{From: draughts.C(2, 1), To: draughts.C(3, 0)}, Nodes: 7},
		{Move: draughts.Move{From: draughts.C(2, 1), To: draughts.C(3, 2)}, Nodes: 7},
	}

	var buf bytes.Buffer
	if err := WriteDivide(&buf, entries, 14); err != nil {
		t.Fatalf("WriteDivide failed: %v", err)
	}
	want := "(2,1)-(3,0): 7\n(2,1)-(3,2): 7\n\nNodes searched: 14\n"
	testutil.AssertEqual(t, buf.String(), want)
}
