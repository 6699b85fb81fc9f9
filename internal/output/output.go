// Package output renders boards, move lists and analysis results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/draughts"
	"github.com/lgbarn/checkers-go/internal/engine"
)

var unicodeSymbols = map[draughts.Square]string{
	draughts.Empty:      "·",
	draughts.FirstMan:   "●",
	draughts.FirstKing:  "■",
	draughts.SecondMan:  "○",
	draughts.SecondKing: "□",
}

// BoardRenderer draws positions as text with row and column numbers.
type BoardRenderer struct {
	symbols config.Symbols
}

// NewBoardRenderer creates a renderer for the given symbol set. Unknown sets
// fall back to ASCII.
func NewBoardRenderer(symbols config.Symbols) *BoardRenderer {
	if symbols != config.Unicode {
		symbols = config.ASCII
	}
	return &BoardRenderer{symbols: symbols}
}

// Symbol returns the text drawn for a square.
func (r *BoardRenderer) Symbol(sq draughts.Square) string {
	if r.symbols == config.Unicode {
		if s, ok := unicodeSymbols[sq]; ok {
			return s
		}
	}
	return string(engine.SquareLetter(sq))
}

// Render writes the board, column numbers first and a row number at the
// start of each line, followed by a blank line.
func (r *BoardRenderer) Render(w io.Writer, pos *draughts.Position) error {
	_, err := io.WriteString(w, r.String(pos))
	return err
}

// String returns the rendered board.
func (r *BoardRenderer) String(pos *draughts.Position) string {
	var sb strings.Builder

	sb.WriteString(" ")
	for col := 0; col < draughts.BoardSize; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < draughts.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d", row)
		for col := 0; col < draughts.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteString(r.Symbol(pos.At(draughts.C(row, col))))
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// WriteMoves writes one numbered move per line. Capture moves also list the
// landing squares of every jump.
func WriteMoves(w io.Writer, moves []draughts.Move) error {
	for i, m := range moves {
		line := fmt.Sprintf("%2d. %v", i+1, m)
		if len(m.Captures) > 1 {
			line += fmt.Sprintf("  via %v", formatPath(m.Path()))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteDivide writes per-root-move perft counts and the total.
func WriteDivide(w io.Writer, entries []engine.DivideEntry, total uint64) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%v: %d\n", e.Move, e.Nodes); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nNodes searched: %d\n", total)
	return err
}

func formatPath(path []draughts.Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
