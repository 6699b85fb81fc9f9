package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/draughts"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// InitialDiagram is the diagram of the standard starting position.
const InitialDiagram = "1b1b1b1b/b1b1b1b1/1b1b1b1b/8/8/w1w1w1w1/1w1w1w1w/w1w1w1w1 b"

// Diagram piece characters. First plays the dark ("b") pieces and Second the
// light ("w") ones; capitals are kings.
var diagramChars = map[draughts.Square]byte{
	draughts.FirstMan:   'b',
	draughts.FirstKing:  'B',
	draughts.SecondMan:  'w',
	draughts.SecondKing: 'W',
}

// ConvertDiagramChar converts a diagram character to a square value. ok is
// false for characters that are not pieces.
func ConvertDiagramChar(c byte) (sq draughts.Square, ok bool) {
	switch c {
	case 'b':
		return draughts.FirstMan, true
	case 'B':
		return draughts.FirstKing, true
	case 'w':
		return draughts.SecondMan, true
	case 'W':
		return draughts.SecondKing, true
	default:
		return draughts.Empty, false
	}
}

// SquareLetter returns the diagram character for a square, '.' when empty.
func SquareLetter(sq draughts.Square) byte {
	if c, ok := diagramChars[sq]; ok {
		return c
	}
	return '.'
}

// ParseDiagram reads a position diagram: eight '/'-separated rows starting
// with row 0, each made of piece letters (b, B, w, W) and digits counting
// empty squares, optionally followed by the side to move ("b" for First,
// "w" for Second; First if omitted).
func ParseDiagram(diagram string) (draughts.Position, error) {
	parts := strings.Fields(diagram)
	if len(parts) < 1 || len(parts) > 2 {
		return draughts.Position{}, &errors.ParseError{
			Err: errors.ErrInvalidDiagram, Input: diagram, Detail: "expected rows and an optional side field",
		}
	}

	var pos draughts.Position
	if err := parseRows(&pos, parts[0]); err != nil {
		return draughts.Position{}, err
	}
	if err := parseSideField(&pos, parts); err != nil {
		return draughts.Position{}, err
	}
	if err := checkPieceCounts(&pos); err != nil {
		return draughts.Position{}, err
	}
	return pos, nil
}

// MustParseDiagram is like ParseDiagram but panics on error. It is meant for
// fixed diagrams in tests and tables.
func MustParseDiagram(diagram string) draughts.Position {
	pos, err := ParseDiagram(diagram)
	if err != nil {
		panic(err)
	}
	return pos
}

// parseRows parses the piece placement field.
func parseRows(pos *draughts.Position, field string) error {
	rows := strings.Split(field, "/")
	if len(rows) != draughts.BoardSize {
		return &errors.ParseError{
			Err:    errors.ErrInvalidDiagram,
			Input:  field,
			Detail: fmt.Sprintf("found %d rows, want %d", len(rows), draughts.BoardSize),
		}
	}

	for row, text := range rows {
		col := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				sq, ok := ConvertDiagramChar(c)
				if !ok {
					return &errors.ParseError{
						Err: errors.ErrInvalidDiagram, Line: row + 1, Column: i + 1,
						Detail: fmt.Sprintf("unknown piece %q", c),
					}
				}
				at := draughts.C(row, col)
				if !at.Playable() {
					return &errors.ParseError{
						Err: errors.ErrInvalidDiagram, Line: row + 1, Column: i + 1,
						Detail: fmt.Sprintf("piece on unplayable square %v", at),
					}
				}
				pos.Set(at, sq)
				col++
			}
			if col > draughts.BoardSize {
				return &errors.ParseError{
					Err: errors.ErrInvalidDiagram, Line: row + 1, Column: i + 1,
					Detail: "row longer than the board",
				}
			}
		}
		if col != draughts.BoardSize {
			return &errors.ParseError{
				Err: errors.ErrInvalidDiagram, Line: row + 1,
				Detail: fmt.Sprintf("row covers %d squares, want %d", col, draughts.BoardSize),
			}
		}
	}
	return nil
}

// parseSideField parses the side to move field.
func parseSideField(pos *draughts.Position, parts []string) error {
	pos.ToMove = draughts.First
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "b":
		pos.ToMove = draughts.First
	case "w":
		pos.ToMove = draughts.Second
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidDiagram)
	}
	return nil
}

// checkPieceCounts rejects positions with more pieces than a side starts with.
func checkPieceCounts(pos *draughts.Position) error {
	for _, side := range []draughts.Side{draughts.First, draughts.Second} {
		if n := pos.Count(side); n > draughts.MaxPieces {
			return fmt.Errorf("%v has %d pieces, at most %d allowed: %w",
				side, n, draughts.MaxPieces, errors.ErrInvalidDiagram)
		}
	}
	return nil
}

// FormatDiagram converts a position to its diagram.
func FormatDiagram(pos *draughts.Position) string {
	var sb strings.Builder

	for row := 0; row < draughts.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < draughts.BoardSize; col++ {
			sq := pos.At(draughts.C(row, col))
			if sq.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(SquareLetter(sq))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < draughts.BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.ToMove == draughts.First {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}
