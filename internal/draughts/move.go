package draughts

import "strings"

// Move is one complete turn: a piece travels From to To, removing every piece
// listed in Captures. A multi-jump is a single Move; Captures is empty for a
// simple step.
type Move struct {
	From     Coord   `json:"from"`
	To       Coord   `json:"to"`
	Captures []Coord `json:"captures,omitempty"`
}

// IsCapture returns true if the move removes at least one piece.
func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

// Path returns the landing squares of the move in order. For a simple move
// this is just To; for a capture chain each captured square is jumped from
// the previous landing square.
func (m Move) Path() []Coord {
	if !m.IsCapture() {
		return []Coord{m.To}
	}
	path := make([]Coord, 0, len(m.Captures))
	at := m.From
	for _, jumped := range m.Captures {
		at = Coord{Row: 2*jumped.Row - at.Row, Col: 2*jumped.Col - at.Col}
		path = append(path, at)
	}
	return path
}

// Equal reports whether two moves have the same endpoints and capture
// sequence.
func (m Move) Equal(o Move) bool {
	if m.From != o.From || m.To != o.To || len(m.Captures) != len(o.Captures) {
		return false
	}
	for i := range m.Captures {
		if m.Captures[i] != o.Captures[i] {
			return false
		}
	}
	return true
}

// String returns the move as "(2,1)-(4,3) x(3,2)".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteByte('-')
	sb.WriteString(m.To.String())
	if m.IsCapture() {
		sb.WriteString(" x")
		for i, c := range m.Captures {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}
