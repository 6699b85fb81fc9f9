package engine

import "github.com/lgbarn/checkers-go/internal/draughts"

// IsTerminal reports whether the side to move has no legal move: none of its
// pieces has a non-empty move set. A side with no pieces left is terminal.
func IsTerminal(pos *draughts.Position) bool {
	for _, from := range pos.Pieces(pos.ToMove) {
		if len(GenerateMoves(pos, from)) > 0 {
			return false
		}
	}
	return true
}

// Winner returns the winning side of a terminal position: the side that is
// not to move. ok is false while the game is still in progress.
func Winner(pos *draughts.Position) (winner draughts.Side, ok bool) {
	if !IsTerminal(pos) {
		return draughts.First, false
	}
	return pos.ToMove.Opposite(), true
}

// Status summarises a position for callers that display or analyse it.
type Status struct {
	ToMove         draughts.Side `json:"to_move"`
	LegalMoves     int           `json:"legal_moves"`
	MustCapture    bool          `json:"must_capture"`
	Terminal       bool          `json:"terminal"`
	FirstPieces    int           `json:"first_pieces"`
	SecondPieces   int           `json:"second_pieces"`
	FirstKings     int           `json:"first_kings"`
	SecondKings    int           `json:"second_kings"`
	Winner         string        `json:"winner,omitempty"`
	MaxCaptureSize int           `json:"max_capture_size,omitempty"`
}

// Describe computes the Status of pos.
func Describe(pos *draughts.Position) Status {
	moves := LegalMoves(pos)
	s := Status{
		ToMove:       pos.ToMove,
		LegalMoves:   len(moves),
		MustCapture:  len(moves) > 0 && moves[0].IsCapture(),
		Terminal:     IsTerminal(pos),
		FirstPieces:  pos.Count(draughts.First),
		SecondPieces: pos.Count(draughts.Second),
		FirstKings:   pos.Kings(draughts.First),
		SecondKings:  pos.Kings(draughts.Second),
	}
	for _, m := range moves {
		if len(m.Captures) > s.MaxCaptureSize {
			s.MaxCaptureSize = len(m.Captures)
		}
	}
	if w, ok := Winner(pos); ok {
		s.Winner = w.String()
	}
	return s
}
