// Package game holds the state of one game being played through the engine:
// the current position, how many turns have been played, and the outcome.
package game

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/checkers-go/internal/draughts"
	"github.com/lgbarn/checkers-go/internal/engine"
)

// Session is a game in progress. It owns its position; every accepted move
// replaces it with the position the engine returns, and a rejected move
// leaves it untouched.
type Session struct {
	ID string

	pos   draughts.Position
	plies int
	log   zerolog.Logger
}

// NewSession starts a game from the standard starting position.
func NewSession(logger zerolog.Logger) *Session {
	return NewSessionFrom(draughts.NewPosition(), logger)
}

// NewSessionFrom starts a game from pos. Log events carry the session ID in
// a "game" field.
func NewSessionFrom(pos draughts.Position, logger zerolog.Logger) *Session {
	id := uuid.New().String()
	s := &Session{
		ID:  id,
		pos: pos,
		log: logger.With().Str("game", id).Logger(),
	}
	s.log.Info().
		Str("diagram", engine.FormatDiagram(&s.pos)).
		Stringer("to_move", s.pos.ToMove).
		Msg("game started")
	return s
}

// Position returns a copy of the current position.
func (s *Session) Position() draughts.Position {
	return s.pos
}

// ToMove returns the side whose turn it is.
func (s *Session) ToMove() draughts.Side {
	return s.pos.ToMove
}

// Plies returns the number of moves played so far. A capture followed by a
// further capture of the same side counts as two.
func (s *Session) Plies() int {
	return s.plies
}

// Moves returns the legal moves of the side to move.
func (s *Session) Moves() []draughts.Move {
	return engine.LegalMoves(&s.pos)
}

// MovesFrom returns the legal moves of the piece on from. It is empty when
// the square holds no piece of the side to move, or when another piece must
// capture and this one cannot.
func (s *Session) MovesFrom(from draughts.Coord) []draughts.Move {
	return engine.LegalMovesFrom(&s.pos, from)
}

// MandatoryCaptures returns the captures the side to move must choose from,
// or nil when it is free to make a simple move.
func (s *Session) MandatoryCaptures() []draughts.Move {
	return engine.MandatoryCaptures(&s.pos)
}

// Play moves the piece on from to to. When several capture chains share
// those endpoints the first in enumeration order is played; use PlayPath to
// pick another. Errors wrap errors.ErrInvalidMove.
func (s *Session) Play(from, to draughts.Coord) (draughts.Move, error) {
	m, err := engine.Validate(&s.pos, from, to)
	if err != nil {
		return draughts.Move{}, s.reject(from, to, err)
	}
	return s.commit(m)
}

// PlayPath plays the move from from whose landing squares are exactly path.
func (s *Session) PlayPath(from draughts.Coord, path []draughts.Coord) (draughts.Move, error) {
	var to draughts.Coord
	if len(path) > 0 {
		to = path[len(path)-1]
	}
	m, err := engine.ValidatePath(&s.pos, from, path)
	if err != nil {
		return draughts.Move{}, s.reject(from, to, err)
	}
	return s.commit(m)
}

func (s *Session) commit(m draughts.Move) (draughts.Move, error) {
	next, err := engine.ApplyMove(&s.pos, m)
	if err != nil {
		return draughts.Move{}, s.reject(m.From, m.To, err)
	}
	mover := s.pos.ToMove
	s.pos = next
	s.plies++

	s.log.Debug().
		Int("ply", s.plies).
		Stringer("side", mover).
		Stringer("move", m).
		Int("captured", len(m.Captures)).
		Bool("continues", next.ToMove == mover).
		Msg("move played")

	if winner, over := engine.Winner(&s.pos); over {
		s.log.Info().
			Int("plies", s.plies).
			Stringer("winner", winner).
			Msg("game over")
	}
	return m, nil
}

func (s *Session) reject(from, to draughts.Coord, err error) error {
	s.log.Debug().
		Stringer("from", from).
		Stringer("to", to).
		Err(err).
		Msg("move rejected")
	return err
}

// Over reports whether the side to move has no legal move left.
func (s *Session) Over() bool {
	return engine.IsTerminal(&s.pos)
}

// Winner returns the winning side once the game is over.
func (s *Session) Winner() (draughts.Side, bool) {
	return engine.Winner(&s.pos)
}

// Status summarises the current position.
func (s *Session) Status() engine.Status {
	return engine.Describe(&s.pos)
}
