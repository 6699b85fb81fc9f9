package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/draughts"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// CommandKind identifies what a line of player input asks for.
type CommandKind int

const (
	EmptyCommand CommandKind = iota // Blank line
	MoveCommand                     // Coordinates of a move
	QuitCommand                     // q, quit, exit
	HelpCommand                     // h, help, ?
	MovesCommand                    // m, moves: list legal moves
	BoardCommand                    // b, board: redraw the board
	PieceCommand                    // A single square: list that piece's moves
)

var commandWords = map[string]CommandKind{
	"q":     QuitCommand,
	"quit":  QuitCommand,
	"exit":  QuitCommand,
	"h":     HelpCommand,
	"help":  HelpCommand,
	"?":     HelpCommand,
	"m":     MovesCommand,
	"moves": MovesCommand,
	"b":     BoardCommand,
	"board": BoardCommand,
}

// Command is one parsed line of player input.
type Command struct {
	Kind CommandKind
	From draughts.Coord

	// Path holds the landing squares in order. A plain "from to" move has a
	// single entry; further pairs pick a particular capture chain.
	Path []draughts.Coord
}

// To returns the final landing square of a move command.
func (c Command) To() draughts.Coord {
	if len(c.Path) == 0 {
		return c.From
	}
	return c.Path[len(c.Path)-1]
}

// ParseCommand parses a line such as "2,1,3,2", "2 1 3 2", "2,1 4,3 6,5",
// "2,1" or "quit". Coordinates are not range-checked here; the engine rejects squares
// off the board. Malformed input returns a *errors.ParseError wrapping
// errors.ErrInvalidInput.
func ParseCommand(line string) (Command, error) {
	tokens := NewLexer(line).Tokens()
	if len(tokens) == 0 {
		return Command{Kind: EmptyCommand}, nil
	}

	first := tokens[0]
	if first.Type == WordToken {
		kind, ok := commandWords[strings.ToLower(first.Text)]
		if !ok {
			return Command{}, inputError(line, first, fmt.Sprintf("unknown command %q", first.Text))
		}
		if len(tokens) > 1 {
			return Command{}, inputError(line, tokens[1], "unexpected input after command")
		}
		return Command{Kind: kind}, nil
	}

	values := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type != NumberToken {
			return Command{}, inputError(line, tok, fmt.Sprintf("expected a number, found %q", tok.Text))
		}
		values = append(values, tok.Value)
	}
	if len(values)%2 != 0 {
		return Command{}, &errors.ParseError{
			Err:    errors.ErrInvalidInput,
			Input:  line,
			Detail: fmt.Sprintf("found %d numbers, want row,col pairs", len(values)),
		}
	}
	if len(values) == 2 {
		return Command{Kind: PieceCommand, From: draughts.C(values[0], values[1])}, nil
	}

	cmd := Command{Kind: MoveCommand, From: draughts.C(values[0], values[1])}
	for i := 2; i < len(values); i += 2 {
		cmd.Path = append(cmd.Path, draughts.C(values[i], values[i+1]))
	}
	return cmd, nil
}

func inputError(line string, tok Token, detail string) error {
	return &errors.ParseError{
		Err:    errors.ErrInvalidInput,
		Input:  line,
		Column: tok.Column,
		Detail: detail,
	}
}
