package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/lgbarn/checkers-go/internal/game"
	"github.com/lgbarn/checkers-go/internal/output"
	"github.com/lgbarn/checkers-go/internal/parser"
)

const playHelp = `Enter a move as the source and destination squares, row then column:
  2,1,3,2     or   2 1 3 2
Add landing squares to pick one capture chain among several:
  2,3 4,1 6,3
Enter a single square to list the moves of the piece on it:
  2,1
Other commands:
  m, moves    list the legal moves
  b, board    show the board again
  h, help     show this help
  q, quit     leave the game
`

func (a *app) playAction(cCtx *cli.Context) error {
	pos, err := positionFlag(cCtx)
	if err != nil {
		return err
	}
	session := game.NewSessionFrom(pos, log.Logger)
	return playGame(session, a.in, a.cfg.OutputFile, output.NewBoardRenderer(a.cfg.Symbols))
}

// playGame runs the interactive loop until the game ends, the player quits
// or the input runs out. Bad input and illegal moves are reported and the
// player is asked again.
func playGame(session *game.Session, in io.Reader, out io.Writer, renderer *output.BoardRenderer) error {
	scanner := bufio.NewScanner(in)
	showBoard := true

	for {
		pos := session.Position()
		if winner, over := session.Winner(); over {
			if err := renderer.Render(out, &pos); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s has no moves left. Game over, %s wins!\n", pos.ToMove, winner)
			return nil
		}

		if showBoard {
			if err := showPosition(session, out, renderer); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "%s to move: ", session.ToMove())

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		cmd, err := parser.ParseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "Invalid input: %v\nType h for help.\n", err)
			showBoard = false
			continue
		}

		showBoard = false
		switch cmd.Kind {
		case parser.QuitCommand:
			fmt.Fprintln(out, "Goodbye.")
			return nil
		case parser.HelpCommand:
			fmt.Fprint(out, playHelp)
		case parser.MovesCommand:
			if err := output.WriteMoves(out, session.Moves()); err != nil {
				return err
			}
		case parser.BoardCommand:
			showBoard = true
		case parser.PieceCommand:
			moves := session.MovesFrom(cmd.From)
			if len(moves) == 0 {
				fmt.Fprintf(out, "No legal moves from %v.\n", cmd.From)
				continue
			}
			if err := output.WriteMoves(out, moves); err != nil {
				return err
			}
		case parser.MoveCommand:
			if err := playMove(session, cmd); err != nil {
				fmt.Fprintf(out, "Invalid move: %v\n", err)
				continue
			}
			showBoard = true
		}
	}
}

func playMove(session *game.Session, cmd parser.Command) error {
	var err error
	if len(cmd.Path) == 1 {
		_, err = session.Play(cmd.From, cmd.To())
	} else {
		_, err = session.PlayPath(cmd.From, cmd.Path)
	}
	return err
}

// showPosition draws the board and lists any captures the side to move must
// choose from.
func showPosition(session *game.Session, out io.Writer, renderer *output.BoardRenderer) error {
	pos := session.Position()
	if err := renderer.Render(out, &pos); err != nil {
		return err
	}
	captures := session.MandatoryCaptures()
	if len(captures) == 0 {
		return nil
	}
	fmt.Fprintf(out, "%s must capture:\n", pos.ToMove)
	return output.WriteMoves(out, captures)
}
