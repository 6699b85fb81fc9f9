// checkers plays and analyses English draughts positions from the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the streams and configuration shared by every command.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	cfg    *config.Config
}

// newApp builds the command tree. Configuration is resolved in Before:
// defaults, then the environment and .env files, then global flags.
func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	a := &app{in: in, out: out, errOut: errOut, cfg: config.NewConfig()}

	return &cli.App{
		Name:           "checkers",
		Usage:          "Play and analyse English draughts positions",
		Version:        programVersion,
		Reader:         in,
		Writer:         out,
		ErrWriter:      errOut,
		Flags:          globalFlags(),
		Before:         a.configure,
		Commands:       a.commands(),
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// configure loads the configuration and installs the global logger.
func (a *app) configure(cCtx *cli.Context) error {
	a.cfg.SetOutput(a.out)
	a.cfg.LogFile = a.errOut

	if err := config.LoadEnv(a.cfg, cCtx.StringSlice(flagEnvFile)...); err != nil {
		return err
	}
	if err := applyGlobalFlags(a.cfg, cCtx); err != nil {
		return err
	}
	if err := logging.Configure(a.cfg); err != nil {
		return err
	}

	log.Debug().
		Str("symbols", string(a.cfg.Symbols)).
		Int("workers", a.cfg.Workers).
		Bool("perft_cache", a.cfg.PerftCache).
		Msg("configuration loaded")
	return nil
}

func (a *app) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "play",
			Usage:  "Play a game on the terminal, entering moves as row,col pairs",
			Flags:  []cli.Flag{diagramFlag("position to start from"), toMoveFlag()},
			Action: a.playAction,
		},
		{
			Name:   "moves",
			Usage:  "List the legal moves of a position",
			Flags:  []cli.Flag{diagramFlag("position to list moves for"), toMoveFlag()},
			Action: a.movesAction,
		},
		{
			Name:  "perft",
			Usage: "Count the leaf nodes of the move tree to a given depth",
			Flags: append([]cli.Flag{
				&cli.IntFlag{
					Name:     flagDepth,
					Aliases:  []string{"d"},
					Usage:    "search depth in plies",
					Required: true,
				},
				diagramFlag("root position"),
				toMoveFlag(),
				&cli.BoolFlag{
					Name:  flagDivide,
					Usage: "print the count below each root move",
				},
			}, searchFlags()...),
			Action: a.perftAction,
		},
		{
			Name:      "analyze",
			Usage:     "Summarise every position in a file of diagrams, one per line",
			ArgsUsage: "FILE (or - for standard input)",
			Flags: append([]cli.Flag{
				&cli.BoolFlag{
					Name:  flagJSON,
					Usage: "write the results as one JSON document",
				},
				&cli.BoolFlag{
					Name:  flagJSONLines,
					Usage: "write one JSON object per line",
				},
			}, searchFlags()...),
			Action: a.analyzeAction,
		},
	}
}
