package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/lgbarn/checkers-go/internal/draughts"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/output"
	"github.com/lgbarn/checkers-go/internal/parser"
	"github.com/lgbarn/checkers-go/internal/worker"
)

// positionFlag parses the --diagram flag of a command and applies --to-move
// when it is set.
func positionFlag(cCtx *cli.Context) (draughts.Position, error) {
	pos, err := engine.ParseDiagram(cCtx.String(flagDiagram))
	if err != nil {
		return draughts.Position{}, errors.Wrap(err, "--"+flagDiagram)
	}
	if cCtx.IsSet(flagToMove) {
		if err := pos.ToMove.UnmarshalText([]byte(cCtx.String(flagToMove))); err != nil {
			return draughts.Position{}, fmt.Errorf("--%s: %v: %w", flagToMove, err, errors.ErrInvalidInput)
		}
	}
	return pos, nil
}

func (a *app) movesAction(cCtx *cli.Context) error {
	pos, err := positionFlag(cCtx)
	if err != nil {
		return err
	}

	out := a.cfg.OutputFile
	if err := output.NewBoardRenderer(a.cfg.Symbols).Render(out, &pos); err != nil {
		return err
	}

	if winner, over := engine.Winner(&pos); over {
		_, err := fmt.Fprintf(out, "%s has no legal moves. %s wins.\n", pos.ToMove, winner)
		return err
	}

	moves := engine.LegalMoves(&pos)
	note := ""
	if moves[0].IsCapture() {
		note = ", capture is mandatory"
	}
	if _, err := fmt.Fprintf(out, "%s to move: %d legal moves%s\n", pos.ToMove, len(moves), note); err != nil {
		return err
	}
	return output.WriteMoves(out, moves)
}

func (a *app) perftAction(cCtx *cli.Context) error {
	if err := applySearchFlags(a.cfg, cCtx); err != nil {
		return err
	}
	depth := cCtx.Int(flagDepth)
	if depth < 0 {
		return fmt.Errorf("--%s %d: must not be negative: %w", flagDepth, depth, errors.ErrInvalidInput)
	}
	pos, err := positionFlag(cCtx)
	if err != nil {
		return err
	}

	var cache engine.PerftCache
	var table *hashing.ThreadSafeTable
	if a.cfg.PerftCache {
		table = hashing.NewThreadSafeTable(a.cfg.CacheSize)
		cache = table
	}

	start := time.Now()
	entries, total, err := engine.ParallelPerft(cCtx.Context, &pos, depth, a.cfg.Workers, cache)
	if err != nil {
		return err
	}

	event := log.Info().
		Int("depth", depth).
		Uint64("nodes", total).
		Int("workers", a.cfg.Workers).
		Dur("elapsed", time.Since(start))
	if table != nil {
		event = event.Int("cache_entries", table.Len()).Int("cache_hits", table.Hits())
	}
	event.Msg("perft finished")

	if cCtx.Bool(flagDivide) {
		return output.WriteDivide(a.cfg.OutputFile, entries, total)
	}
	_, err = fmt.Fprintf(a.cfg.OutputFile, "Nodes searched: %d\n", total)
	return err
}

func (a *app) analyzeAction(cCtx *cli.Context) error {
	if err := applySearchFlags(a.cfg, cCtx); err != nil {
		return err
	}
	if cCtx.NArg() != 1 {
		return fmt.Errorf("analyze takes one FILE argument, got %d: %w", cCtx.NArg(), errors.ErrInvalidInput)
	}

	name := cCtx.Args().First()
	in, closeInput, err := a.openInput(name)
	if err != nil {
		return err
	}
	defer closeInput()

	items, err := parser.ReadDiagrams(in)
	if err != nil {
		return err
	}

	start := time.Now()
	results := worker.Analyze(items, nil, worker.WithWorkers(a.cfg.Workers))

	var writer output.ResultWriter
	switch {
	case cCtx.Bool(flagJSONLines):
		writer = output.NewJSONWriterSingle(a.cfg.OutputFile)
	case cCtx.Bool(flagJSON):
		writer = output.NewJSONWriter(a.cfg.OutputFile)
	default:
		writer = output.NewTextWriter(a.cfg.OutputFile)
	}

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			log.Warn().Int("line", r.Line).Err(r.Error).Msg("skipping position")
		}
		if err := writer.WriteResult(r); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	log.Info().
		Str("file", name).
		Int("positions", len(results)).
		Int("failed", failed).
		Dur("elapsed", time.Since(start)).
		Msg("analysis finished")
	return nil
}

// openInput opens the named file, or standard input for "-".
func (a *app) openInput(name string) (io.Reader, func(), error) {
	if name == "-" {
		return a.in, func() {}, nil
	}
	f, err := os.Open(name) //nolint:gosec // G304: reading a user-named file is the point
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %s", name)
	}
	return f, func() { _ = f.Close() }, nil
}
