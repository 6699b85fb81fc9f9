package main

import (
	"github.com/urfave/cli/v2"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
)

// Flag names.
const (
	flagEnvFile   = "env-file"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagSymbols   = "symbols"
	flagWorkers   = "workers"
	flagCache     = "cache"
	flagCacheSize = "cache-size"
	flagDiagram   = "diagram"
	flagToMove    = "to-move"
	flagDepth     = "depth"
	flagDivide    = "divide"
	flagJSON      = "json"
	flagJSONLines = "jsonl"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  flagEnvFile,
			Usage: "read settings from these .env files (default: ./.env if present)",
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Usage: "log level: trace, debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  flagLogFormat,
			Usage: "log format: console or json",
		},
		&cli.StringFlag{
			Name:  flagSymbols,
			Usage: "board symbols: ascii or unicode",
		},
	}
}

// searchFlags are shared by the commands that spread work over goroutines.
func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    flagWorkers,
			Aliases: []string{"w"},
			Usage:   "number of worker goroutines (default: number of CPUs)",
		},
		&cli.BoolFlag{
			Name:  flagCache,
			Usage: "cache perft subtree counts by position hash",
		},
		&cli.IntFlag{
			Name:  flagCacheSize,
			Usage: "maximum cache entries, 0 for unlimited",
		},
	}
}

func diagramFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:  flagDiagram,
		Usage: usage + " as a diagram",
		Value: engine.InitialDiagram,
	}
}

func toMoveFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  flagToMove,
		Usage: "side to move, First or Second, overriding the diagram",
	}
}

// applyGlobalFlags overrides cfg with the global flags the user set. Unset
// flags leave the environment's values in place.
func applyGlobalFlags(cfg *config.Config, cCtx *cli.Context) error {
	if cCtx.IsSet(flagLogLevel) {
		cfg.LogLevel = cCtx.String(flagLogLevel)
	}
	if cCtx.IsSet(flagLogFormat) {
		cfg.LogFormat = config.LogFormat(cCtx.String(flagLogFormat))
	}
	if cCtx.IsSet(flagSymbols) {
		cfg.Symbols = config.Symbols(cCtx.String(flagSymbols))
	}
	return cfg.Validate()
}

// applySearchFlags overrides cfg with the worker and cache flags of a
// subcommand.
func applySearchFlags(cfg *config.Config, cCtx *cli.Context) error {
	if cCtx.IsSet(flagWorkers) {
		cfg.Workers = cCtx.Int(flagWorkers)
	}
	if cCtx.IsSet(flagCache) {
		cfg.PerftCache = cCtx.Bool(flagCache)
	}
	if cCtx.IsSet(flagCacheSize) {
		cfg.CacheSize = cCtx.Int(flagCacheSize)
	}
	return cfg.Validate()
}
