// Package logging configures the zerolog logger shared by the checkers tools.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// New returns a logger writing to w at the given level and format. A
// console logger writes human-readable lines without colour when w is not a
// terminal.
func New(w io.Writer, level string, format config.LogFormat) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %v: %w", level, err, errors.ErrInvalidConfig)
	}

	out := w
	if format != config.JSONLog {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// Configure builds a logger from cfg and installs it as the global logger
// used by the zerolog/log package.
func Configure(cfg *config.Config) error {
	logger, err := New(cfg.LogFile, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	log.Logger = logger
	return nil
}
