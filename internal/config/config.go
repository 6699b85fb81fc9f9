// Package config provides configuration for the checkers tools.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Symbols selects the character set used to draw boards.
type Symbols string

const (
	ASCII   Symbols = "ascii"   // Diagram letters: b, B, w, W and '.'
	Unicode Symbols = "unicode" // Discs and squares: ●, ■, ○, □ and '·'
)

// LogFormat selects how log lines are written.
type LogFormat string

const (
	ConsoleLog LogFormat = "console" // Human-readable, for terminals
	JSONLog    LogFormat = "json"    // One JSON object per line
)

// Config holds all program configuration.
type Config struct {
	// Logging
	LogLevel  string // zerolog level name: trace, debug, info, warn, error
	LogFormat LogFormat

	// Board rendering
	Symbols Symbols

	// Perft and batch analysis
	Workers    int  // Goroutines used by perft fan-out and the analyzer
	PerftCache bool // Cache perft subtree counts by Zobrist hash
	CacheSize  int  // Maximum cache entries, 0 for unlimited

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		LogLevel:   "info",
		LogFormat:  ConsoleLog,
		Symbols:    ASCII,
		Workers:    runtime.NumCPU(),
		CacheSize:  1 << 20,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output file.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	switch c.Symbols {
	case ASCII, Unicode:
	default:
		return fmt.Errorf("symbols %q: want %q or %q: %w", c.Symbols, ASCII, Unicode, errors.ErrInvalidConfig)
	}
	switch c.LogFormat {
	case ConsoleLog, JSONLog:
	default:
		return fmt.Errorf("log format %q: want %q or %q: %w", c.LogFormat, ConsoleLog, JSONLog, errors.ErrInvalidConfig)
	}
	if !validLevel(c.LogLevel) {
		return fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size (%d) must not be negative: %w", c.CacheSize, errors.ErrInvalidConfig)
	}
	return nil
}

var levels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

func validLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}
