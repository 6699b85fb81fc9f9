package logging

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/errors"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", config.JSONLog)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug().Msg("hidden")
	logger.Info().Str("game", "abc").Msg("started")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "started" || entry["game"] != "abc" || entry["level"] != "info" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "DEBUG", config.ConsoleLog)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}

	logger.Debug().Int("depth", 3).Msg("perft")
	out := buf.String()
	if !strings.Contains(out, "perft") || !strings.Contains(out, "depth=3") {
		t.Errorf("console output = %q, want message and depth=3", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("console output to a buffer contains colour codes: %q", out)
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", config.ConsoleLog)
	if !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("New(loud) error = %v, want ErrInvalidConfig", err)
	}
	_, parseErr := zerolog.ParseLevel("loud")
	if err == nil || !strings.Contains(err.Error(), parseErr.Error()) {
		t.Errorf("New(loud) error = %v, want it to include %q", err, parseErr)
	}
}

func TestConfigure(t *testing.T) {
	saved := log.Logger
	t.Cleanup(func() { log.Logger = saved })

	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.LogFile = &buf
	cfg.LogFormat = config.JSONLog
	cfg.LogLevel = "warn"

	if err := Configure(cfg); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	log.Info().Msg("quiet")
	log.Warn().Msg("loud")

	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "loud") {
		t.Errorf("global logger output = %q", buf.String())
	}
}
