package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Environment variables read by LoadEnv.
const (
	EnvLogLevel   = "CHECKERS_LOG_LEVEL"
	EnvLogFormat  = "CHECKERS_LOG_FORMAT"
	EnvSymbols    = "CHECKERS_SYMBOLS"
	EnvWorkers    = "CHECKERS_WORKERS"
	EnvPerftCache = "CHECKERS_PERFT_CACHE"
	EnvCacheSize  = "CHECKERS_CACHE_SIZE"
)

// DefaultEnvFile is read by LoadEnv when no files are named and it exists.
const DefaultEnvFile = ".env"

// LoadEnv overrides cfg with values from the process environment and the
// given .env files. The process environment wins over file values. Named
// files must exist; with no names, DefaultEnvFile is read if present.
func LoadEnv(cfg *Config, files ...string) error {
	fileEnv, err := readEnvFiles(files)
	if err != nil {
		return err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.LogFormat = LogFormat(v)
	}
	if v, ok := lookup(EnvSymbols); ok {
		cfg.Symbols = Symbols(v)
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, errors.ErrInvalidConfig)
		}
		cfg.Workers = n
	}
	if v, ok := lookup(EnvPerftCache); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvPerftCache, v, errors.ErrInvalidConfig)
		}
		cfg.PerftCache = b
	}
	if v, ok := lookup(EnvCacheSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvCacheSize, v, errors.ErrInvalidConfig)
		}
		cfg.CacheSize = n
	}
	return cfg.Validate()
}

func readEnvFiles(files []string) (map[string]string, error) {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return nil, nil
		}
		files = []string{DefaultEnvFile}
	}
	env, err := godotenv.Read(files...)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", files)
	}
	return env, nil
}
