package logger

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/abhisek/koten/internal/config"
	"github.com/abhisek/koten/internal/store"
)

// New builds the application logger. The TUI owns stdout and stderr, so
// output always goes to a file: cfg.LogFile, or koten.log in the data dir.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}

	path, err := Path(cfg)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}

	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		zcfg.Level = level
	}

	return zcfg.Build()
}

// Path returns the log file location for cfg.
func Path(cfg *config.Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	dir, err := store.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "koten.log"), nil
}
