package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	logDirPerm  = 0o750
	logFilePerm = 0o600
)

// FileConfig controls where the logger writes.
type FileConfig struct {
	Enabled       bool
	Path          string
	WriteToStderr bool
}

// NewWithFile creates a logger that appends to a file and optionally mirrors to stderr.
// The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}
	if !fileCfg.Enabled || fileCfg.Path == "" {
		if fileCfg.WriteToStderr {
			return New(cfg), noop, nil
		}
		return zerolog.Nop(), noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(fileCfg.Path), logDirPerm); err != nil {
		return New(cfg), noop, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(fileCfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return New(cfg), noop, fmt.Errorf("open log file: %w", err)
	}

	jsonCfg := cfg
	jsonCfg.Format = "json"
	var out io.Writer = f
	if fileCfg.WriteToStderr {
		out = zerolog.MultiLevelWriter(f, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat})
	}

	logger := NewWithWriter(jsonCfg, out)
	return logger, func() { _ = f.Close() }, nil
}
