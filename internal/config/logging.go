package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logging environment variables.
const (
	EnvLogLevel = "WIFIHUNT_LOG_LEVEL"
	EnvLogFile  = "WIFIHUNT_LOG_FILE"
)

// NewLogger returns a logger writing to w at the level named by
// WIFIHUNT_LOG_LEVEL. Unknown levels fall back to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv(EnvLogLevel, "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// OpenLogFile opens the file named by WIFIHUNT_LOG_FILE for appending. With
// the variable unset, logs are discarded.
func OpenLogFile() (io.WriteCloser, error) {
	path := GetEnv(EnvLogFile, "")
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
