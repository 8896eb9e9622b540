package common

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// SetupLogging installs a text slog handler writing to w. Verbose logs at
// debug level, otherwise only warnings and errors are shown.
func SetupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// SetupFileLogging sends slog output to a file, for full-screen commands
// where stderr would corrupt the display. Returns a close func.
func SetupFileLogging(path string, verbose bool) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	SetupLogging(logFile, verbose)
	return logFile.Close, nil
}
