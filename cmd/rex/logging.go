package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// newLogger creates the session logger. The game owns the terminal, so
// logs only go to a file; without one they are discarded.
// The returned func closes the log file.
func newLogger(path string, debug bool) (*log.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if path != "" {
		path = expandHome(path)
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rex",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
