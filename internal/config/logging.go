package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// logFilePattern matches the files OpenLogFile creates; the timestamp
// format sorts chronologically as plain strings.
const logFilePattern = "huddle-*.log"

// NewLogger builds the process logger. JSON output at info level, or
// debug level when debug is on.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// OpenLogFile creates a timestamped log file under dir and prunes older
// ones down to maxFiles. The caller owns the returned handle.
func OpenLogFile(dir string, maxFiles int) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	name := filepath.Join(dir, fmt.Sprintf("huddle-%s.log",
		time.Now().Format("2006-01-02T15-04-05")))
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	if err := pruneLogs(dir, maxFiles); err != nil {
		// Pruning failure must not stop the server from logging.
		fmt.Fprintf(os.Stderr, "warning: prune old logs: %v\n", err)
	}

	return f, nil
}

func pruneLogs(dir string, maxFiles int) error {
	files, err := filepath.Glob(filepath.Join(dir, logFilePattern))
	if err != nil {
		return err
	}
	if len(files) <= maxFiles {
		return nil
	}

	sort.Strings(files)
	for _, stale := range files[:len(files)-maxFiles] {
		if err := os.Remove(stale); err != nil {
			return fmt.Errorf("remove %s: %w", stale, err)
		}
	}
	return nil
}
