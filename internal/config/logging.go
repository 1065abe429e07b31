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

// NewLogger builds the process logger: JSON to out, debug level in dev.
func NewLogger(cfg *Config, out io.Writer) *slog.Logger {
	logLevel := slog.LevelInfo
	if cfg.IsDev() {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

const logFilePattern = "pitchdeck-*.log"

// OpenLogFile creates a timestamped log file under dir. The caller closes it.
func OpenLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	name := filepath.Join(dir, fmt.Sprintf("pitchdeck-%s.log", time.Now().Format("2006-01-02T15-04-05.000")))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}
	return f, nil
}

// PruneLogFiles keeps the newest maxFiles log files in dir and returns how
// many were removed. Failures are logged and never stop the server.
func PruneLogFiles(logger *slog.Logger, dir string, maxFiles int) int {
	files, err := filepath.Glob(filepath.Join(dir, logFilePattern))
	if err != nil {
		logger.Warn("list log files", "dir", dir, "error", err)
		return 0
	}
	if maxFiles < 1 || len(files) <= maxFiles {
		return 0
	}

	// timestamped names sort chronologically
	sort.Strings(files)

	removed := 0
	for _, name := range files[:len(files)-maxFiles] {
		if err := os.Remove(name); err != nil {
			logger.Warn("remove old log file", "file", name, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		logger.Debug("old log files removed", "dir", dir, "count", removed)
	}
	return removed
}
