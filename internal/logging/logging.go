package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls where log output lands and how much of it there is.
type Config struct {
	// Level is the minimum level recorded (debug, info, warn, error).
	Level string
	// FilePath is the log file destination.
	FilePath string
	// MaxSizeMB caps the file size in megabytes before rollover.
	MaxSizeMB int
	// MaxFiles caps how many rolled files are kept.
	MaxFiles int
	// WriteToStderr mirrors entries to stderr as well as the file.
	WriteToStderr bool
}

// DefaultConfig returns the standard CLI setup: info level to
// ~/.lexindex/logs/server.log, mirrored to stderr.
func DefaultConfig() Config {
	return Config{
		Level:         "info",
		FilePath:      DefaultLogPath(),
		MaxSizeMB:     10,
		MaxFiles:      5,
		WriteToStderr: true,
	}
}

// DebugConfig is DefaultConfig at debug verbosity.
func DebugConfig() Config {
	cfg := DefaultConfig()
	cfg.Level = "debug"
	return cfg
}

// Setup opens the rotating log file and returns a JSON-structured logger
// writing to it, plus a cleanup that flushes and closes the file.
func Setup(cfg Config) (*slog.Logger, func(), error) {
	w, err := NewRotatingWriter(cfg.FilePath, cfg.MaxSizeMB, cfg.MaxFiles)
	if err != nil {
		return nil, nil, err
	}

	var sink io.Writer = w
	if cfg.WriteToStderr {
		sink = io.MultiWriter(w, os.Stderr)
	}

	handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})

	cleanup := func() {
		_ = w.Sync()
		_ = w.Close()
	}
	return slog.New(handler), cleanup, nil
}

var levelNames = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// parseLevel maps a config string to its slog.Level. Unknown names fall
// back to info.
func parseLevel(name string) slog.Level {
	if lvl, ok := levelNames[strings.ToLower(name)]; ok {
		return lvl
	}
	return slog.LevelInfo
}
