package logging

import (
	"log/slog"
)

// SetupMCPMode routes all log output to the file and installs the result
// as the default logger. In serve mode stdout carries the JSON-RPC stream
// and stderr is read by some clients as a protocol error channel, so
// neither may receive a log line. Level is pinned to debug: the file is
// the only diagnostic surface a detached server has.
func SetupMCPMode() (func(), error) {
	cfg := DebugConfig()
	cfg.WriteToStderr = false

	logger, cleanup, err := Setup(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	logger.Info("serve logging ready",
		slog.String("file", cfg.FilePath),
		slog.String("level", cfg.Level))

	return cleanup, nil
}
