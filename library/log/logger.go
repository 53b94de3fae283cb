// Package log is a logging package that provides functions to log messages.
package log

import (
	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
)

// loggerName is the root name every component logger is derived from.
const loggerName = "video-search"

var Logger logSDK.Logger

func init() {
	var err error
	if Logger, err = logSDK.NewConsoleWithName(loggerName, logSDK.LevelInfo); err != nil {
		logSDK.Shared.Panic("new logger", zap.Error(err))
	}
}

// SetupFile replaces Logger with one that writes to path instead of the console.
//
// The interactive view owns the terminal, anything written to stdout or stderr
// while it runs would corrupt the screen.
func SetupFile(path string, level logSDK.Level) error {
	if path == "" {
		return errors.New("log file path is empty")
	}

	logger, err := logSDK.New(
		logSDK.WithName(loggerName),
		logSDK.WithOutputPaths([]string{path}),
		logSDK.WithErrorOutputPaths([]string{path}),
	)
	if err != nil {
		return errors.Wrapf(err, "new file logger %q", path)
	}
	if err = logger.ChangeLevel(level); err != nil {
		return errors.Wrapf(err, "change log level to %q", level)
	}

	Logger = logger
	return nil
}
