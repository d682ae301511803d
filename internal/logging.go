package internal

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

var errUnknownLogFormat = errors.New("unknown log format")

// NewLogger builds a logrus logger writing to w as described by cfg
func NewLogger(cfg LogConfig, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownLogFormat, cfg.Format)
	}

	return logger, nil
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
