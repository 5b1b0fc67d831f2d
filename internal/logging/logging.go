package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	mu     sync.Mutex
)

// InitLogger configures the process-wide logger. It may be called again to
// change level or format.
func InitLogger(level logrus.Level, format string) *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
	}
	logger.SetLevel(level)
	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// GetLogger returns the process-wide logger, creating an info-level text
// logger on first use.
func GetLogger() *logrus.Logger {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l != nil {
		return l
	}
	return InitLogger(logrus.InfoLevel, "text")
}

// ParseLevel maps a config string to a logrus level, falling back to info.
func ParseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
