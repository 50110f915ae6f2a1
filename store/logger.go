package store

import (
	"fmt"
	"log/slog"
	"strings"
)

// badgerLogger adapts slog to badger's printf-style Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func newBadgerLogger(logger *slog.Logger) *badgerLogger {
	return &badgerLogger{logger: logger.With("component", "badger")}
}

// badger terminates its messages with a newline; strip it for slog.
func format(msg string, args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintf(msg, args...), "\n")
}

func (b *badgerLogger) Errorf(msg string, args ...interface{}) {
	b.logger.Error(format(msg, args...))
}

func (b *badgerLogger) Warningf(msg string, args ...interface{}) {
	b.logger.Warn(format(msg, args...))
}

func (b *badgerLogger) Infof(msg string, args ...interface{}) {
	b.logger.Info(format(msg, args...))
}

func (b *badgerLogger) Debugf(msg string, args ...interface{}) {
	b.logger.Debug(format(msg, args...))
}
