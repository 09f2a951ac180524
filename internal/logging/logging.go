// Package logging adapts github.com/luxfi/log's Logger interface to
// cohgen's two run modes: quiet (the default) and verbose (-v). It mirrors
// the teacher's own log.NoLog adapter (same method surface, satisfying
// log.Logger) but backs verbose mode with a real slog handler instead of
// discarding every call.
package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/luxfi/log"
	"go.uber.org/zap"
)

// New returns a no-op logger when verbose is false, and an slog-backed
// logger writing to stderr at debug level when true.
func New(verbose bool) log.Logger {
	if !verbose {
		return log.NewNoOpLogger()
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &stderrLogger{inner: slog.New(handler)}
}

type stderrLogger struct {
	inner *slog.Logger
}

func (l *stderrLogger) With(ctx ...interface{}) log.Logger {
	return &stderrLogger{inner: l.inner.With(ctx...)}
}

func (l *stderrLogger) New(ctx ...interface{}) log.Logger { return l.With(ctx...) }

func (l *stderrLogger) Log(level slog.Level, msg string, ctx ...interface{}) {
	l.inner.Log(context.Background(), level, msg, ctx...)
}

func (l *stderrLogger) Trace(msg string, ctx ...interface{}) { l.Log(slog.LevelDebug-4, msg, ctx...) }
func (l *stderrLogger) Debug(msg string, ctx ...interface{}) { l.inner.Debug(msg, ctx...) }
func (l *stderrLogger) Info(msg string, ctx ...interface{})  { l.inner.Info(msg, ctx...) }
func (l *stderrLogger) Warn(msg string, ctx ...interface{})  { l.inner.Warn(msg, ctx...) }
func (l *stderrLogger) Error(msg string, ctx ...interface{}) { l.inner.Error(msg, ctx...) }
func (l *stderrLogger) Crit(msg string, ctx ...interface{})  { l.inner.Error(msg, ctx...) }

func (l *stderrLogger) WriteLog(level slog.Level, msg string, attrs ...any) {
	l.Log(level, msg, attrs...)
}

func (l *stderrLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.inner.Enabled(ctx, level)
}

func (l *stderrLogger) Handler() slog.Handler { return l.inner.Handler() }

func (l *stderrLogger) Fatal(msg string, fields ...zap.Field) {
	l.inner.Error(msg)
	os.Exit(1)
}

func (l *stderrLogger) Verbo(msg string, fields ...zap.Field) { l.Trace(msg) }

func (l *stderrLogger) WithFields(fields ...zap.Field) log.Logger { return l }
func (l *stderrLogger) WithOptions(opts ...zap.Option) log.Logger { return l }

func (l *stderrLogger) SetLevel(level slog.Level)     {}
func (l *stderrLogger) GetLevel() slog.Level          { return slog.LevelDebug }
func (l *stderrLogger) EnabledLevel(lvl slog.Level) bool { return true }

func (l *stderrLogger) StopOnPanic() {}
func (l *stderrLogger) RecoverAndPanic(f func()) { f() }
func (l *stderrLogger) RecoverAndExit(f, exit func()) { f() }
func (l *stderrLogger) Stop() {}

func (l *stderrLogger) Write(p []byte) (int, error) {
	l.inner.Debug(string(p))
	return len(p), nil
}
