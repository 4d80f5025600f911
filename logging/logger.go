package logging

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logging interface used throughout the planner,
// matching the call sites kept from the teacher (e.g.
// `mp.logger.CDebugf(ctx, ...)` in motionplan/armplanning/cBiRRT.go): plain
// and context-aware variants at each level, plus structured "with fields"
// variants.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Context-aware variants are identical to their non-"C" counterparts;
	// the context is accepted so call sites can be upgraded to propagate
	// trace/request IDs without changing signatures, matching the teacher's
	// own `CDebugf(ctx, ...)` convention.
	CDebugf(ctx context.Context, template string, args ...interface{})
	CInfof(ctx context.Context, template string, args ...interface{})
	CWarnf(ctx context.Context, template string, args ...interface{})
	CErrorf(ctx context.Context, template string, args ...interface{})

	// Sync flushes any buffered log entries.
	Sync() error
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger builds a Logger that writes through the given appenders. With no
// appenders, it defaults to a stdout ConsoleAppender.
func NewLogger(appenders ...Appender) Logger {
	if len(appenders) == 0 {
		appenders = []Appender{NewStdoutAppender()}
	}
	cores := make([]zapcore.Core, 0, len(appenders))
	for _, a := range appenders {
		cores = append(cores, &appenderCore{appender: a, enabler: zapcore.DebugLevel})
	}
	core := zapcore.NewTee(cores...)
	zl := zap.New(core, zap.AddCaller())
	return &zapLogger{sugar: zl.Sugar()}
}

// appenderCore adapts an Appender (spec's observability-collaborator shape)
// into a zapcore.Core so it can be combined with zap's SugaredLogger API.
type appenderCore struct {
	appender Appender
	enabler  zapcore.LevelEnabler
}

func (c *appenderCore) Enabled(level zapcore.Level) bool { return c.enabler.Enabled(level) }
func (c *appenderCore) With([]zapcore.Field) zapcore.Core { return c }
func (c *appenderCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}
	return ce
}

func (c *appenderCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	return c.appender.Write(entry, fields)
}

func (c *appenderCore) Sync() error { return c.appender.Sync() }

var globalLogger Logger = NewLogger()

// Global returns the package-level default logger, used by code paths that
// have not been handed a Logger explicitly.
func Global() Logger { return globalLogger }

func (l *zapLogger) Debug(args ...interface{})                    { l.sugar.Debug(args...) }
func (l *zapLogger) Debugf(template string, args ...interface{})  { l.sugar.Debugf(template, args...) }
func (l *zapLogger) Debugw(msg string, kv ...interface{})         { l.sugar.Debugw(msg, kv...) }
func (l *zapLogger) Info(args ...interface{})                     { l.sugar.Info(args...) }
func (l *zapLogger) Infof(template string, args ...interface{})   { l.sugar.Infof(template, args...) }
func (l *zapLogger) Infow(msg string, kv ...interface{})          { l.sugar.Infow(msg, kv...) }
func (l *zapLogger) Warn(args ...interface{})                     { l.sugar.Warn(args...) }
func (l *zapLogger) Warnf(template string, args ...interface{})   { l.sugar.Warnf(template, args...) }
func (l *zapLogger) Warnw(msg string, kv ...interface{})          { l.sugar.Warnw(msg, kv...) }
func (l *zapLogger) Error(args ...interface{})                    { l.sugar.Error(args...) }
func (l *zapLogger) Errorf(template string, args ...interface{})  { l.sugar.Errorf(template, args...) }
func (l *zapLogger) Errorw(msg string, kv ...interface{})         { l.sugar.Errorw(msg, kv...) }

func (l *zapLogger) CDebugf(_ context.Context, template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}

func (l *zapLogger) CInfof(_ context.Context, template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}

func (l *zapLogger) CWarnf(_ context.Context, template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}

func (l *zapLogger) CErrorf(_ context.Context, template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}

func (l *zapLogger) Sync() error { return l.sugar.Sync() }
