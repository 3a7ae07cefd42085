// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger is the default implementation of the Logger interface.
type zapLogger struct {
	*zap.SugaredLogger
}

func loggerFromZapCore(core zapcore.Core) *zapLogger {
	return &zapLogger{SugaredLogger: zap.New(core).Sugar()}
}

func (l *zapLogger) With(keysAndValues ...any) Logger {
	return &zapLogger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}

// WithComponent appends the component to the current one, components are separated by a dot.
func (l *zapLogger) WithComponent(component string) Logger {
	return &zapLogger{SugaredLogger: l.SugaredLogger.Named(component)}
}

func (l *zapLogger) DebugWriter() *LevelWriter {
	return &LevelWriter{logger: l, level: DebugLevel}
}

func (l *zapLogger) InfoWriter() *LevelWriter {
	return &LevelWriter{logger: l, level: InfoLevel}
}

func (l *zapLogger) WarnWriter() *LevelWriter {
	return &LevelWriter{logger: l, level: WarnLevel}
}

func (l *zapLogger) ErrorWriter() *LevelWriter {
	return &LevelWriter{logger: l, level: ErrorLevel}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Logger {
	return loggerFromZapCore(zapcore.NewNopCore())
}
