package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// LevelWriter is an io.Writer which logs each written line with the fixed level.
type LevelWriter struct {
	logger baseLogger
	level  zapcore.Level
}

func (w *LevelWriter) Write(p []byte) (n int, err error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		switch w.level {
		case DebugLevel:
			w.logger.Debug(line)
		case WarnLevel:
			w.logger.Warn(line)
		case ErrorLevel:
			w.logger.Error(line)
		default:
			w.logger.Info(line)
		}
	}
	return len(p), nil
}

func (w *LevelWriter) WriteString(s string) {
	_, _ = w.Write([]byte(s))
}

func (w *LevelWriter) Writef(format string, a ...any) {
	w.WriteString(fmt.Sprintf(format, a...))
}

func (w *LevelWriter) Close() error {
	return w.logger.Sync()
}
