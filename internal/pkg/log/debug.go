// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/furniture-crm/crm-cli/internal/pkg/utils/ioutil"
)

type debugLogger struct {
	*zapLogger
	all          *ioutil.AtomicWriter
	debug        *ioutil.AtomicWriter
	info         *ioutil.AtomicWriter
	warn         *ioutil.AtomicWriter
	warnAndError *ioutil.AtomicWriter
	error        *ioutil.AtomicWriter
}

// NewDebugLogger creates a logger which collects messages in memory.
// Each line is formatted as "LEVEL  message".
func NewDebugLogger() DebugLogger {
	l := &debugLogger{
		all:          ioutil.NewAtomicWriter(),
		debug:        ioutil.NewAtomicWriter(),
		info:         ioutil.NewAtomicWriter(),
		warn:         ioutil.NewAtomicWriter(),
		warnAndError: ioutil.NewAtomicWriter(),
		error:        ioutil.NewAtomicWriter(),
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:         "level",
		NameKey:          "component",
		MessageKey:       "message",
		ConsoleSeparator: "  ",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeName:       zapcore.FullNameEncoder,
	})
	exactly := func(level zapcore.Level) zapcore.LevelEnabler {
		return zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l == level })
	}

	l.zapLogger = loggerFromZapCore(zapcore.NewTee(
		zapcore.NewCore(encoder, l.all, DebugLevel),
		zapcore.NewCore(encoder, l.debug, exactly(DebugLevel)),
		zapcore.NewCore(encoder, l.info, exactly(InfoLevel)),
		zapcore.NewCore(encoder, l.warn, exactly(WarnLevel)),
		zapcore.NewCore(encoder, l.warnAndError, WarnLevel),
		zapcore.NewCore(encoder, l.error, ErrorLevel),
	))
	return l
}

func (l *debugLogger) Truncate() {
	l.all.Truncate()
	l.debug.Truncate()
	l.info.Truncate()
	l.warn.Truncate()
	l.warnAndError.Truncate()
	l.error.Truncate()
}

func (l *debugLogger) AllMessages() string {
	return l.read(l.all)
}

func (l *debugLogger) DebugMessages() string {
	return l.read(l.debug)
}

func (l *debugLogger) InfoMessages() string {
	return l.read(l.info)
}

func (l *debugLogger) WarnMessages() string {
	return l.read(l.warn)
}

func (l *debugLogger) WarnAndErrorMessages() string {
	return l.read(l.warnAndError)
}

func (l *debugLogger) ErrorMessages() string {
	return l.read(l.error)
}

func (l *debugLogger) read(w *ioutil.AtomicWriter) string {
	out := w.String()
	l.Truncate()
	return out
}
