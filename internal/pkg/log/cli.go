// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCliLogger creates the logger of the command line interface.
//   - Info messages go to stdout, warnings and errors go to stderr.
//   - In the verbose mode, debug messages go to stdout too and each line has a level prefix.
//   - The log file, if any, receives all levels as JSON lines.
func NewCliLogger(stdout io.Writer, stderr io.Writer, logFile *File, verbose bool) Logger {
	var cores []zapcore.Core

	if logFile != nil {
		cores = append(cores, fileCore(logFile))
	}

	cores = append(cores, stdoutCore(stdout, verbose), stderrCore(stderr, verbose))

	return loggerFromZapCore(zapcore.NewTee(cores...))
}

func stdoutCore(stdout io.Writer, verbose bool) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		if verbose {
			return l == DebugLevel || l == InfoLevel
		}
		return l == InfoLevel
	})
	return zapcore.NewCore(consoleEncoder(verbose), zapcore.AddSync(stdout), levels)
}

func stderrCore(stderr io.Writer, verbose bool) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= WarnLevel
	})
	return zapcore.NewCore(consoleEncoder(verbose), zapcore.AddSync(stderr), levels)
}

func fileCore(logFile *File) zapcore.Core {
	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:     "time",
		LevelKey:    "level",
		NameKey:     "component",
		MessageKey:  "message",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
		EncodeName:  zapcore.FullNameEncoder,
	})
	return zapcore.NewCore(encoder, zapcore.AddSync(logFile.File()), DebugLevel)
}

// consoleEncoder prints only the message, the verbose mode adds the level and the component.
func consoleEncoder(verbose bool) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		MessageKey:       "message",
		ConsoleSeparator: "  ",
		LineEnding:       zapcore.DefaultLineEnding,
	}
	if verbose {
		cfg.LevelKey = "level"
		cfg.NameKey = "component"
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncodeName = zapcore.FullNameEncoder
	}
	return zapcore.NewConsoleEncoder(cfg)
}
