package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugLogger_AllMessages(t *testing.T) {
	t.Parallel()
	logger := NewDebugLogger()
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	assert.Equal(t, "DEBUG  debug\nINFO  info\nWARN  warn\nERROR  error\n", logger.AllMessages())
	assert.Empty(t, logger.AllMessages())
}

func TestDebugLogger_ByLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		read     func(DebugLogger) string
		expected string
	}{
		{name: "debug", read: DebugLogger.DebugMessages, expected: "DEBUG  debug\n"},
		{name: "info", read: DebugLogger.InfoMessages, expected: "INFO  info\n"},
		{name: "warn", read: DebugLogger.WarnMessages, expected: "WARN  warn\n"},
		{name: "warn and error", read: DebugLogger.WarnAndErrorMessages, expected: "WARN  warn\nERROR  error\n"},
		{name: "error", read: DebugLogger.ErrorMessages, expected: "ERROR  error\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			logger := NewDebugLogger()
			logger.Debug("debug")
			logger.Info("info")
			logger.Warn("warn")
			logger.Errorf("%s", "error")
			assert.Equal(t, tc.expected, tc.read(logger))
			assert.Empty(t, logger.AllMessages())
		})
	}
}

func TestDebugLogger_WithComponent(t *testing.T) {
	t.Parallel()
	logger := NewDebugLogger()
	logger.WithComponent("query").WithComponent("customers").Info("fetch started")
	assert.Equal(t, "INFO  query.customers  fetch started\n", logger.AllMessages())
}

func TestLevelWriter(t *testing.T) {
	t.Parallel()
	logger := NewDebugLogger()
	w := logger.WarnWriter()
	w.WriteString("line 1\nline 2\n")
	assert.Equal(t, "WARN  line 1\nWARN  line 2\n", logger.WarnMessages())
}
