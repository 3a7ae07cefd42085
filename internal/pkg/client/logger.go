package client

import (
	"fmt"
	"regexp"

	"github.com/furniture-crm/crm-cli/internal/pkg/log"
)

var secretsRegexp = regexp.MustCompile(`(?i)((?:authorization:\s*bearer|apikey:?|"(?:access_token|refresh_token|password)"\s*:)\s*"?)[^\s",]+`) // nolint: gochecknoglobals

// MaskSecrets replaces tokens, keys and passwords in the message.
func MaskSecrets(msg string) string {
	return secretsRegexp.ReplaceAllString(msg, "${1}*****")
}

// restyLogger forwards the resty debug dumps to the debug log.
type restyLogger struct {
	logger log.Logger
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(MaskSecrets(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.logger.Debug(MaskSecrets("WARN " + fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.logger.Debug(MaskSecrets("ERROR " + fmt.Sprintf(format, v...)))
}
