package cli

import (
	"bytes"
	"runtime/debug"
	"text/template"

	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

const crashMessageTmpl = `
---------------------------------------------------
Furniture CRM CLI had a problem and crashed.

To help us diagnose the problem you can send us a crash report.

{{ if .LogFile -}}
We have generated a log file at "{{.LogFile}}".

Please send the log file to your CRM administrator.
{{- else -}}
Please run the command again with the flag "--log-file <path>" to generate a log file.

Then please send the log file to your CRM administrator.
{{- end }}

The log file is not collected automatically.`

// ProcessPanic logs the recovered value with the stack trace and returns the exit code.
func ProcessPanic(err any, logger log.Logger, logFilePath string) int {
	logger.Debugf("Unexpected panic: %s", err)
	logger.Debugf("Trace:\n%s", string(debug.Stack()))
	logger.Info(crashMessage(logFilePath))
	return 1
}

func crashMessage(logFile string) string {
	tmpl := template.Must(template.New("crash").Parse(crashMessageTmpl))
	var out bytes.Buffer
	if err := tmpl.Execute(&out, struct{ LogFile string }{logFile}); err != nil {
		panic(errors.Wrap(err, "cannot render crash message"))
	}
	return out.String()
}
