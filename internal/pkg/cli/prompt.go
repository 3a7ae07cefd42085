package cli

import (
	"io"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/furniture-crm/crm-cli/internal/pkg/cli/prompt"
	"github.com/furniture-crm/crm-cli/internal/pkg/cli/prompt/interactive"
	"github.com/furniture-crm/crm-cli/internal/pkg/cli/prompt/nop"
)

// NewPrompt returns the interactive prompt if both stdin and stdout are a terminal,
// and the interactive mode is not disabled.
func NewPrompt(stdin io.Reader, stdout io.Writer, stderr io.Writer, nonInteractive bool) prompt.Prompt {
	if !nonInteractive && interactive.IsTerminal(stdin, stdout) {
		in, inOk := stdin.(terminal.FileReader)
		out, outOk := stdout.(terminal.FileWriter)
		if inOk && outOk {
			return interactive.New(in, out, stderr)
		}
	}
	return nop.New()
}
