// Package interactive implements the prompt by the survey library.
package interactive

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	"github.com/furniture-crm/crm-cli/internal/pkg/cli/prompt"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

type Prompt struct {
	stdin  terminal.FileReader
	stdout terminal.FileWriter
	stderr io.Writer
}

func New(stdin terminal.FileReader, stdout terminal.FileWriter, stderr io.Writer) *Prompt {
	return &Prompt{stdin: stdin, stdout: stdout, stderr: stderr}
}

// IsTerminal returns true if both stdin and stdout are a terminal.
func IsTerminal(stdin, stdout any) bool {
	return isTTY(stdin) && isTTY(stdout)
}

func isTTY(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Prompt) IsInteractive() bool {
	return true
}

func (p *Prompt) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.stdout, format, a...)
}

func (p *Prompt) Confirm(c *prompt.Confirm) bool {
	p.description(c.Description)
	result := c.Default
	err := survey.AskOne(&survey.Confirm{Message: c.Label, Default: c.Default}, &result, p.opts()...)
	return p.handleError(err) && result
}

func (p *Prompt) Ask(q *prompt.Question) (result string, ok bool) {
	p.description(q.Description)

	opts := p.opts()
	if q.Validator != nil {
		opts = append(opts, survey.WithValidator(survey.Validator(q.Validator)))
	}

	var question survey.Prompt
	if q.Hidden {
		question = &survey.Password{Message: q.Label, Help: q.Help}
	} else {
		question = &survey.Input{Message: q.Label, Default: q.Default, Help: q.Help}
	}

	err := survey.AskOne(question, &result, opts...)
	return result, p.handleError(err)
}

func (p *Prompt) Select(s *prompt.Select) (value string, ok bool) {
	p.description(s.Description)
	question := &survey.Select{Message: s.Label, Help: s.Help, Options: s.Options}
	if s.UseDefault {
		question.Default = s.Default
	}
	err := survey.AskOne(question, &value, p.opts()...)
	return value, p.handleError(err)
}

func (p *Prompt) SelectIndex(s *prompt.SelectIndex) (index int, ok bool) {
	p.description(s.Description)
	question := &survey.Select{Message: s.Label, Help: s.Help, Options: s.Options}
	if s.UseDefault {
		question.Default = s.Default
	}
	err := survey.AskOne(question, &index, p.opts()...)
	return index, p.handleError(err)
}

func (p *Prompt) description(str string) {
	if str != "" {
		p.Printf("\n%s\n", str)
	}
}

func (p *Prompt) opts() []survey.AskOpt {
	return []survey.AskOpt{
		survey.WithStdio(p.stdin, p.stdout, p.stderr),
		survey.WithShowCursor(true),
	}
}

// handleError returns false if the user cancelled the prompt.
func (p *Prompt) handleError(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, terminal.InterruptErr):
		p.Printf("\n")
		return false
	case errors.Is(err, io.EOF):
		return false
	default:
		panic(errors.Wrap(err, "unexpected prompt error"))
	}
}

// Stdio returns the process streams in the form required by New.
func Stdio() (terminal.FileReader, terminal.FileWriter, io.Writer) {
	// nolint: forbidigo
	return os.Stdin, os.Stdout, os.Stderr
}
