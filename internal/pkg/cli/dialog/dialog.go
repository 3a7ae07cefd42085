// Package dialog composes prompts into the dialogs of the CRM commands.
package dialog

import (
	"github.com/furniture-crm/crm-cli/internal/pkg/cli/prompt"
)

type Dialogs struct {
	prompt.Prompt
}

func New(prompt prompt.Prompt) *Dialogs {
	return &Dialogs{Prompt: prompt}
}
