package dialog

import (
	"strings"

	"github.com/furniture-crm/crm-cli/internal/pkg/cli/prompt"
)

// AskCredentials asks for the values not set by flags.
// The second value is false if the user cancelled the dialog.
func (d *Dialogs) AskCredentials(email, password string) (string, string, bool) {
	if strings.TrimSpace(email) == "" {
		v, ok := d.Ask(&prompt.Question{
			Label:     "Email",
			Validator: prompt.ValueRequired,
		})
		if !ok {
			return "", "", false
		}
		email = v
	}

	if password == "" {
		v, ok := d.Ask(&prompt.Question{
			Label:     "Password",
			Hidden:    true,
			Validator: prompt.ValueRequired,
		})
		if !ok {
			return "", "", false
		}
		password = v
	}

	return strings.TrimSpace(email), password, true
}
