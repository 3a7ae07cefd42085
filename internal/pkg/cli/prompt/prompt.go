// Package prompt defines user interaction primitives, implemented by the interactive and nop packages.
package prompt

import (
	"strings"

	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

type Prompt interface {
	IsInteractive() bool
	Printf(format string, a ...any)
	Confirm(c *Confirm) bool
	Ask(q *Question) (result string, ok bool)
	Select(s *Select) (value string, ok bool)
	SelectIndex(s *SelectIndex) (index int, ok bool)
}

type ValidatorFn func(val any) error

type Confirm struct {
	Label       string
	Description string
	Default     bool
}

type Question struct {
	Label       string
	Description string
	Help        string
	Default     string
	Validator   ValidatorFn
	// Hidden input is not echoed, it is used for passwords.
	Hidden bool
}

type Select struct {
	Label       string
	Description string
	Help        string
	Options     []string
	Default     string
	UseDefault  bool
}

type SelectIndex struct {
	Label       string
	Description string
	Help        string
	Options     []string
	Default     int
	UseDefault  bool
}

func ValueRequired(val any) error {
	str, ok := val.(string)
	if !ok || strings.TrimSpace(str) == "" {
		return errors.New("value is required")
	}
	return nil
}
