package ui

import (
	"github.com/fatih/color"
)

// Theme defines colors of the terminal output.
type Theme struct {
	Title   *color.Color
	Muted   *color.Color
	Success *color.Color
	Warning *color.Color
	Danger  *color.Color
}

// NewTheme creates the default theme, colors are disabled if enabled is false.
func NewTheme(enabled bool) Theme {
	t := Theme{
		Title:   color.New(color.FgCyan, color.Bold),
		Muted:   color.New(color.Faint),
		Success: color.New(color.FgGreen),
		Warning: color.New(color.FgYellow),
		Danger:  color.New(color.FgRed),
	}
	if !enabled {
		for _, c := range []*color.Color{t.Title, t.Muted, t.Success, t.Warning, t.Danger} {
			c.DisableColor()
		}
	}
	return t
}
