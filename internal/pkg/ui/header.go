package ui

import (
	"fmt"
	"io"
)

const Title = "Furniture CRM"

// Header shows the application title and the signed-in user.
type Header struct {
	Email string
}

func (h Header) Render(w io.Writer, theme Theme) error {
	_, err := fmt.Fprintf(w, "%s  %s\n\n", theme.Title.Sprint(Title), theme.Muted.Sprint(h.Email))
	return err
}
