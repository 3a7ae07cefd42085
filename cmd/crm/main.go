package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/furniture-crm/crm-cli/internal/pkg/cli/cmd"
	"github.com/furniture-crm/crm-cli/internal/pkg/env"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Run command
	root := cmd.NewRootCommand(os.Stdin, os.Stdout, os.Stderr, env.FromOs(), afero.NewOsFs())
	root.SetContext(ctx)
	exitCode := root.Execute()

	cancel()
	os.Exit(exitCode)
}
