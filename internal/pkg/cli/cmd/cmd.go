package cmd

import (
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/furniture-crm/crm-cli/internal/pkg/cli"
	"github.com/furniture-crm/crm-cli/internal/pkg/cli/cmd/customer"
	"github.com/furniture-crm/crm-cli/internal/pkg/cli/dependencies"
	"github.com/furniture-crm/crm-cli/internal/pkg/cli/dialog"
	"github.com/furniture-crm/crm-cli/internal/pkg/config"
	"github.com/furniture-crm/crm-cli/internal/pkg/env"
	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/ui"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
	"github.com/furniture-crm/crm-cli/internal/pkg/version"
)

const rootLong = `Furniture CRM command line client.

Sign in with the "login" command, then open the interactive "dashboard",
or manage customers by the "customer" commands.

Configuration is read from flags, ENV variables and the ".env" files in the working directory.`

//nolint:gochecknoinits
func init() {
	// Commands are listed in the definition order.
	cobra.EnableCommandSorting = false
}

type Cmd = cobra.Command

// RootCommand is the parent of all sub-commands.
// It implements dependencies.Provider, dependencies are available after the flags are parsed.
type RootCommand struct {
	*Cmd
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	envs    *env.Map
	fs      afero.Fs
	clock   clockwork.Clock
	logger  log.Logger
	logFile *log.File
	deps    dependencies.Provider
}

// NewRootCommand creates parent of all sub-commands.
func NewRootCommand(stdin io.Reader, stdout io.Writer, stderr io.Writer, osEnvs *env.Map, fs afero.Fs) *RootCommand {
	root := &RootCommand{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		envs:   osEnvs,
		fs:     fs,
		clock:  clockwork.NewRealClock(),
	}
	root.Cmd = &Cmd{
		Use:               "crm", // name of the binary
		Version:           version.Version(),
		Short:             "Furniture CRM client",
		Long:              rootLong,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
		SilenceErrors:     true, // custom error handling, see printError
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print help if no command specified
			return root.Help()
		},
	}

	// Setup in/out
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("{{.Version}}")

	// Persistent flags for all sub-commands
	config.BindFlags(root.PersistentFlags())

	// Root command flags
	root.Flags().BoolP("version", "V", false, "print version")

	// Init when flags are parsed
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		// The logger is created from flags only, ENV variables are not loaded yet
		root.setupLogger(config.LoadFlags(cmd.Flags()))

		// Help doesn't need the configuration
		if cmd == root.Cmd || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load(cmd.Context(), root.logger, root.fs, root.envs, cmd.Flags())
		if err != nil {
			return err
		}

		// Interactive prompt, colors only in a terminal
		prompt := cli.NewPrompt(root.stdin, root.stdout, root.stderr, cfg.NonInteractive)
		theme := ui.NewTheme(prompt.IsInteractive())

		root.deps = dependencies.NewProvider(dependencies.NewBaseDeps(
			root.logger,
			root.clock,
			root.envs,
			root.fs,
			root.stdout,
			theme,
			dialog.New(prompt),
			cfg,
		))
		return nil
	}

	// Sub-commands
	root.AddCommand(
		LoginCommand(root),
		LogoutCommand(root),
		DashboardCommand(root),
		StatsCommand(root),
		customer.Commands(root),
	)

	return root
}

// Execute command or sub-command.
func (root *RootCommand) Execute() (exitCode int) {
	defer func() {
		exitCode = root.tearDown(exitCode, recover())
	}()

	if err := root.Cmd.Execute(); err != nil {
		root.printError(err)
		return 1
	}
	return 0
}

func (root *RootCommand) BaseDependencies() dependencies.Base {
	return root.provider().BaseDependencies()
}

func (root *RootCommand) PublicDependencies() dependencies.Public {
	return root.provider().PublicDependencies()
}

func (root *RootCommand) AuthenticatedDependencies() (dependencies.Authenticated, error) {
	return root.provider().AuthenticatedDependencies()
}

func (root *RootCommand) Close() {
	if root.deps != nil {
		root.deps.Close()
	}
}

func (root *RootCommand) provider() dependencies.Provider {
	if root.deps == nil {
		panic(errors.New("dependencies are not initialized, flags are not parsed yet"))
	}
	return root.deps
}

func (root *RootCommand) printError(err error) {
	// Errors returned before the pre-run, for example an unknown flag
	if root.logger == nil {
		root.setupLogger(config.LoadFlags(root.PersistentFlags()))
	}

	fullErr := errors.PrefixError(err, "Error")
	root.logger.Debugf("Error debug log:\n%s", errors.Format(fullErr, errors.FormatWithUnwrap()))
	root.PrintErrln(errors.Format(fullErr, errors.FormatAsSentences()))
}

func (root *RootCommand) setupLogger(cfg *config.Config) {
	if root.logger != nil {
		return
	}

	var logFileErr error
	root.logFile, logFileErr = log.NewLogFile(cfg.LogFilePath)

	root.logger = log.NewCliLogger(root.stdout, root.stderr, root.logFile, cfg.Verbose)

	// Warn if user specified log file + it cannot be opened
	if logFileErr != nil && cfg.LogFilePath != "" {
		root.logger.Warnf("Cannot open log file: %s", logFileErr)
	}

	// Cobra messages go through the logger
	root.SetOut(root.logger.InfoWriter())
	root.SetErr(root.logger.WarnWriter())

	root.logger.Debug(root.Version)
	// nolint: forbidigo
	root.logger.Debugf("Running command %v", os.Args)
	if root.logFile == nil {
		root.logger.Debug(`Log file: -`)
	} else {
		root.logger.Debug(`Log file: ` + root.logFile.Path())
	}
}

// logMetrics writes the collected metrics to the debug log.
func (root *RootCommand) logMetrics() {
	if root.deps == nil {
		return
	}

	families, err := root.deps.BaseDependencies().MetricsRegistry().Gather()
	if err != nil {
		root.logger.Debugf("Cannot gather metrics: %s", err)
		return
	}
	if len(families) == 0 {
		return
	}

	w := root.logger.DebugWriter()
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			root.logger.Debugf(`Cannot format metric "%s": %s`, family.GetName(), err)
		}
	}
}

// tearDown does clean-up after command execution.
func (root *RootCommand) tearDown(exitCode int, panicErr any) int {
	// Logger may be uninitialized, if error occurred before initialization
	if root.logger == nil {
		root.setupLogger(config.LoadFlags(root.PersistentFlags()))
	}

	if panicErr != nil {
		logFilePath := ""
		if root.logFile != nil {
			logFilePath = root.logFile.Path()
		}
		exitCode = cli.ProcessPanic(panicErr, root.logger, logFilePath)
	}

	// Wait for running fetches
	root.Close()
	root.logMetrics()

	// Close log file
	if err := root.logFile.TearDown(exitCode != 0); err != nil {
		root.logger.Warnf("Cannot close log file: %s", err)
	}
	return exitCode
}
