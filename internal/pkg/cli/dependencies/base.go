package dependencies

import (
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"

	"github.com/furniture-crm/crm-cli/internal/pkg/cli/dialog"
	"github.com/furniture-crm/crm-cli/internal/pkg/config"
	"github.com/furniture-crm/crm-cli/internal/pkg/env"
	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/ui"
)

// base dependencies container implements Base interface.
type base struct {
	logger   log.Logger
	clock    clockwork.Clock
	envs     *env.Map
	fs       afero.Fs
	stdout   io.Writer
	theme    ui.Theme
	dialogs  *dialog.Dialogs
	config   *config.Config
	registry *prometheus.Registry
}

func NewBaseDeps(logger log.Logger, clock clockwork.Clock, envs *env.Map, fs afero.Fs, stdout io.Writer, theme ui.Theme, dialogs *dialog.Dialogs, cfg *config.Config) Base {
	return &base{
		logger:   logger,
		clock:    clock,
		envs:     envs,
		fs:       fs,
		stdout:   stdout,
		theme:    theme,
		dialogs:  dialogs,
		config:   cfg,
		registry: prometheus.NewRegistry(),
	}
}

func (v *base) Logger() log.Logger {
	return v.logger
}

func (v *base) Clock() clockwork.Clock {
	return v.clock
}

func (v *base) Envs() *env.Map {
	return v.envs
}

func (v *base) Fs() afero.Fs {
	return v.fs
}

func (v *base) Stdout() io.Writer {
	return v.stdout
}

func (v *base) Theme() ui.Theme {
	return v.theme
}

func (v *base) Dialogs() *dialog.Dialogs {
	return v.dialogs
}

func (v *base) Config() *config.Config {
	return v.config
}

func (v *base) MetricsRegistry() *prometheus.Registry {
	return v.registry
}
