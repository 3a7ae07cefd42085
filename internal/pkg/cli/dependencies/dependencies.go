// Package dependencies provides dependencies for command line interface.
//
// # Dependency Containers
//
// These dependencies containers are implemented:
//   - [Base] interface provides basic CLI dependencies: logger, config, dialogs.
//   - [Public] interface provides dependencies available without a signed-in user, for example the session provider.
//   - [Authenticated] interface provides dependencies which require a signed-in user: the API gateway and the query cache.
//
// These containers can be obtained from the [Provider], it can be created by [NewProvider].
package dependencies

import (
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"

	"github.com/furniture-crm/crm-cli/internal/pkg/api"
	"github.com/furniture-crm/crm-cli/internal/pkg/auth"
	"github.com/furniture-crm/crm-cli/internal/pkg/cli/dialog"
	"github.com/furniture-crm/crm-cli/internal/pkg/config"
	"github.com/furniture-crm/crm-cli/internal/pkg/env"
	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/query"
	"github.com/furniture-crm/crm-cli/internal/pkg/ui"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

var ErrNotSignedIn = errors.New(`you are not signed in, please run "crm login"`)

// Base interface provides basic CLI dependencies.
type Base interface {
	Logger() log.Logger
	Clock() clockwork.Clock
	Envs() *env.Map
	Fs() afero.Fs
	Stdout() io.Writer
	Theme() ui.Theme
	Dialogs() *dialog.Dialogs
	Config() *config.Config
	MetricsRegistry() *prometheus.Registry
}

// Public interface provides dependencies for commands which do not require a signed-in user.
type Public interface {
	Base
	AuthClient() *auth.Client
	Session() *auth.Provider
}

// Authenticated interface provides dependencies for commands which require a signed-in user.
// It cannot be created without a session, so no customer request is sent without a credential.
type Authenticated interface {
	Public
	User() *auth.User
	Gateway() *api.Gateway
	QueryCache() *query.Cache
}

// Provider of CLI dependencies.
type Provider interface {
	BaseDependencies() Base
	PublicDependencies() Public
	// AuthenticatedDependencies returns ErrNotSignedIn if there is no session.
	AuthenticatedDependencies() (Authenticated, error)
	// Close stops background work, it waits for running fetches.
	Close()
}
