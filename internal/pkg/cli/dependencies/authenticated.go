package dependencies

import (
	"github.com/furniture-crm/crm-cli/internal/pkg/api"
	"github.com/furniture-crm/crm-cli/internal/pkg/auth"
	"github.com/furniture-crm/crm-cli/internal/pkg/client"
	"github.com/furniture-crm/crm-cli/internal/pkg/dashboard"
	"github.com/furniture-crm/crm-cli/internal/pkg/query"
)

// authenticated dependencies container implements Authenticated interface.
type authenticated struct {
	Public
	user    *auth.User
	gateway *api.Gateway
	cache   *query.Cache
}

func newAuthenticatedDeps(publicDeps Public) (*authenticated, error) {
	user := publicDeps.Session().CurrentUser()
	if user == nil {
		return nil, ErrNotSignedIn
	}

	cfg := publicDeps.Config()
	gateway := api.New(publicDeps.Logger(), cfg.APIURL, publicDeps.Session(), client.WithVerbose(cfg.VerboseAPI))
	cache := query.New(
		publicDeps.Logger(),
		query.WithClock(publicDeps.Clock()),
		query.WithMetricsRegisterer(publicDeps.MetricsRegistry()),
	)
	dashboard.RegisterQueries(cache, gateway)

	return &authenticated{Public: publicDeps, user: user, gateway: gateway, cache: cache}, nil
}

func (v *authenticated) User() *auth.User {
	return v.user
}

func (v *authenticated) Gateway() *api.Gateway {
	return v.gateway
}

func (v *authenticated) QueryCache() *query.Cache {
	return v.cache
}
