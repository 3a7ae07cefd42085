package dependencies

import (
	"bytes"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furniture-crm/crm-cli/internal/pkg/auth"
	"github.com/furniture-crm/crm-cli/internal/pkg/cli/dialog"
	"github.com/furniture-crm/crm-cli/internal/pkg/cli/prompt/nop"
	"github.com/furniture-crm/crm-cli/internal/pkg/config"
	"github.com/furniture-crm/crm-cli/internal/pkg/env"
	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/query"
	"github.com/furniture-crm/crm-cli/internal/pkg/ui"
)

func newTestProvider(t *testing.T, fs afero.Fs) Provider {
	t.Helper()
	cfg := &config.Config{
		APIURL:      "http://localhost:3001/api",
		AuthURL:     "http://localhost:9999",
		AuthAnonKey: "anon-key",
		ConfigDir:   "/config",
	}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	baseDeps := NewBaseDeps(log.NewNopLogger(), clock, env.Empty(), fs, &bytes.Buffer{}, ui.NewTheme(false), dialog.New(nop.New()), cfg)
	p := NewProvider(baseDeps)
	t.Cleanup(p.Close)
	return p
}

func TestProvider_NotSignedIn(t *testing.T) {
	t.Parallel()
	p := newTestProvider(t, afero.NewMemMapFs())

	assert.Nil(t, p.PublicDependencies().Session().CurrentUser())
	d, err := p.AuthenticatedDependencies()
	assert.Nil(t, d)
	require.ErrorIs(t, err, ErrNotSignedIn)
	assert.Equal(t, `you are not signed in, please run "crm login"`, err.Error())
}

func TestProvider_SignedIn(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, auth.NewStore(fs, "/config").Save(&auth.Session{
		User:        auth.User{ID: "user-1", Email: "alice@example.com"},
		AccessToken: "access-1",
	}))
	p := newTestProvider(t, fs)

	d, err := p.AuthenticatedDependencies()
	require.NoError(t, err)
	assert.Equal(t, &auth.User{ID: "user-1", Email: "alice@example.com"}, d.User())
	assert.Equal(t, "http://localhost:3001/api", d.Gateway().HTTPClient().BaseURL())
	assert.Same(t, p.PublicDependencies().Session(), d.Session())

	// Queries are registered
	assert.Equal(t, query.StatusIdle, d.QueryCache().Snapshot(query.KeyCustomers).Status)
	assert.Equal(t, query.StatusIdle, d.QueryCache().Snapshot(query.KeyStats).Status)

	// The container is created once
	d2, err := p.AuthenticatedDependencies()
	require.NoError(t, err)
	assert.Same(t, d, d2)
}
