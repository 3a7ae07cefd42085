package dependencies

import (
	"github.com/furniture-crm/crm-cli/internal/pkg/auth"
	"github.com/furniture-crm/crm-cli/internal/pkg/client"
)

// public dependencies container implements Public interface.
type public struct {
	Base
	authClient *auth.Client
	session    *auth.Provider
}

func newPublicDeps(baseDeps Base) *public {
	cfg := baseDeps.Config()
	authClient := auth.NewClient(baseDeps.Logger(), baseDeps.Clock(), cfg.AuthURL, cfg.AuthAnonKey, client.WithVerbose(cfg.VerboseAPI))
	store := auth.NewStore(baseDeps.Fs(), cfg.ConfigDir)
	session := auth.NewProvider(baseDeps.Logger(), baseDeps.Clock(), authClient, store)
	session.Init()
	return &public{Base: baseDeps, authClient: authClient, session: session}
}

func (v *public) AuthClient() *auth.Client {
	return v.authClient
}

func (v *public) Session() *auth.Provider {
	return v.session
}
