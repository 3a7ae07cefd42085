package dependencies

// provider implements Provider interface, containers are created lazily.
type provider struct {
	base          Base
	public        lazy[*public]
	authenticated lazy[*authenticated]
}

func NewProvider(baseDeps Base) Provider {
	return &provider{base: baseDeps}
}

func (p *provider) BaseDependencies() Base {
	return p.base
}

func (p *provider) PublicDependencies() Public {
	return p.public.MustInitAndGet(func() *public {
		return newPublicDeps(p.base)
	})
}

func (p *provider) AuthenticatedDependencies() (Authenticated, error) {
	d, err := p.authenticated.InitAndGet(func() (*authenticated, error) {
		return newAuthenticatedDeps(p.PublicDependencies())
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (p *provider) Close() {
	if d, ok := p.authenticated.Get(); ok {
		d.cache.Close()
	}
}
