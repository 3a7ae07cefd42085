package auth

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sasha-s/go-deadlock"
	"golang.org/x/sync/singleflight"

	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
	"github.com/furniture-crm/crm-cli/internal/pkg/validator"
)

// RefreshMargin is the time before the expiration when the access token is refreshed.
const RefreshMargin = 60 * time.Second

// Listener is notified when the current user changes, user is nil after sign-out.
type Listener func(user *User)

// Provider holds the current session and notifies listeners about identity changes.
type Provider struct {
	logger    log.Logger
	clock     clockwork.Clock
	auth      Authenticator
	store     *Store
	validator *validator.Validator
	refreshes singleflight.Group

	lock      *deadlock.Mutex
	session   *Session
	listeners map[int]Listener
	nextID    int
}

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func NewProvider(logger log.Logger, clock clockwork.Clock, auth Authenticator, store *Store) *Provider {
	return &Provider{
		logger:    logger.WithComponent("auth"),
		clock:     clock,
		auth:      auth,
		store:     store,
		validator: validator.New(),
		lock:      &deadlock.Mutex{},
		listeners: make(map[int]Listener),
	}
}

// Init loads the stored session. A corrupted file is reported as a warning and ignored.
func (p *Provider) Init() {
	session, err := p.store.Load()
	if err != nil {
		p.logger.Warnf("Stored session ignored: %s", errors.Format(err, errors.FormatWithUnwrap()))
		return
	}
	if session == nil {
		return
	}

	p.lock.Lock()
	p.session = session
	p.lock.Unlock()
	p.logger.Debugf(`Loaded session of "%s".`, session.User.Email)
}

// CurrentUser returns nil when signed out.
func (p *Provider) CurrentUser() *User {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.session == nil {
		return nil
	}
	user := p.session.User
	return &user
}

// SignIn exchanges the credentials for a session, stores it and notifies the listeners.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*User, error) {
	if err := p.validator.Struct(ctx, credentials{Email: email, Password: password}); err != nil {
		return nil, err
	}

	session, err := p.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, errors.PrefixError(err, "sign-in failed")
	}

	p.lock.Lock()
	saveErr := p.store.Save(session)
	if saveErr == nil {
		p.session = session
	}
	p.lock.Unlock()
	if saveErr != nil {
		return nil, saveErr
	}

	user := session.User
	p.notify(&user)
	p.logger.Infof(`Signed in as "%s".`, session.User.Email)
	return &user, nil
}

// SignOut ends the session.
// The user is cleared and listeners are notified before the method returns.
// The stored session is deleted under the lock, so an in-flight refresh cannot restore it.
// Then the refresh token is revoked, a failed revocation is only logged.
func (p *Provider) SignOut(ctx context.Context) error {
	p.lock.Lock()
	old := p.session
	p.session = nil
	deleteErr := p.store.Delete()
	p.lock.Unlock()

	p.notify(nil)

	if deleteErr != nil {
		return deleteErr
	}

	if old != nil {
		if err := p.auth.SignOut(ctx, old.AccessToken); err != nil {
			p.logger.Warnf("Remote sign-out failed: %s", err)
		}
	}
	return nil
}

// OnSessionChange registers the listener, the returned function unregisters it.
func (p *Provider) OnSessionChange(listener Listener) (unsubscribe func()) {
	p.lock.Lock()
	defer p.lock.Unlock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = listener
	return func() {
		p.lock.Lock()
		defer p.lock.Unlock()
		delete(p.listeners, id)
	}
}

// AccessToken returns the access token of the current session, false when signed out.
// The token is refreshed first, if it expires within the RefreshMargin.
// Concurrent callers share one refresh of the same refresh token.
// If the refresh fails, the old token is returned and the server decides.
func (p *Provider) AccessToken(ctx context.Context) (string, bool) {
	p.lock.Lock()
	session := p.session
	p.lock.Unlock()
	if session == nil {
		return "", false
	}

	if session.RefreshToken == "" || !session.ExpiresWithin(p.clock.Now(), RefreshMargin) {
		return session.AccessToken, true
	}

	result, err, _ := p.refreshes.Do(session.RefreshToken, func() (any, error) {
		return p.refresh(ctx, session)
	})
	if err != nil {
		p.logger.Warnf("Cannot refresh the access token: %s", err)
		return session.AccessToken, true
	}

	current := result.(*Session)
	if current == nil {
		return "", false
	}
	return current.AccessToken, true
}

// refresh exchanges the refresh token and returns the current session afterwards.
// The refreshed session is stored only if the session was not replaced in the meantime.
func (p *Provider) refresh(ctx context.Context, session *Session) (*Session, error) {
	// The session may have been refreshed since the caller read it
	p.lock.Lock()
	current := p.session
	p.lock.Unlock()
	if current != session {
		return current, nil
	}

	refreshed, err := p.auth.RefreshSession(ctx, session.RefreshToken)
	if err != nil {
		return nil, err
	}

	p.lock.Lock()
	if p.session != session {
		// A concurrent sign-out or sign-in wins
		current = p.session
		p.lock.Unlock()
		p.logger.Debug("Refreshed session dropped, the session has been replaced.")
		return current, nil
	}
	if err := p.store.Save(refreshed); err != nil {
		p.logger.Warnf("Cannot store the refreshed session: %s", errors.Format(err, errors.FormatWithUnwrap()))
	}
	p.session = refreshed
	p.lock.Unlock()

	if session.User.ID != refreshed.User.ID {
		user := refreshed.User
		p.notify(&user)
	}
	p.logger.Debug("Access token refreshed.")
	return refreshed, nil
}

// notify calls listeners outside of the lock, so a listener can read the provider.
func (p *Provider) notify(user *User) {
	p.lock.Lock()
	listeners := make([]Listener, 0, len(p.listeners))
	for i := 0; i < p.nextID; i++ {
		if l, ok := p.listeners[i]; ok {
			listeners = append(listeners, l)
		}
	}
	p.lock.Unlock()

	for _, l := range listeners {
		l(user)
	}
}
