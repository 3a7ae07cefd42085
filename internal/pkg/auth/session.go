// Package auth provides the session of the signed-in user.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is an authenticated session issued by the auth service.
type Session struct {
	User         User      `json:"user"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// ExpiresWithin returns true if the access token expires before now + d.
// A session without the expiration never expires.
func (s *Session) ExpiresWithin(now time.Time, d time.Duration) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Add(d).Before(s.ExpiresAt)
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// parseClaims reads claims of the access token.
// The signature is not verified, the auth service is the only one who checks it.
func parseClaims(accessToken string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, errors.Wrap(err, "cannot parse access token")
	}
	return claims, nil
}
