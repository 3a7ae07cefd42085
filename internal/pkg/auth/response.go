package auth

import (
	"time"

	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

// tokenResponse is the body of a successful token grant.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

// toSession converts the response, missing user and expiration are read from the access token claims.
func (r *tokenResponse) toSession(now time.Time) (*Session, error) {
	if r.AccessToken == "" {
		return nil, errors.New("auth service returned no access token")
	}

	s := &Session{AccessToken: r.AccessToken, RefreshToken: r.RefreshToken}
	switch {
	case r.ExpiresAt > 0:
		s.ExpiresAt = time.Unix(r.ExpiresAt, 0).UTC()
	case r.ExpiresIn > 0:
		s.ExpiresAt = now.Add(time.Duration(r.ExpiresIn) * time.Second).UTC()
	}
	if r.User != nil {
		s.User = *r.User
	}

	if s.User.ID == "" || s.ExpiresAt.IsZero() {
		claims, err := parseClaims(r.AccessToken)
		if err != nil {
			return nil, err
		}
		if s.User.ID == "" {
			s.User.ID = claims.Subject
			s.User.Email = claims.Email
		}
		if s.ExpiresAt.IsZero() && claims.ExpiresAt != nil {
			s.ExpiresAt = claims.ExpiresAt.UTC()
		}
	}

	if s.User.ID == "" {
		return nil, errors.New("auth service returned no user")
	}
	return s, nil
}
