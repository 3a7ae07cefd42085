package auth

import (
	"context"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/furniture-crm/crm-cli/internal/pkg/client"
	"github.com/furniture-crm/crm-cli/internal/pkg/log"
)

const (
	tokenPath  = "/auth/v1/token"
	logoutPath = "/auth/v1/logout"
	apiKeyHdr  = "apikey"
)

// Authenticator issues, refreshes and revokes sessions.
type Authenticator interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	RefreshSession(ctx context.Context, refreshToken string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// Client of the GoTrue compatible auth service.
type Client struct {
	client *client.Client
	clock  clockwork.Clock
}

func NewClient(logger log.Logger, clock clockwork.Clock, authURL, anonKey string, opts ...client.Option) *Client {
	opts = append([]client.Option{client.WithHeader(apiKeyHdr, anonKey)}, opts...)
	return &Client{
		client: client.New(logger.WithComponent("auth.client"), authURL, opts...),
		clock:  clock,
	}
}

// HTTPClient returns the underlying client, tests use it to mock the transport.
func (c *Client) HTTPClient() *client.Client {
	return c.client
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	return c.grant(ctx, "password", body)
}

func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	body := map[string]string{"refresh_token": refreshToken}
	return c.grant(ctx, "refresh_token", body)
}

// SignOut revokes the refresh tokens of the session.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req := c.client.R(ctx).SetAuthToken(accessToken)
	_, err := client.Send(req, http.MethodPost, logoutPath)
	return err
}

func (c *Client) grant(ctx context.Context, grantType string, body any) (*Session, error) {
	result := &tokenResponse{}
	req := c.client.R(ctx).
		SetQueryParam("grant_type", grantType).
		SetBody(body).
		SetResult(result)
	if _, err := client.Send(req, http.MethodPost, tokenPath); err != nil {
		return nil, err
	}
	return result.toSession(c.clock.Now())
}
