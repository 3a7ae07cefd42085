package auth

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jarcoal/httpmock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furniture-crm/crm-cli/internal/pkg/client"
	"github.com/furniture-crm/crm-cli/internal/pkg/encoding/json"
	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

const testAuthURL = "https://auth.example.com"

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) // nolint: gochecknoglobals

func newTestClient(t *testing.T) (*Client, *httpmock.MockTransport) {
	t.Helper()
	c := NewClient(log.NewNopLogger(), clockwork.NewFakeClockAt(testNow), testAuthURL, "anon-key")
	transport := httpmock.NewMockTransport()
	c.HTTPClient().Resty().GetClient().Transport = transport
	return c, transport
}

func testToken(t *testing.T, sub, email string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: sub, ExpiresAt: jwt.NewNumericDate(exp)},
		Email:            email,
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestClient_SignInWithPassword(t *testing.T) {
	t.Parallel()
	c, transport := newTestClient(t)

	transport.RegisterResponder(http.MethodPost, testAuthURL+"/auth/v1/token?grant_type=password", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "anon-key", req.Header.Get("apikey"))
		content, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		body := make(map[string]string)
		require.NoError(t, json.Decode(content, &body))
		assert.Equal(t, map[string]string{"email": "alice@example.com", "password": "secret"}, body)
		return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
			"access_token":  "access-1",
			"token_type":    "bearer",
			"expires_in":    3600,
			"refresh_token": "refresh-1",
			"user":          map[string]any{"id": "user-1", "email": "alice@example.com"},
		})
	})

	session, err := c.SignInWithPassword(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, &Session{
		User:         User{ID: "user-1", Email: "alice@example.com"},
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    testNow.Add(time.Hour),
	}, session)
}

func TestClient_RefreshSession_ClaimsFallback(t *testing.T) {
	t.Parallel()
	c, transport := newTestClient(t)
	exp := testNow.Add(30 * time.Minute).Truncate(time.Second)
	token := testToken(t, "user-2", "bob@example.com", exp)

	transport.RegisterResponder(http.MethodPost, testAuthURL+"/auth/v1/token?grant_type=refresh_token", httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
		"access_token":  token,
		"refresh_token": "refresh-2",
	}))

	session, err := c.RefreshSession(context.Background(), "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, User{ID: "user-2", Email: "bob@example.com"}, session.User)
	assert.Equal(t, exp, session.ExpiresAt)
	assert.Equal(t, "refresh-2", session.RefreshToken)
}

func TestClient_SignInWithPassword_Invalid(t *testing.T) {
	t.Parallel()
	c, transport := newTestClient(t)
	transport.RegisterResponder(http.MethodPost, testAuthURL+"/auth/v1/token?grant_type=password", httpmock.NewStringResponder(
		http.StatusBadRequest,
		`{"error":"invalid_grant","error_description":"Invalid login credentials"}`,
	))

	_, err := c.SignInWithPassword(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)
	var httpErr *client.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "Invalid login credentials", httpErr.Message)
}

func TestClient_SignOut(t *testing.T) {
	t.Parallel()
	c, transport := newTestClient(t)
	transport.RegisterResponder(http.MethodPost, testAuthURL+"/auth/v1/logout", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer access-1", req.Header.Get("Authorization"))
		return httpmock.NewStringResponse(http.StatusNoContent, ""), nil
	})

	require.NoError(t, c.SignOut(context.Background(), "access-1"))
	assert.Equal(t, 1, transport.GetTotalCallCount())
}
