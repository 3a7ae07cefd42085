package api

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/model"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

const testBaseURL = "http://localhost:3001/api"

type staticToken string

func (s staticToken) AccessToken(context.Context) (string, bool) {
	return string(s), s != ""
}

func newTestGateway(t *testing.T, token string) (*Gateway, *httpmock.MockTransport) {
	t.Helper()
	g := New(log.NewNopLogger(), testBaseURL, staticToken(token))
	transport := httpmock.NewMockTransport()
	g.HTTPClient().Resty().GetClient().Transport = transport
	return g, transport
}

func TestGateway_ListCustomers(t *testing.T) {
	t.Parallel()
	g, transport := newTestGateway(t, "access-1")
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/customers", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer access-1", req.Header.Get("Authorization"))
		return httpmock.NewJsonResponse(http.StatusOK, []model.Customer{
			{ID: 1, Name: "Alice", Email: "alice@example.com", Phone: "123", TotalOrders: 2, TotalSpent: 100.5},
			{ID: 2, Name: "Bob", Email: "bob@example.com"},
		})
	})

	customers, err := g.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Alice", customers[0].Name)
	assert.InDelta(t, 100.5, customers[0].TotalSpent, 0.001)
	assert.NoError(t, model.ValidateCustomerList(customers))
}

func TestGateway_ListCustomers_DuplicateIDsReturnedAsIs(t *testing.T) {
	t.Parallel()
	g, transport := newTestGateway(t, "access-1")
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/customers", httpmock.NewJsonResponderOrPanic(http.StatusOK, []model.Customer{
		{ID: 5, Name: "Alice"},
		{ID: 5, Name: "Alice duplicate"},
	}))

	customers, err := g.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.Len(t, customers, 2)
	assert.Error(t, model.ValidateCustomerList(customers))
}

func TestGateway_NoSession_NoAuthorizationHeader(t *testing.T) {
	t.Parallel()
	g, transport := newTestGateway(t, "")
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/stats", func(req *http.Request) (*http.Response, error) {
		assert.Empty(t, req.Header.Get("Authorization"))
		return httpmock.NewStringResponse(http.StatusUnauthorized, `{"message":"Unauthorized"}`), nil
	})

	_, err := g.GetStats(context.Background())
	require.Error(t, err)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.True(t, httpErr.IsUnauthorized())
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestGateway_GetCustomer(t *testing.T) {
	t.Parallel()
	g, transport := newTestGateway(t, "access-1")
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/customers/7", httpmock.NewJsonResponderOrPanic(http.StatusOK, model.Customer{ID: 7, Name: "Bob"}))

	customer, err := g.GetCustomer(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &model.Customer{ID: 7, Name: "Bob"}, customer)
}

func TestGateway_CreateCustomer(t *testing.T) {
	t.Parallel()
	g, transport := newTestGateway(t, "access-1")
	transport.RegisterResponder(http.MethodPost, testBaseURL+"/customers", func(req *http.Request) (*http.Response, error) {
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Carol","email":"carol@example.com","phone":""}`, string(body))
		return httpmock.NewJsonResponse(http.StatusCreated, model.Customer{ID: 3, Name: "Carol", Email: "carol@example.com"})
	})

	customer, err := g.CreateCustomer(context.Background(), model.CustomerFields{Name: "Carol", Email: "carol@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 3, customer.ID)
}

func TestGateway_CreateCustomer_EmptyName(t *testing.T) {
	t.Parallel()
	g, transport := newTestGateway(t, "access-1")

	_, err := g.CreateCustomer(context.Background(), model.CustomerFields{Name: "  ", Email: "carol@example.com"})
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Equal(t, 0, transport.GetTotalCallCount())
}

func TestGateway_UpdateCustomer_Partial(t *testing.T) {
	t.Parallel()
	g, transport := newTestGateway(t, "access-1")
	transport.RegisterResponder(http.MethodPut, testBaseURL+"/customers/7", func(req *http.Request) (*http.Response, error) {
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"phone":"555"}`, string(body))
		return httpmock.NewJsonResponse(http.StatusOK, model.Customer{ID: 7, Name: "Bob", Phone: "555"})
	})

	phone := "555"
	customer, err := g.UpdateCustomer(context.Background(), 7, model.CustomerPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555", customer.Phone)
}

func TestGateway_DeleteCustomer(t *testing.T) {
	t.Parallel()
	g, transport := newTestGateway(t, "access-1")
	transport.RegisterResponder(http.MethodDelete, testBaseURL+"/customers?id=7", httpmock.NewStringResponder(http.StatusNoContent, ""))

	require.NoError(t, g.DeleteCustomer(context.Background(), 7))
	assert.Equal(t, 1, transport.GetCallCountInfo()["DELETE "+testBaseURL+"/customers?id=7"])
}

func TestGateway_GetStats(t *testing.T) {
	t.Parallel()
	g, transport := newTestGateway(t, "access-1")
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/stats", httpmock.NewStringResponder(
		http.StatusOK,
		`{"totalCustomers":3,"totalOrders":10,"totalRevenue":500.5,"avgOrderValue":50.05}`,
	).HeaderSet(http.Header{"Content-Type": []string{"application/json"}}))

	stats, err := g.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.Stats{TotalCustomers: 3, TotalOrders: 10, TotalRevenue: 500.5, AvgOrderValue: 50.05}, stats)
}
