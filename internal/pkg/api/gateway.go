// Package api is the gateway to the CRM REST API.
//
// Each method sends exactly one request. Requests are never retried,
// a non-2xx response is returned as *HTTPError.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/furniture-crm/crm-cli/internal/pkg/client"
	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/model"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

// ErrNameRequired is returned by CreateCustomer before any request is sent.
var ErrNameRequired = errors.New("customer name is required")

// HTTPError is returned for a response with a non-2xx status code.
type HTTPError = client.HTTPError

// TokenSource provides the bearer token, found is false when no session exists.
type TokenSource interface {
	AccessToken(ctx context.Context) (token string, found bool)
}

type Gateway struct {
	client *client.Client
	tokens TokenSource
}

func New(logger log.Logger, baseURL string, tokens TokenSource, opts ...client.Option) *Gateway {
	return &Gateway{
		client: client.New(logger.WithComponent("api"), baseURL, opts...),
		tokens: tokens,
	}
}

// HTTPClient returns the underlying client, tests use it to mock the transport.
func (g *Gateway) HTTPClient() *client.Client {
	return g.client
}

func (g *Gateway) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if _, err := client.Send(g.request(ctx).SetResult(&customers), http.MethodGet, "/customers"); err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	return customers, nil
}

func (g *Gateway) GetCustomer(ctx context.Context, id int) (*model.Customer, error) {
	customer := &model.Customer{}
	req := g.request(ctx).SetPathParam("id", strconv.Itoa(id)).SetResult(customer)
	if _, err := client.Send(req, http.MethodGet, "/customers/{id}"); err != nil {
		return nil, err
	}
	return customer, nil
}

func (g *Gateway) CreateCustomer(ctx context.Context, fields model.CustomerFields) (*model.Customer, error) {
	if strings.TrimSpace(fields.Name) == "" {
		return nil, ErrNameRequired
	}

	customer := &model.Customer{}
	req := g.request(ctx).SetBody(fields).SetResult(customer)
	if _, err := client.Send(req, http.MethodPost, "/customers"); err != nil {
		return nil, err
	}
	return customer, nil
}

func (g *Gateway) UpdateCustomer(ctx context.Context, id int, patch model.CustomerPatch) (*model.Customer, error) {
	customer := &model.Customer{}
	req := g.request(ctx).SetPathParam("id", strconv.Itoa(id)).SetBody(patch).SetResult(customer)
	if _, err := client.Send(req, http.MethodPut, "/customers/{id}"); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer sends the id as a query parameter, the backend expects "DELETE /customers?id={id}".
func (g *Gateway) DeleteCustomer(ctx context.Context, id int) error {
	req := g.request(ctx).SetQueryParam("id", strconv.Itoa(id))
	_, err := client.Send(req, http.MethodDelete, "/customers")
	return err
}

func (g *Gateway) GetStats(ctx context.Context) (*model.Stats, error) {
	stats := &model.Stats{}
	if _, err := client.Send(g.request(ctx).SetResult(stats), http.MethodGet, "/stats"); err != nil {
		return nil, err
	}
	return stats, nil
}

// request creates a new request, the bearer token is attached if a session exists.
func (g *Gateway) request(ctx context.Context) *resty.Request {
	req := g.client.R(ctx)
	if g.tokens != nil {
		if token, found := g.tokens.AccessToken(ctx); found {
			req.SetAuthToken(token)
		}
	}
	return req
}
