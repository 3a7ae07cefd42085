// Package client configures the resty HTTP client shared by the CRM API gateway and the auth client.
package client

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/furniture-crm/crm-cli/internal/pkg/encoding/json"
	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
	"github.com/furniture-crm/crm-cli/internal/pkg/version"
)

const (
	RequestTimeout        = 30 * time.Second
	HTTPTimeout           = 30 * time.Second
	IdleConnTimeout       = 30 * time.Second
	TLSHandshakeTimeout   = 10 * time.Second
	ResponseHeaderTimeout = 20 * time.Second
	KeepAlive             = 20 * time.Second
	MaxIdleConns          = 8
	DebugBodyLimit        = 32 * 1024
	RequestIDHeader       = "X-Request-Id"
)

// Client wraps resty.Client, requests are never retried.
type Client struct {
	logger log.Logger
	resty  *resty.Client
}

type config struct {
	timeout time.Duration
	verbose bool
	headers map[string]string
}

type Option func(c *config)

// WithTimeout overrides the RequestTimeout.
func WithTimeout(v time.Duration) Option {
	return func(c *config) {
		c.timeout = v
	}
}

// WithVerbose enables dump of requests and responses to the debug log, secrets are masked.
func WithVerbose(v bool) Option {
	return func(c *config) {
		c.verbose = v
	}
}

// WithHeader sets a header sent with each request.
func WithHeader(k, v string) Option {
	return func(c *config) {
		c.headers[k] = v
	}
}

func New(logger log.Logger, baseURL string, opts ...Option) *Client {
	cfg := config{timeout: RequestTimeout, headers: make(map[string]string)}
	for _, o := range opts {
		o(&cfg)
	}

	c := &Client{logger: logger}
	c.resty = resty.New().
		SetLogger(&restyLogger{logger: logger}).
		SetBaseURL(baseURL).
		SetHeader("User-Agent", version.UserAgent()).
		SetHeaders(cfg.headers).
		SetTimeout(cfg.timeout).
		SetRetryCount(0).
		SetTransport(createTransport()).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	if cfg.verbose {
		c.resty.SetDebug(true)
		c.resty.SetDebugBodyLimit(DebugBodyLimit)
	}

	c.resty.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(RequestIDHeader) == "" {
			req.SetHeader(RequestIDHeader, uuid.Must(uuid.NewV4()).String())
		}
		return nil
	})
	c.resty.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		c.logger.Debug(responseToLog(res))
		if res.IsError() {
			return newHTTPError(res)
		}
		return nil
	})
	c.resty.OnError(func(req *resty.Request, err error) {
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) {
			c.logger.Debugf(`%s %s | error: %s`, req.Method, req.URL, MaskSecrets(err.Error()))
		}
	})

	return c
}

// Resty returns the underlying client, tests use it to mock the transport.
func (c *Client) Resty() *resty.Client {
	return c.resty
}

func (c *Client) BaseURL() string {
	return c.resty.BaseURL
}

// R creates a new request bound to the context.
func (c *Client) R(ctx context.Context) *resty.Request {
	return c.resty.R().SetContext(ctx)
}

// Send executes the request.
// A non-2xx response is returned as *HTTPError, a transport failure is wrapped with the request description.
func Send(req *resty.Request, method, url string) (*resty.Response, error) {
	res, err := req.Execute(method, url)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return res, httpErr
		}
		return res, errors.Errorf(`request "%s %s" failed: %w`, method, url, err)
	}
	return res, nil
}

func responseToLog(res *resty.Response) string {
	req := res.Request
	return fmt.Sprintf("%s %s | %d | %s", req.Method, req.URL, res.StatusCode(), res.Time())
}

func createTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   HTTPTimeout,
		KeepAlive: KeepAlive,
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          MaxIdleConns,
		MaxIdleConnsPerHost:   MaxIdleConns,
		IdleConnTimeout:       IdleConnTimeout,
		TLSHandshakeTimeout:   TLSHandshakeTimeout,
		ResponseHeaderTimeout: ResponseHeaderTimeout,
	}
}
