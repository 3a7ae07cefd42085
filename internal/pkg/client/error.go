package client

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/furniture-crm/crm-cli/internal/pkg/encoding/json"
)

// HTTPError is returned for a response with a non-2xx status code.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
}

func newHTTPError(res *resty.Response) *HTTPError {
	return &HTTPError{
		Method:     res.Request.Method,
		URL:        res.Request.URL,
		StatusCode: res.StatusCode(),
		Message:    errorMessage(res.Body()),
	}
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf(`request "%s %s" failed: %d %s`, e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// errorMessage extracts a message from the common JSON error bodies, or returns the trimmed body.
func errorMessage(body []byte) string {
	var payload struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Decode(body, &payload); err == nil {
		for _, v := range []string{payload.ErrorDescription, payload.Message, payload.Msg, payload.Error} {
			if v != "" {
				return v
			}
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return msg
}
