package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Request describes one logical call. It is kept as a description rather than
// an *http.Request so that it can be rebuilt and replayed after a refresh.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
	Header http.Header

	// Public requests carry no bearer and are never refreshed (login, register, refresh).
	Public bool

	// ID is sent as X-Request-ID on every attempt of this request.
	ID string

	retried bool
	bearer  string
}

// NewRequest encodes body as JSON. A nil body sends no payload.
func NewRequest(method, path string, body any) (*Request, error) {
	req := &Request{Method: method, Path: path}
	if body == nil {
		return req, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
	}
	req.Body = data
	return req, nil
}

// Response is a fully read backend response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Err returns nil for 2xx and a *ResponseError otherwise.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	return newResponseError(r.StatusCode, r.Body)
}

// Decode unmarshals the body into out. Empty bodies (204) leave out untouched.
func (r *Response) Decode(out any) error {
	if out == nil || len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
