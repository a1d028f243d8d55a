package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// Page is the envelope of paginated list endpoints.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	req := &Request{Method: http.MethodGet, Path: path, Query: query}
	return c.call(ctx, req, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	req, err := NewRequest(http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return c.call(ctx, req, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	req, err := NewRequest(http.MethodPatch, path, body)
	if err != nil {
		return err
	}
	return c.call(ctx, req, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	req := &Request{Method: http.MethodDelete, Path: path}
	return c.call(ctx, req, nil)
}

// PostPublic sends an unauthenticated POST (login, register).
func (c *Client) PostPublic(ctx context.Context, path string, body, out any) error {
	req, err := NewRequest(http.MethodPost, path, body)
	if err != nil {
		return err
	}
	req.Public = true
	return c.call(ctx, req, out)
}

func (c *Client) call(ctx context.Context, req *Request, out any) error {
	res, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	return res.Decode(out)
}

// Params builds query values, skipping empty strings.
func Params(kv ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		values.Set(kv[i], kv[i+1])
	}
	return values
}
