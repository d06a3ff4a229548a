// Package resources provides REST resource implementations for the Slotbook API.
package resources

import (
	"context"
	"net/http"

	"github.com/slotbook/slotbook-sdk-go/internal/httpx"
)

// UserExternalIDHeader carries the acting user's external ID on booking calls.
const UserExternalIDHeader = "X-User-External-ID"

// RequestOption adjusts a single request before it is sent.
type RequestOption func(*httpx.Request)

// WithQuery appends query parameters in order.
func WithQuery(params httpx.Params) RequestOption {
	return func(r *httpx.Request) {
		r.Query = append(r.Query, params...)
	}
}

// WithHeader sets a request header, overriding the transport defaults.
func WithHeader(key, value string) RequestOption {
	return func(r *httpx.Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithUserExternalID sets the X-User-External-ID header when id is non-empty.
func WithUserExternalID(id string) RequestOption {
	return func(r *httpx.Request) {
		if id != "" {
			WithHeader(UserExternalIDHeader, id)(r)
		}
	}
}

// Base provides common functionality for all resources.
type Base struct {
	transport *httpx.Transport
}

// NewBase creates a new Base resource.
func NewBase(transport *httpx.Transport) *Base {
	return &Base{transport: transport}
}

// Raw performs a request and returns the undecoded response.
func (b *Base) Raw(ctx context.Context, method, path string, body any, opts ...RequestOption) (*httpx.Response, error) {
	req := &httpx.Request{
		Method: method,
		Path:   path,
		Body:   body,
	}
	for _, opt := range opts {
		opt(req)
	}
	return b.transport.Do(ctx, req)
}

// Get performs a GET request.
func (b *Base) Get(ctx context.Context, path string, result any, opts ...RequestOption) error {
	resp, err := b.Raw(ctx, http.MethodGet, path, nil, opts...)
	if err != nil {
		return err
	}
	return decodeResponse(resp, result)
}

// Post performs a POST request.
func (b *Base) Post(ctx context.Context, path string, body any, result any, opts ...RequestOption) error {
	resp, err := b.Raw(ctx, http.MethodPost, path, body, opts...)
	if err != nil {
		return err
	}
	return decodeResponse(resp, result)
}

// decodeResponse decodes a response into the result if result is not nil.
func decodeResponse(resp *httpx.Response, result any) error {
	if result == nil {
		return nil
	}
	return resp.Decode(result)
}

// lookup resolves an external ID, turning a not-found response into (nil, nil).
func lookup[T any](ctx context.Context, b *Base, path, externalID string) (*T, error) {
	var q httpx.Params
	q.Add("external_id", externalID)

	var result T
	err := b.Get(ctx, path, &result, WithQuery(q))
	if httpx.IsNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
