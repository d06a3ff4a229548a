// Package httpx provides HTTP transport utilities for the Slotbook SDK.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/slotbook/slotbook-sdk-go/internal/version"
)

// APIPrefix is prepended to every request path.
const APIPrefix = "/api/v1"

// DefaultTimeout bounds a call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Transport executes one HTTP request per call and normalizes every failure
// into an *Error. It holds no mutable state after construction.
type Transport struct {
	client      *http.Client
	baseURL     string
	accessToken string
	userAgent   string
	headers     map[string]string
	timeout     time.Duration
	logger      Logger
}

// Logger is an interface for debug logging.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
}

// Config holds configuration for the transport.
type Config struct {
	BaseURL     string
	AccessToken string
	UserAgent   string
	Headers     map[string]string
	Timeout     time.Duration
	Logger      Logger
	// HTTPClient overrides the default client. Its own Timeout is left alone;
	// the transport bounds each call through the request context.
	HTTPClient *http.Client
}

// NewTransport creates a new Transport with the given configuration.
func NewTransport(cfg Config) *Transport {
	if cfg.UserAgent == "" {
		cfg.UserAgent = version.UserAgent()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	return &Transport{
		client:      httpClient,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		userAgent:   cfg.UserAgent,
		headers:     headers,
		timeout:     cfg.Timeout,
		logger:      cfg.Logger,
	}
}

// Timeout returns the per-call timeout.
func (t *Transport) Timeout() time.Duration {
	return t.timeout
}

// CloseIdleConnections releases pooled keep-alive connections.
func (t *Transport) CloseIdleConnections() {
	t.client.CloseIdleConnections()
}

// Request represents an HTTP request to be made.
type Request struct {
	Method string
	Path   string
	// Body is marshalled to JSON when non-nil.
	Body    any
	Query   Params
	Headers map[string]string
}

// Response represents a successful HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// URL returns the absolute URL for req.
func (t *Transport) URL(req *Request) string {
	fullURL := t.baseURL + APIPrefix + req.Path
	if encoded := req.Query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}
	return fullURL
}

// Do executes req. A 2xx response is returned as is; any other outcome is
// returned as an *Error.
func (t *Transport) Do(parent context.Context, req *Request) (*Response, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(parent, t.timeout)
	defer cancel()

	fullURL := t.URL(req)

	var bodyReader io.Reader
	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, NewNetworkError(fmt.Errorf("failed to marshal request body: %w", err))
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, NewNetworkError(fmt.Errorf("failed to create request: %w", err))
	}

	httpReq.Header.Set("Authorization", "Bearer "+t.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", t.userAgent)
	for k, v := range t.headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	t.log("executing request", "method", req.Method, "url", fullURL)
	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, t.classify(parent, ctx, start, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, t.classify(parent, ctx, start, fmt.Errorf("failed to read response body: %w", err))
	}

	t.log("received response", "status", httpResp.StatusCode, "bytes", len(body))

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, ParseErrorFromResponse(httpResp.StatusCode, body)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Body:       body,
		Headers:    httpResp.Header,
	}, nil
}

// classify maps a failure that produced no HTTP status. A deadline is
// attributed to the caller when parent's deadline falls before the per-call
// timeout.
func (t *Transport) classify(parent, ctx context.Context, start time.Time, err error) *Error {
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, context.DeadlineExceeded) {
		return NewNetworkError(err)
	}
	if deadline, ok := parent.Deadline(); ok && deadline.Before(start.Add(t.timeout)) {
		return NewDeadlineError(time.Since(start), err)
	}
	return NewTimeoutError(t.timeout, err)
}

func (t *Transport) log(msg string, keysAndValues ...any) {
	if t.logger != nil {
		t.logger.Debug(msg, keysAndValues...)
	}
}

// Decode unmarshals the response body into v. An empty body leaves v
// untouched; a malformed one is reported as a generic error.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return NewNetworkError(fmt.Errorf("failed to unmarshal response: %w", err))
	}
	return nil
}
