// Package testutil provides testing utilities for the Slotbook SDK.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockServer is a test HTTP server standing in for the booking backend.
type MockServer struct {
	*httptest.Server
	mu       sync.Mutex
	handlers map[string]map[string]http.HandlerFunc
	requests []RecordedRequest
}

// RecordedRequest represents a recorded HTTP request.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Headers  http.Header
	Body     []byte
}

// NewMockServer creates a new mock server. Unregistered routes answer 404
// with a DRF-style {"detail": "Not found."} body.
func NewMockServer(t *testing.T) *MockServer {
	t.Helper()

	ms := &MockServer{
		handlers: make(map[string]map[string]http.HandlerFunc),
	}

	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()

		ms.mu.Lock()
		ms.requests = append(ms.requests, RecordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Headers:  r.Header.Clone(),
			Body:     body,
		})
		handler := ms.handlers[r.URL.Path][r.Method]
		ms.mu.Unlock()

		if handler != nil {
			r.Body = io.NopCloser(strings.NewReader(string(body)))
			handler(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"detail":"Not found."}`)
	}))

	t.Cleanup(ms.Close)

	return ms
}

// Handle registers a handler for a method and a full path (including /api/v1).
func (ms *MockServer) Handle(method, path string, handler http.HandlerFunc) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.handlers[path] == nil {
		ms.handlers[path] = make(map[string]http.HandlerFunc)
	}
	ms.handlers[path][method] = handler
}

// HandleJSON registers a handler that returns a JSON response.
func (ms *MockServer) HandleJSON(method, path string, statusCode int, response any) {
	ms.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if response != nil {
			json.NewEncoder(w).Encode(response)
		}
	})
}

// HandleRaw registers a handler that writes body verbatim.
func (ms *MockServer) HandleRaw(method, path string, statusCode int, body string) {
	ms.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		io.WriteString(w, body)
	})
}

// Requests returns all recorded requests.
func (ms *MockServer) Requests() []RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]RecordedRequest{}, ms.requests...)
}

// LastRequest returns the last recorded request.
func (ms *MockServer) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()
	ms.mu.Lock()
	defer ms.mu.Unlock()
	require.NotEmpty(t, ms.requests, "no requests recorded")
	return ms.requests[len(ms.requests)-1]
}

// AssertRequestCount asserts that a specific number of requests were made.
func (ms *MockServer) AssertRequestCount(t *testing.T, expected int) {
	t.Helper()
	ms.mu.Lock()
	actual := len(ms.requests)
	ms.mu.Unlock()
	assert.Equal(t, expected, actual, "request count")
}

// AssertLastRequest asserts the method, path and raw query of the last request.
func (ms *MockServer) AssertLastRequest(t *testing.T, method, path, rawQuery string) {
	t.Helper()
	req := ms.LastRequest(t)
	assert.Equal(t, method, req.Method)
	assert.Equal(t, path, req.Path)
	assert.Equal(t, rawQuery, req.RawQuery)
}

// ParseLastRequestBody parses the body of the last request as JSON.
func (ms *MockServer) ParseLastRequestBody(t *testing.T, v any) {
	t.Helper()
	req := ms.LastRequest(t)
	require.NoError(t, json.Unmarshal(req.Body, v))
}
