package ggapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

var testCredentials = Credentials{
	ClientID:     "client-id",
	ClientSecret: "client-secret",
	RedirectURI:  "https://example.com/callback",
}

func testEndpoints(baseURL string) Endpoints {
	return Endpoints{
		TokenURL:     baseURL + "/token",
		AuthorizeURL: baseURL + "/authorize",
		PubdirURL:    baseURL,
		UsersURL:     baseURL,
		LifeURL:      baseURL,
		AvatarsURL:   baseURL + "/avatars",
	}
}

// capturedRequest is a copy of what the fake service received.
type capturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
	Header http.Header
}

// recorder collects requests received by a test server.
type recorder struct {
	mu       sync.Mutex
	requests []capturedRequest
}

func (rec *recorder) record(r *http.Request) capturedRequest {
	_ = r.ParseForm()

	c := capturedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Form:   r.PostForm,
		Header: r.Header.Clone(),
	}

	rec.mu.Lock()
	rec.requests = append(rec.requests, c)
	rec.mu.Unlock()

	return c
}

func (rec *recorder) byPath(path string) []capturedRequest {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	var out []capturedRequest
	for _, c := range rec.requests {
		if c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

func newTestServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, c capturedRequest)) (*httptest.Server, *recorder) {
	t.Helper()

	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler(w, r, rec.record(r))
	}))
	t.Cleanup(server.Close)

	return server, rec
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func newTestSession(t *testing.T, server *httptest.Server, opts ...Option) *Session {
	t.Helper()

	opts = append([]Option{
		WithEndpoints(testEndpoints(server.URL)),
		WithTokens("access-1", "refresh-1"),
	}, opts...)

	s, err := New(context.Background(), testCredentials, opts...)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	return s
}
