package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// RecordedRequest is a request received by GitHubServer.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// GitHubServer is a fake GitHub REST API. Routes are registered on a chi
// router, so handlers can read path parameters with chi.URLParam.
type GitHubServer struct {
	URL string

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewGitHubServer starts a fake API server that is closed when the test ends.
// Unregistered routes answer 404 with a GitHub style error body.
func NewGitHubServer(t *testing.T, routes func(r chi.Router)) *GitHubServer {
	t.Helper()

	srv := &GitHubServer{}
	r := chi.NewRouter()
	r.Use(srv.record)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(t, w, http.StatusNotFound, `{"message":"Not Found","documentation_url":"https://docs.github.com/rest"}`)
	})
	routes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	srv.URL = ts.URL

	return srv
}

func (x *GitHubServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		x.mu.Lock()
		x.requests = append(x.requests, RecordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		x.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// Requests returns a copy of the requests received so far.
func (x *GitHubServer) Requests() []RecordedRequest {
	x.mu.Lock()
	defer x.mu.Unlock()

	out := make([]RecordedRequest, len(x.requests))
	copy(out, x.requests)
	return out
}

// WriteJSON writes body as a JSON response.
func WriteJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		t.Errorf("failed to write response: %v", err)
	}
}
