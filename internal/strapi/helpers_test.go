package strapi

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeCMS records every request and answers with a fixed status and body.
type fakeCMS struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
	status   int
	body     string
}

func newFakeCMS(t *testing.T, status int, body string) *fakeCMS {
	t.Helper()
	f := &fakeCMS{status: status, body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		status, body := f.status, f.body
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeCMS) hits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeCMS) last() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

func (f *fakeCMS) respond(status int, body string) {
	f.mu.Lock()
	f.status, f.body = status, body
	f.mu.Unlock()
}

// failingDoer fails the test on any network attempt.
type failingDoer struct{ t *testing.T }

func (d failingDoer) Do(req *http.Request) (*http.Response, error) {
	require.FailNowf(d.t, "unexpected request", "to %s", req.URL)
	return nil, nil
}
