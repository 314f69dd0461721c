package mockapi

import (
	"net/http/httptest"
	"testing"
)

// NewTestServer serves a fresh fake API on a local port until the test ends
// and returns it with its base URL.
func NewTestServer(t testing.TB, opts Options) (*Server, string) {
	t.Helper()
	s := New(opts)
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return s, ts.URL + opts.BasePath
}
