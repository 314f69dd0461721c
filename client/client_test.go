package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"clementus360/ai-helper-client/types"
)

func TestBearerTokenReadOnEveryCall(t *testing.T) {
	var got []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID")
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	token := ""
	c := New(ts.URL, TokenFunc(func() string { return token }))
	ctx := context.Background()

	for _, tok := range []string{"", "abc", ""} {
		token = tok
		if err := c.Get(ctx, "/ping", nil, nil); err != nil {
			t.Fatalf("Get() failed: %v", err)
		}
	}
	want := []string{"", "Bearer abc", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d Authorization = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		if r.URL.Query().Get("page") != "2" {
			t.Errorf("query = %q", r.URL.RawQuery)
		}
		b, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write(b)
	}))
	defer ts.Close()

	c := New(ts.URL+"/", nil)
	var out types.MessageRequest
	err := c.Do(context.Background(), http.MethodPost, "/echo", url.Values{"page": {"2"}}, types.MessageRequest{Content: "hola"}, &out)
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	if out.Content != "hola" {
		t.Errorf("out = %+v", out)
	}
}

func TestStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/forbidden":
			http.Error(w, `{"error_message":"no"}`, http.StatusForbidden)
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer ts.Close()

	c := New(ts.URL, nil)
	ctx := context.Background()

	err := c.Post(ctx, "/forbidden", nil, nil)
	if !IsForbidden(err) {
		t.Fatalf("IsForbidden(%v) = false", err)
	}
	var se *StatusError
	if !errors.As(err, &se) || !strings.Contains(se.Body, "no") {
		t.Errorf("StatusError body = %+v", se)
	}
	if err := c.Get(ctx, "/missing", nil, nil); !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false", err)
	}
	if err := c.Delete(ctx, "/other"); !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized(%v) = false", err)
	}
	if StatusCode(io.EOF) != 0 {
		t.Error("StatusCode(non-status error) != 0")
	}
}

func TestNetworkErrorWrapsErrNetwork(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()

	err := New(base, nil).Get(context.Background(), "/x", nil, nil)
	if !errors.Is(err, types.ErrNetwork) {
		t.Fatalf("errors.Is(err, ErrNetwork) = false for %v", err)
	}
	if StatusCode(err) != 0 {
		t.Errorf("StatusCode() = %d, want 0", StatusCode(err))
	}
}

func TestEmptySuccessBodyIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	var out types.Task
	if err := New(ts.URL, nil).Get(context.Background(), "/x", nil, &out); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
}

func TestTimeoutSurvivesCustomHTTPClient(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	shared := &http.Client{}
	c := New(ts.URL, nil, WithTimeout(20*time.Millisecond), WithHTTPClient(shared))
	if shared.Timeout != 0 {
		t.Fatalf("shared client timeout changed to %v", shared.Timeout)
	}

	err := c.Get(context.Background(), "/slow", nil, nil)
	if !errors.Is(err, types.ErrNetwork) {
		t.Fatalf("Get() error = %v, want ErrNetwork after the timeout", err)
	}
}
