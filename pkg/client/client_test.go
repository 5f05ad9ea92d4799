package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func newTestClient(url string) *Client {
	return New(url, nil, zerolog.Nop())
}

func TestRequestSuccessPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"x":1}}`))
	}))
	defer srv.Close()

	env := newTestClient(srv.URL).Request("/api/hello", http.MethodGet, nil)

	want := Envelope{Success: true, Data: map[string]any{"x": float64(1)}}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("Request() envelope mismatch (-want +got):\n%s", diff)
	}
}

func TestRequestDomainFailurePassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":"boom"}`))
	}))
	defer srv.Close()

	env := newTestClient(srv.URL).Request("/api/hello", http.MethodGet, nil)

	if env.Success {
		t.Fatal("Request() success = true, want false")
	}
	if env.Error != "boom" {
		t.Errorf("Request() error = %q, want %q", env.Error, "boom")
	}
	if env.Timestamp != "" {
		t.Errorf("Request() timestamp = %q, want empty for remote failures", env.Timestamp)
	}
}

func TestRequestConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	env := newTestClient(url).Request("/api/hello", http.MethodGet, nil)

	if env.Success {
		t.Fatal("Request() success = true, want false")
	}
	if !strings.HasPrefix(env.Error, "Failed to connect to Jeannie API:") {
		t.Errorf("Request() error = %q, want connection-failure prefix", env.Error)
	}
	if env.Timestamp == "" {
		t.Error("Request() timestamp empty, want local timestamp on connection failure")
	}
}

func TestRequestNonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	env := newTestClient(srv.URL).Request("/api/hello", http.MethodGet, nil)

	if env.Success {
		t.Fatal("Request() success = true, want false")
	}
	if !strings.HasPrefix(env.Error, "Request failed:") {
		t.Errorf("Request() error = %q, want request-failure prefix", env.Error)
	}
	if env.Timestamp == "" {
		t.Error("Request() timestamp empty, want local timestamp on protocol failure")
	}
}

func TestRequestPostBodyAndHeaders(t *testing.T) {
	var (
		gotMethod      string
		gotPath        string
		gotContentType string
		gotRequestID   string
		gotUserAgent   string
		gotBody        map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-Id")
		gotUserAgent = r.Header.Get("User-Agent")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	env := newTestClient(srv.URL).TrackMute(true)

	if !env.Success {
		t.Fatalf("TrackMute() failed: %s", env.Error)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotPath != "/api/bitwig/tracks/mute" {
		t.Errorf("path = %q, want /api/bitwig/tracks/mute", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotRequestID == "" {
		t.Error("X-Request-Id header missing")
	}
	if gotUserAgent != "roger/"+Version {
		t.Errorf("User-Agent = %q, want roger/%s", gotUserAgent, Version)
	}
	if diff := cmp.Diff(map[string]any{"mute": true}, gotBody); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestRequestGetSendsNoBody(t *testing.T) {
	var gotContentType string
	var gotLength int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotLength = r.ContentLength
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	newTestClient(srv.URL).Hello()

	if gotContentType != "" {
		t.Errorf("Content-Type = %q, want empty on body-less requests", gotContentType)
	}
	if gotLength > 0 {
		t.Errorf("ContentLength = %d, want 0", gotLength)
	}
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	New(srv.URL+"/", nil, zerolog.Nop()).Health()

	if gotPath != "/health" {
		t.Errorf("path = %q, want /health", gotPath)
	}
}
