package client

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

// queryRecorder serves an empty success envelope and captures the decoded
// query of the last request.
func queryRecorder(t *testing.T) (*Client, *url.Values, *string) {
	t.Helper()
	var query url.Values
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, nil, zerolog.Nop()), &query, &path
}

func TestContentSearchQueryParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		opts  SearchOptions
		want  url.Values
	}{
		{
			name:  "defaults omit every filter",
			query: "piano",
			opts:  SearchOptions{},
			want:  url.Values{"q": {"piano"}, "limit": {"20"}},
		},
		{
			name:  "all filters present exactly once",
			query: "analog kick",
			opts: SearchOptions{
				Fuzzy:    true,
				Type:     "Sample",
				Creator:  "Audio Forge RS",
				Category: "Drums",
				Limit:    5,
			},
			want: url.Values{
				"q":        {"analog kick"},
				"limit":    {"5"},
				"fuzzy":    {"true"},
				"type":     {"Sample"},
				"creator":  {"Audio Forge RS"},
				"category": {"Drums"},
			},
		},
		{
			name:  "fuzzy false is omitted",
			query: "pad",
			opts:  SearchOptions{Fuzzy: false, Limit: 10},
			want:  url.Values{"q": {"pad"}, "limit": {"10"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, query, path := queryRecorder(t)
			env := c.ContentSearch(tt.query, tt.opts)
			if !env.Success {
				t.Fatalf("ContentSearch() failed: %s", env.Error)
			}
			if *path != "/api/content/search" {
				t.Errorf("path = %q, want /api/content/search", *path)
			}
			if diff := cmp.Diff(tt.want, *query); diff != "" {
				t.Errorf("query mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContentListQueryParams(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want url.Values
	}{
		{
			name: "defaults carry only pagination",
			opts: ListOptions{},
			want: url.Values{"limit": {"20"}, "offset": {"0"}},
		},
		{
			name: "filters and offset pass through",
			opts: ListOptions{Type: "Preset", Creator: "u-he", Limit: 50, Offset: 100},
			want: url.Values{
				"limit":   {"50"},
				"offset":  {"100"},
				"type":    {"Preset"},
				"creator": {"u-he"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, query, path := queryRecorder(t)
			env := c.ContentList(tt.opts)
			if !env.Success {
				t.Fatalf("ContentList() failed: %s", env.Error)
			}
			if *path != "/api/content" {
				t.Errorf("path = %q, want /api/content", *path)
			}
			if diff := cmp.Diff(tt.want, *query); diff != "" {
				t.Errorf("query mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContentRescanPostsEmptyBody(t *testing.T) {
	var gotMethod string
	var gotLength int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotLength = r.ContentLength
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	env := New(srv.URL, nil, zerolog.Nop()).ContentRescan()
	if !env.Success {
		t.Fatalf("ContentRescan() failed: %s", env.Error)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotLength > 0 {
		t.Errorf("ContentLength = %d, want 0", gotLength)
	}
}
