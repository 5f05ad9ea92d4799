package client

import (
	"net/http"
	"net/url"
	"strconv"
)

// DefaultLimit caps search and listing results when the caller does not ask
// for a specific page size.
const DefaultLimit = 20

// SearchOptions narrows a content search. Zero-valued filters are omitted
// from the query string; Fuzzy is only sent when true.
type SearchOptions struct {
	Fuzzy    bool
	Type     string
	Creator  string
	Category string
	Limit    int `validate:"omitempty,gte=1"`
}

// ListOptions pages and filters a content listing.
type ListOptions struct {
	Type     string
	Creator  string
	Category string
	Limit    int `validate:"omitempty,gte=1"`
	Offset   int `validate:"gte=0"`
}

// ContentSearch searches indexed content for query.
func (c *Client) ContentSearch(query string, opts SearchOptions) Envelope {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(orDefault(opts.Limit)))
	if opts.Fuzzy {
		params.Set("fuzzy", "true")
	}
	setFilter(params, "type", opts.Type)
	setFilter(params, "creator", opts.Creator)
	setFilter(params, "category", opts.Category)
	return c.Request("/api/content/search?"+params.Encode(), http.MethodGet, nil)
}

// ContentList lists indexed content with pagination.
func (c *Client) ContentList(opts ListOptions) Envelope {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(orDefault(opts.Limit)))
	params.Set("offset", strconv.Itoa(opts.Offset))
	setFilter(params, "type", opts.Type)
	setFilter(params, "creator", opts.Creator)
	setFilter(params, "category", opts.Category)
	return c.Request("/api/content?"+params.Encode(), http.MethodGet, nil)
}

// ContentStats fetches content index statistics.
func (c *Client) ContentStats() Envelope {
	return c.Request("/api/content/stats", http.MethodGet, nil)
}

// ContentTypes lists the available content types.
func (c *Client) ContentTypes() Envelope {
	return c.Request("/api/content/types", http.MethodGet, nil)
}

// ContentCreators lists the available creators.
func (c *Client) ContentCreators() Envelope {
	return c.Request("/api/content/creators", http.MethodGet, nil)
}

// ContentCategories lists the available categories.
func (c *Client) ContentCategories() Envelope {
	return c.Request("/api/content/categories", http.MethodGet, nil)
}

// ContentStatus fetches the content index status.
func (c *Client) ContentStatus() Envelope {
	return c.Request("/api/content/status", http.MethodGet, nil)
}

// ContentRescan triggers a content rescan. The POST carries no body.
func (c *Client) ContentRescan() Envelope {
	return c.Request("/api/content/rescan", http.MethodPost, nil)
}

func orDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func setFilter(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
