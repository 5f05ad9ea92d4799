package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultAPIURL is the default base URL of the Jeannie controller API.
const DefaultAPIURL = "http://localhost:3000"

// DefaultTimeout bounds every HTTP exchange so a hung controller never
// blocks the process indefinitely.
const DefaultTimeout = 5 * time.Second

// Client issues requests against the Jeannie controller API and normalizes
// every outcome into an Envelope. It is immutable after construction.
type Client struct {
	apiURL  string
	timeout time.Duration
	http    HTTPClient
	logger  zerolog.Logger
}

// New creates a client for the controller API at apiURL. A nil httpClient
// falls back to a standard *http.Client with the default timeout.
func New(apiURL string, httpClient HTTPClient, logger zerolog.Logger) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		apiURL:  strings.TrimRight(apiURL, "/"),
		timeout: DefaultTimeout,
		http:    httpClient,
		logger:  logger,
	}
}

// Request performs one HTTP exchange. The endpoint may carry a pre-encoded
// query string. A non-nil body is sent as JSON. All failure paths are
// captured into the returned Envelope; Request never reports failure through
// a Go error.
func (c *Client) Request(endpoint, method string, body any) Envelope {
	fullURL := c.apiURL + endpoint

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return failure(fmt.Sprintf("Request failed: %v", err))
		}
		reqBody = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return failure(fmt.Sprintf("Request failed: %v", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", "roger/"+Version)
	req.Header.Set("X-Request-Id", uuid.NewString())

	c.logger.Debug().Str("method", method).Str("url", fullURL).Msg("request")

	resp, err := c.http.Do(req)
	if err != nil {
		return failure(fmt.Sprintf("Failed to connect to Jeannie API: %s", transportReason(err)))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(fmt.Sprintf("Request failed: %v", err))
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return failure(fmt.Sprintf("Request failed: %v", err))
	}

	c.logger.Debug().Int("status", resp.StatusCode).Bool("success", env.Success).Msg("response")
	return env
}

// transportReason strips the request wrapper from transport errors so the
// message reads "connection refused" rather than the full `Get "...":` form.
func transportReason(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err.Error()
	}
	return err.Error()
}

// Hello fetches the hello-world greeting from the controller.
func (c *Client) Hello() Envelope {
	return c.Request("/api/hello", http.MethodGet, nil)
}

// Health checks controller API health.
func (c *Client) Health() Envelope {
	return c.Request("/health", http.MethodGet, nil)
}

// Config fetches the controller's current configuration.
func (c *Client) Config() Envelope {
	return c.Request("/api/config", http.MethodGet, nil)
}
