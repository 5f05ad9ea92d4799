// Package roger exposes the Jeannie controller API client used by the roger
// CLI, for embedding in other tools.
//
// Example usage:
//
//	api := roger.NewClient("http://localhost:3000", nil, logger)
//	env := api.Health()
//	if !env.Success {
//	    log.Fatal(env.Error)
//	}
package roger

import (
	"github.com/rs/zerolog"

	"github.com/audioforge/roger/pkg/client"
)

// Client issues requests against the Jeannie controller API.
type Client = client.Client

// Envelope is the uniform response shape returned by every operation.
type Envelope = client.Envelope

// HTTPClient abstracts HTTP request execution; *http.Client satisfies it.
type HTTPClient = client.HTTPClient

// Version is the roger client version.
const Version = client.Version

// NewClient creates a client for the controller API at apiURL. A nil
// httpClient falls back to a standard *http.Client with a 5s timeout.
func NewClient(apiURL string, httpClient HTTPClient, logger zerolog.Logger) *Client {
	return client.New(apiURL, httpClient, logger)
}
