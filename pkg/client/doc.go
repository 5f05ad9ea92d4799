// Package client talks to the Jeannie controller REST API.
//
// Every operation returns an Envelope rather than a Go error: transport
// failures and malformed responses are folded into a failure envelope with a
// local timestamp, so callers render success and failure the same way.
//
// # Usage
//
//	api := client.New("http://localhost:3000", nil, logger)
//	env := api.ContentSearch("piano", client.SearchOptions{Fuzzy: true})
//	if !env.Success {
//	    // env.Error carries the explanation
//	}
//
// Pass a custom HTTPClient to intercept requests in tests or to tune the
// transport.
package client
