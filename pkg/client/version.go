package client

import "net/http"

// Version is the roger client version, reported alongside controller version
// information and stamped into the config snapshot.
const Version = "0.9.0"

// ClientVersionKey is the data key under which the local Version is merged
// into a successful version envelope.
const ClientVersionKey = "client"

// Version fetches controller version info and merges the local client
// version into the response data. Failed envelopes and non-object data pass
// through untouched.
func (c *Client) Version() Envelope {
	env := c.Request("/api/version", http.MethodGet, nil)
	if env.Success {
		if data := env.DataObject(); data != nil {
			data[ClientVersionKey] = Version
		}
	}
	return env
}
