package client

import "time"

// Envelope is the uniform response shape returned by every operation.
// Exactly one of Data (on success) or Error (on failure) is meaningful.
// Timestamp is filled in locally on failures synthesized by this client;
// the controller may include its own.
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// DataObject returns Data as a JSON object, or nil when Data is absent or
// has some other shape.
func (e Envelope) DataObject() map[string]any {
	m, _ := e.Data.(map[string]any)
	return m
}

// failure builds a local failure envelope stamped with the current time.
func failure(msg string) Envelope {
	return Envelope{
		Success:   false,
		Error:     msg,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
