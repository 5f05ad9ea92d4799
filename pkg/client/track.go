package client

import "net/http"

const tracksEndpoint = "/api/bitwig/tracks"

// CreateTrackOptions configures TrackCreate. An empty Type defaults to
// "instrument"; Position -1 appends at the end of the project.
type CreateTrackOptions struct {
	Type     string `validate:"omitempty,oneof=instrument audio effect"`
	Name     string
	Position int `validate:"gte=-1"`
}

// DeviceOptions configures TrackDevice. An empty Type defaults to "vst3".
type DeviceOptions struct {
	Type string `validate:"omitempty,oneof=vst3 vst2 bitwig"`
}

// TrackList lists all tracks in the current project.
func (c *Client) TrackList() Envelope {
	return c.Request(tracksEndpoint, http.MethodGet, nil)
}

// TrackCurrent returns the currently selected track.
func (c *Client) TrackCurrent() Envelope {
	return c.Request(tracksEndpoint+"/current", http.MethodGet, nil)
}

// TrackCreate creates a new track. The name is only sent when given.
func (c *Client) TrackCreate(opts CreateTrackOptions) Envelope {
	if opts.Type == "" {
		opts.Type = "instrument"
	}
	body := map[string]any{"type": opts.Type, "position": opts.Position}
	if opts.Name != "" {
		body["name"] = opts.Name
	}
	return c.Request(tracksEndpoint, http.MethodPost, body)
}

// TrackSelect selects a track by zero-based index.
func (c *Client) TrackSelect(index int) Envelope {
	return c.Request(tracksEndpoint+"/select", http.MethodPost, map[string]any{"index": index})
}

// TrackNavigate moves the selection. Direction is one of "next",
// "previous", "first" or "last".
func (c *Client) TrackNavigate(direction string) Envelope {
	return c.Request(tracksEndpoint+"/navigate", http.MethodPost, map[string]any{"direction": direction})
}

// TrackRename renames the current track.
func (c *Client) TrackRename(name string) Envelope {
	return c.Request(tracksEndpoint+"/rename", http.MethodPost, map[string]any{"name": name})
}

// TrackMute sets the current track's mute state.
func (c *Client) TrackMute(mute bool) Envelope {
	return c.Request(tracksEndpoint+"/mute", http.MethodPost, map[string]any{"mute": mute})
}

// TrackSolo sets the current track's solo state.
func (c *Client) TrackSolo(solo bool) Envelope {
	return c.Request(tracksEndpoint+"/solo", http.MethodPost, map[string]any{"solo": solo})
}

// TrackVolume sets the current track's volume. The controller expects a
// value in [0,1]; normalization is the caller's job.
func (c *Client) TrackVolume(volume float64) Envelope {
	return c.Request(tracksEndpoint+"/volume", http.MethodPost, map[string]any{"volume": volume})
}

// TrackPan sets the current track's pan in [-1,1].
func (c *Client) TrackPan(pan float64) Envelope {
	return c.Request(tracksEndpoint+"/pan", http.MethodPost, map[string]any{"pan": pan})
}

// TrackDevice inserts a device into the current track.
func (c *Client) TrackDevice(deviceID string, opts DeviceOptions) Envelope {
	if opts.Type == "" {
		opts.Type = "vst3"
	}
	body := map[string]any{"deviceId": deviceID, "deviceType": opts.Type}
	return c.Request(tracksEndpoint+"/device", http.MethodPost, body)
}
