package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// snapshotVersion is the schema version of the config snapshot document.
const snapshotVersion = "0.2.0"

const (
	clientName     = "roger"
	controllerName = "jeannie"
)

// Snapshot is the write-only config document advertising this client to the
// Jeannie controller. It is never read back by roger.
type Snapshot struct {
	Version     string             `toml:"version"`
	LastUpdated string             `toml:"lastUpdated"`
	Roger       SnapshotClient     `toml:"roger"`
	Controller  SnapshotController `toml:"controller"`
}

// SnapshotClient identifies the client that wrote the snapshot.
type SnapshotClient struct {
	Name      string `toml:"name"`
	Version   string `toml:"version"`
	Timestamp string `toml:"timestamp"`
}

// SnapshotController is the fixed controller descriptor.
type SnapshotController struct {
	Name    string `toml:"name"`
	Enabled bool   `toml:"enabled"`
}

// NewSnapshot builds a snapshot describing the client version at time now.
func NewSnapshot(version string, now time.Time) Snapshot {
	ts := now.Format(time.RFC3339)
	return Snapshot{
		Version:     snapshotVersion,
		LastUpdated: ts,
		Roger: SnapshotClient{
			Name:      clientName,
			Version:   version,
			Timestamp: ts,
		},
		Controller: SnapshotController{
			Name:    controllerName,
			Enabled: true,
		},
	}
}

// DefaultSnapshotPath returns the snapshot location under the user's
// configuration directory.
func DefaultSnapshotPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, controllerName, "config.toml"), nil
}

// WriteSnapshot serializes the snapshot as TOML to path, creating parent
// directories as needed.
func WriteSnapshot(path string, snap Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	b, err := toml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
