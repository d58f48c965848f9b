package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// SessionMetadata is the sidecar file written next to a recorded
// preview session: a stable id a developer can use to correlate a
// captured audio/state dump with the script or config that produced
// it, separate from the binary state codec itself.
type SessionMetadata struct {
	SessionID  string    `yaml:"session_id"`
	StartedAt  time.Time `yaml:"started_at"`
	ScriptPath string    `yaml:"script_path,omitempty"`
	ConfigPath string    `yaml:"config_path,omitempty"`
}

// NewSessionMetadata stamps a fresh session id for one preview run.
func NewSessionMetadata(scriptPath, configPath string) SessionMetadata {
	return SessionMetadata{
		SessionID:  uuid.New().String(),
		StartedAt:  time.Now(),
		ScriptPath: scriptPath,
		ConfigPath: configPath,
	}
}

// WriteSidecar writes the session metadata as a "<path>.session.yaml"
// file next to the recording it describes.
func (m SessionMetadata) WriteSidecar(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling session metadata: %w", err)
	}
	return os.WriteFile(path+".session.yaml", data, 0o644)
}
