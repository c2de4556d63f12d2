// Package settings persists UI-level preferences: the groups a user has
// pinned and the selected theme. Settings never influence how documents
// are edited.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SavedGroup is one pinned group reference.
type SavedGroup struct {
	Name      string `json:"name"`
	Directory string `json:"directory"`
}

// Settings is the persisted application state.
type Settings struct {
	SavedGroups []SavedGroup `json:"saved_groups"`
	Theme       string       `json:"theme"` // "light" or "dark"
}

// DefaultPath returns the settings file location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "resxkit", "settings.json"), nil
}

// Load reads settings from path. A missing or unreadable file and a
// corrupt payload all yield zero-value defaults: settings are never a
// reason to fail startup.
func Load(path string) Settings {
	var s Settings
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}
	}
	return s
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
