package settings

import (
	"encoding/json"
	"fmt"
	"os"
)

type Settings struct {
	ServerURL   string `json:"serverUrl"`
	WindowTitle string `json:"windowTitle"`
}

const settingsFilePath = "renderdeck_settings.json"

func defaults() *Settings {
	return &Settings{
		ServerURL:   "http://localhost:8080",
		WindowTitle: "Renderdeck",
	}
}

// LoadSettings loads the settings from the default settings file.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(settingsFilePath)
}

// LoadSettingsFrom loads the settings from path or returns defaults if the
// file doesn't exist.
func LoadSettingsFrom(path string) (*Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := defaults()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	return settings, nil
}

// SaveSettings saves the settings to the default settings file.
func (s *Settings) SaveSettings() error {
	return s.SaveTo(settingsFilePath)
}

// SaveTo saves the settings to path.
func (s *Settings) SaveTo(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
