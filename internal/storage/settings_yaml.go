package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pocketknife/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	SoundEnabled         bool    `yaml:"sound_enabled"`
	Volume               float64 `yaml:"volume"`
	LaunchAtLogin        bool    `yaml:"launch_at_login"`
	IdlePauseEnabled     bool    `yaml:"idle_pause_enabled"`
	IdlePauseAfterMinute int     `yaml:"idle_pause_after_minutes"`
}

// LoadSettings reads application preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := resolveSettingsPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes application preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveSettingsPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		SoundEnabled:         settings.SoundEnabled,
		Volume:               settings.Volume,
		LaunchAtLogin:        settings.LaunchAtLogin,
		IdlePauseEnabled:     settings.IdlePauseEnabled,
		IdlePauseAfterMinute: int(settings.IdlePauseAfter / time.Minute),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveSettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	settings.SoundEnabled = fileData.SoundEnabled
	settings.LaunchAtLogin = fileData.LaunchAtLogin
	settings.IdlePauseEnabled = fileData.IdlePauseEnabled

	if fileData.Volume >= 0 && fileData.Volume <= 1 {
		settings.Volume = fileData.Volume
	}
	if fileData.IdlePauseAfterMinute > 0 {
		settings.IdlePauseAfter = time.Duration(fileData.IdlePauseAfterMinute) * time.Minute
	}
}
