package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// LogSettings is the decoded `logging` block that every environment must
// carry. MaxSize is the rotation threshold in KiB.
type LogSettings struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	DateFormat  string `yaml:"datefmt"`
	MaxSize     int    `yaml:"max_size"`
	BackupCount int    `yaml:"backup_count"`
	UseConsole  bool   `yaml:"use_console"`
	File        string `yaml:"file"`
}

// ErrNoLoggingSection indicates an environment without a `logging` block.
var ErrNoLoggingSection = errors.New("settings have no logging section")

// Logging decodes the environment's `logging` block into LogSettings and
// checks the required keys.
func (s Settings) Logging() (LogSettings, error) {
	raw, ok := s["logging"]
	if !ok {
		return LogSettings{}, ErrNoLoggingSection
	}

	// Round-trip through yaml to decode the untyped sub-mapping into the
	// typed struct.
	data, err := yaml.Marshal(raw)
	if err != nil {
		return LogSettings{}, fmt.Errorf("encoding logging section: %w", err)
	}
	var settings LogSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return LogSettings{}, fmt.Errorf("decoding logging section: %w", err)
	}

	if settings.Level == "" {
		return LogSettings{}, errors.New("logging section is missing required key level")
	}
	if settings.Format == "" {
		return LogSettings{}, errors.New("logging section is missing required key format")
	}
	if settings.MaxSize < 0 {
		return LogSettings{}, fmt.Errorf("logging max_size must not be negative, got %d", settings.MaxSize)
	}
	if settings.BackupCount < 0 {
		return LogSettings{}, fmt.Errorf("logging backup_count must not be negative, got %d", settings.BackupCount)
	}

	return settings, nil
}
