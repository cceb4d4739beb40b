package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// File names searched in the project directory, in order
const (
	JSONFileName = ".customalert.json"
	YAMLFileName = ".customalert.yaml"
)

// ErrUnsupportedFormat is returned for config files that are neither JSON nor YAML
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config represents the full demo configuration
type Config struct {
	Alert       AlertConfig     `json:"alert" yaml:"alert"`
	SystemAlert DialogConfig    `json:"systemAlert" yaml:"systemAlert"`
	Sheet       DialogConfig    `json:"sheet" yaml:"sheet"`
	Animation   AnimationConfig `json:"animation" yaml:"animation"`
	Display     DisplayConfig   `json:"display" yaml:"display"`
	Log         LogConfig       `json:"log" yaml:"log"`
}

// AlertConfig is the content of the custom alert card
type AlertConfig struct {
	Title          string `json:"title" yaml:"title"`
	Message        string `json:"message" yaml:"message"`
	PrimaryLabel   string `json:"primaryLabel" yaml:"primaryLabel"`
	SecondaryLabel string `json:"secondaryLabel" yaml:"secondaryLabel"`
}

// DialogConfig is the content of the system alert and the action sheet
type DialogConfig struct {
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
}

// AnimationConfig controls the spring used when the alert slides in and out
type AnimationConfig struct {
	Disabled   bool    `json:"disabled" yaml:"disabled"`
	DurationMs int     `json:"durationMs" yaml:"durationMs"`
	Damping    float64 `json:"damping" yaml:"damping"`
	FPS        int     `json:"fps" yaml:"fps"`
}

// DisplayConfig maps layout units onto terminal cells
type DisplayConfig struct {
	UnitsPerColumn  float64 `json:"unitsPerColumn" yaml:"unitsPerColumn"`
	UnitsPerRow     float64 `json:"unitsPerRow" yaml:"unitsPerRow"`
	BottomInsetRows int     `json:"bottomInsetRows" yaml:"bottomInsetRows"`
	ToastSeconds    int     `json:"toastSeconds" yaml:"toastSeconds"`
}

// LogConfig contains logging settings
type LogConfig struct {
	File  string `json:"file" yaml:"file"`
	Level string `json:"level" yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Alert: AlertConfig{
			Title:          "Hey there!",
			Message:        "A custom alert here! How are you doing?",
			PrimaryLabel:   "Cancel",
			SecondaryLabel: "Continue",
		},
		SystemAlert: DialogConfig{
			Title:   "Hey dude!",
			Message: "Wish to cancel this operation?",
		},
		Sheet: DialogConfig{
			Title:   "Hey there 👋",
			Message: "That the message!",
		},
		Animation: AnimationConfig{
			DurationMs: 300,
			Damping:    1.0,
			FPS:        60,
		},
		Display: DisplayConfig{
			UnitsPerColumn:  8,
			UnitsPerRow:     16,
			BottomInsetRows: 1, // status bar
			ToastSeconds:    3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a project directory with priority:
// 1. .customalert.json (comments allowed)
// 2. .customalert.yaml
// 3. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	for _, name := range []string{JSONFileName, YAMLFileName} {
		path := filepath.Join(projectPath, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	return DefaultConfig(), nil
}

// LoadFile loads a single config file, picking the format from its extension
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		cfg, err = ParseVersionedConfig(jsonc.ToJSON(data))
	case ".yaml", ".yml":
		cfg, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	cfg = MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseYAML decodes YAML into a generic map and hands it to the versioned
// JSON path so both formats share one migration chain.
func parseYAML(data []byte) (*Config, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}

	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML config: %w", err)
	}
	return ParseVersionedConfig(asJSON)
}

// SaveConfig saves configuration to the specified path with version information.
// YAML is written for .yaml/.yml paths, JSON otherwise.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(struct {
			Version int `yaml:"version"`
			Config  `yaml:",inline"`
		}{CurrentVersion, *cfg})
	default:
		data, err = MarshalVersionedConfig(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Alert config
	if cfg.Alert.Title == "" {
		cfg.Alert.Title = defaults.Alert.Title
	}
	if cfg.Alert.Message == "" {
		cfg.Alert.Message = defaults.Alert.Message
	}
	if cfg.Alert.PrimaryLabel == "" {
		cfg.Alert.PrimaryLabel = defaults.Alert.PrimaryLabel
	}
	if cfg.Alert.SecondaryLabel == "" {
		cfg.Alert.SecondaryLabel = defaults.Alert.SecondaryLabel
	}

	// Merge dialog configs
	if cfg.SystemAlert.Title == "" {
		cfg.SystemAlert.Title = defaults.SystemAlert.Title
	}
	if cfg.SystemAlert.Message == "" {
		cfg.SystemAlert.Message = defaults.SystemAlert.Message
	}
	if cfg.Sheet.Title == "" {
		cfg.Sheet.Title = defaults.Sheet.Title
	}
	if cfg.Sheet.Message == "" {
		cfg.Sheet.Message = defaults.Sheet.Message
	}

	// Merge Animation config
	if cfg.Animation.DurationMs == 0 {
		cfg.Animation.DurationMs = defaults.Animation.DurationMs
	}
	if cfg.Animation.Damping == 0 {
		cfg.Animation.Damping = defaults.Animation.Damping
	}
	if cfg.Animation.FPS == 0 {
		cfg.Animation.FPS = defaults.Animation.FPS
	}

	// Merge Display config
	if cfg.Display.UnitsPerColumn == 0 {
		cfg.Display.UnitsPerColumn = defaults.Display.UnitsPerColumn
	}
	if cfg.Display.UnitsPerRow == 0 {
		cfg.Display.UnitsPerRow = defaults.Display.UnitsPerRow
	}
	if cfg.Display.ToastSeconds == 0 {
		cfg.Display.ToastSeconds = defaults.Display.ToastSeconds
	}

	// Merge Log config
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
