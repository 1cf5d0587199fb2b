package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
)

// AppConfig holds the persisted GUI state
type AppConfig struct {
	// Window settings
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`

	// Last used paths
	LastInputPath string `json:"last_input_path"`
	LastOutputDir string `json:"last_output_dir"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		WindowWidth:  1100,
		WindowHeight: 800,
	}
}

// getConfigDir returns the configuration directory path
func getConfigDir() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, "Library", "Application Support")
	default: // linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, _ := os.UserHomeDir()
			configDir = filepath.Join(homeDir, ".config")
		}
	}

	appConfigDir := filepath.Join(configDir, "MinerIconPreview")
	_ = os.MkdirAll(appConfigDir, 0755)

	return appConfigDir
}

// getConfigPath returns the full path to the config file
func getConfigPath() string {
	return filepath.Join(getConfigDir(), "config.json")
}

// LoadConfig loads configuration from disk or returns defaults
func LoadConfig() *AppConfig {
	return loadConfigFrom(getConfigPath())
}

func loadConfigFrom(path string) *AppConfig {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}

	if err := json.Unmarshal(data, config); err != nil {
		return DefaultConfig()
	}

	if config.WindowWidth <= 0 || config.WindowHeight <= 0 {
		defaults := DefaultConfig()
		config.WindowWidth = defaults.WindowWidth
		config.WindowHeight = defaults.WindowHeight
	}

	return config
}

// Save persists the configuration to disk. Failures are ignored: a
// missing config only costs the saved window state.
func (c *AppConfig) Save() {
	_ = c.saveTo(getConfigPath())
}

func (c *AppConfig) saveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
