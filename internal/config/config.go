// Package config loads and persists application configuration under the
// user's ~/.pegada directory.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir names under the user home directory.
const (
	appDirName      = ".pegada"
	configFileName  = "config.yaml"
	stateFileName   = "state.json"
	envHomeOverride = "PEGADA_HOME"
)

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the persisted application configuration. The state path is
// where autosaved session snapshots live.
type Config struct {
	Logging   LoggingConfig `yaml:"logging"`
	StatePath string        `yaml:"statePath"`

	configPath string
}

// New returns a Config loaded from the config file when present, otherwise
// defaults. Load errors degrade to defaults: configuration problems must
// never prevent the calculator from starting.
func New() *Config {
	cfg := &Config{
		Logging: LoggingConfig{Level: "info"},
	}

	dir, err := AppDir()
	if err != nil {
		return cfg
	}
	cfg.configPath = filepath.Join(dir, configFileName)
	cfg.StatePath = filepath.Join(dir, stateFileName)

	data, err := os.ReadFile(cfg.configPath)
	if err != nil {
		return cfg
	}
	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg
	}
	if loaded.Logging.Level != "" {
		cfg.Logging.Level = loaded.Logging.Level
	}
	cfg.Logging.File = loaded.Logging.File
	if loaded.StatePath != "" {
		cfg.StatePath = loaded.StatePath
	}
	return cfg
}

// AppDir resolves the application directory (~/.pegada, or $PEGADA_HOME).
func AppDir() (string, error) {
	if override := os.Getenv(envHomeOverride); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// EnsureAppDir creates the application directory if needed.
func EnsureAppDir() error {
	dir, err := AppDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o750)
}

// Save writes the configuration file.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not resolved")
	}
	if err := EnsureAppDir(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.configPath, data, 0o600)
}
