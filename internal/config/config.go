package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lunit-heesungyang/scss-color-similarity/internal/similarity"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir      = ".config/scss-color-similarity"
	userConfigFileName = "config.yaml"
	projectConfigFile  = ".scss-color-similarity.yaml"
)

// Report formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the resolved settings for a run
type Config struct {
	Threshold float64
	Format    string
	LogLevel  string
}

// fileConfig is the on-disk shape. Pointers distinguish "unset" from zero values.
type fileConfig struct {
	Threshold *float64 `yaml:"threshold"`
	Format    string   `yaml:"format"`
	LogLevel  string   `yaml:"log_level"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Threshold: similarity.DefaultThreshold,
		Format:    FormatText,
		LogLevel:  "info",
	}
}

// Load layers defaults, the user file, the project file and finally
// explicitPath (if non-empty). Missing user and project files are skipped;
// a missing explicit file is an error. The result is not validated, so that
// command-line flags can still replace a bad value; call Validate afterwards.
func Load(explicitPath string) (Config, error) {
	cfg := Default()

	for _, pathFn := range []func() (string, error){getUserConfigPath, getProjectConfigPath} {
		path, err := pathFn()
		if err != nil {
			// optional layer
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("loading config from %s: %w", path, err)
		}
		cfg = merge(cfg, overlay)
	}

	if explicitPath != "" {
		overlay, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return Config{}, fmt.Errorf("loading config from %s: %w", explicitPath, err)
		}
		cfg = merge(cfg, overlay)
	}

	return cfg, nil
}

// Validate checks fields that have a closed set of values
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", c.Format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, userConfigFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigFile), nil
}

func loadConfigFromFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, err
	}
	return fc, nil
}

// merge applies every field that is set in overlay on top of base
func merge(base Config, overlay fileConfig) Config {
	merged := base
	if overlay.Threshold != nil {
		merged.Threshold = *overlay.Threshold
	}
	if overlay.Format != "" {
		merged.Format = overlay.Format
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	return merged
}
