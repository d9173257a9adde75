// Package config loads lab configuration documents. The decoder is picked
// by the file extension: JSON, YAML, or TOML.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"labctl/internal/domain"
)

//go:embed default-config.json
var defaultConfig []byte

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader decodes configuration files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes the file at path, selecting a decoder by extension.
func (l *Loader) Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from CLI arguments
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault decodes the embedded default configuration.
func (l *Loader) LoadDefault() (domain.Config, error) {
	cfg, err := decode(defaultConfig, ".json")
	if err != nil {
		return nil, fmt.Errorf("load default config: %w", err)
	}
	return cfg, nil
}

// DefaultConfigText returns the embedded default configuration as text.
func DefaultConfigText() string {
	return string(defaultConfig)
}

func decode(data []byte, ext string) (domain.Config, error) {
	var cfg domain.Config
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedConfigFormat, ext)
	}
	if cfg == nil {
		cfg = domain.Config{}
	}
	return cfg, nil
}
