package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file and fills unset fields with defaults.
// A relative graph or output.dot path is resolved against the directory
// of the config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyDefaults(&cfg)

	base := filepath.Dir(path)
	cfg.Graph = resolvePath(base, cfg.Graph)
	if cfg.Output.DOT != "" {
		cfg.Output.DOT = resolvePath(base, cfg.Output.DOT)
	}

	return &cfg, nil
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(base, p)
}
