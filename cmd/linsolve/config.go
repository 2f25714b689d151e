package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// runConfig mirrors the CLI knobs for batch runs, e.g.:
//
//	size: 2048
//	tolerance: 1e-9
//
// Pointer fields distinguish "absent" from "explicitly zero", so a config
// file may set only the keys it cares about; command-line flags always win.
type runConfig struct {
	Size      *int     `yaml:"size"`
	Tolerance *float64 `yaml:"tolerance"`
}

// loadConfig reads and parses a YAML run config.
func loadConfig(path string) (*runConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	var cfg runConfig
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	return &cfg, nil
}
