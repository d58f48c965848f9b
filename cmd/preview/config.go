package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is cmd/preview's small startup file: the host-negotiated
// values a real CLAP host would supply are hardcoded here instead.
// StartingPreset is parsed from the file, but nothing in cmd/preview
// reads it; startup state comes only from the -state flag.
type Config struct {
	SampleRate    float64 `yaml:"sample_rate"`
	StartingPreset string `yaml:"starting_preset"`
}

// defaultConfig matches the plugin's own default sample rate so a
// preview session sounds the same as a host loading the plugin cold.
func defaultConfig() Config {
	return Config{SampleRate: 44100.0, StartingPreset: ""}
}

// LoadConfig reads a YAML config file, falling back to defaultConfig
// when path is empty.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = defaultConfig().SampleRate
	}
	return cfg, nil
}
