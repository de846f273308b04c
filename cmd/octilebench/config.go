package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional --config YAML document: default CLI behavior a
// user benchmarking many scenario files can set once instead of repeating
// flags (§10.5).
type fileConfig struct {
	Verbose    bool `yaml:"verbose"`
	Summary    bool `yaml:"summary"`
	Dijkstra   bool `yaml:"dijkstra"`
	Astar      bool `yaml:"astar"`
	JPS        bool `yaml:"jps"`
	CrossCheck bool `yaml:"cross_check"`
}

// defaultFileConfig returns the configuration applied when no --config flag
// is given: all three algorithms, cross-check on, both reports off.
func defaultFileConfig() fileConfig {
	return fileConfig{Dijkstra: true, Astar: true, JPS: true, CrossCheck: true}
}

// loadFileConfig reads and parses the YAML file at path.
func loadFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultFileConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
