package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives a benchmark run. Missing fields keep their defaults.
type Config struct {
	Iterations int      `yaml:"iterations"`
	Size       int      `yaml:"size"`
	Workers    int      `yaml:"workers"`
	Seed       int64    `yaml:"seed"`
	LogLevel   string   `yaml:"log_level"`
	Workloads  []string `yaml:"workloads"`
}

func DefaultConfig() Config {
	return Config{
		Iterations: 100,
		Size:       10000,
		Workers:    4,
		Seed:       1,
		LogLevel:   "info",
		Workloads:  workloadNames(),
	}
}

// LoadConfig decodes YAML from r over the defaults. An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfigFile reads the config at path, or returns the defaults when path is empty.
func LoadConfigFile(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	for _, name := range c.Workloads {
		if _, ok := workloads[name]; !ok {
			return fmt.Errorf("unknown workload: %s", name)
		}
	}
	return nil
}
