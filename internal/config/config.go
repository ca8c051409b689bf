// Package config loads gridpath settings from an optional YAML file and
// GRIDPATH_* environment variables, on top of built-in defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	Search struct {
		Algorithms []string `yaml:"algorithms"`
	} `yaml:"search"`
	Bench struct {
		Workers    int    `yaml:"workers"`
		MetricsOut string `yaml:"metrics_out"`
		// Verify enables the per-scenario distance and adjacency checks.
		Verify bool `yaml:"verify"`
	} `yaml:"bench"`
}

func defaultConfig() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Search.Algorithms = []string{"astar", "jps"}
	c.Bench.Workers = 1
	c.Bench.MetricsOut = ""
	c.Bench.Verify = true
	return c
}

// Load returns the defaults, overlaid with the file named by GRIDPATH_CONFIG
// (if any) and then with the remaining GRIDPATH_* variables. An unreadable or
// invalid config file is ignored.
func Load() Config {
	c := defaultConfig()
	if path := os.Getenv("GRIDPATH_CONFIG"); path != "" {
		if b, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(b, &c)
		}
	}
	applyEnv(&c)
	return c
}

// LoadFile is Load with an explicit config file. Unlike Load it reports a
// missing or malformed file.
func LoadFile(path string) (Config, error) {
	c := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("config: %s: %w", path, err)
	}
	applyEnv(&c)
	return c, nil
}

func applyEnv(c *Config) {
	if v := os.Getenv("GRIDPATH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("GRIDPATH_LOG_PRETTY"); v == "1" || v == "true" {
		c.Logging.Pretty = true
	}
	if v := os.Getenv("GRIDPATH_ALGORITHMS"); v != "" {
		c.Search.Algorithms = splitCSV(v)
	}
	if v := os.Getenv("GRIDPATH_WORKERS"); v != "" {
		var n int
		_, _ = fmt.Sscan(v, &n)
		if n > 0 {
			c.Bench.Workers = n
		}
	}
	if v := os.Getenv("GRIDPATH_METRICS_OUT"); v != "" {
		c.Bench.MetricsOut = v
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
