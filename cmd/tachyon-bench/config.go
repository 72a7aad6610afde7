package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file loaded via --config, supplying
// defaults that command-line flags override.
type Config struct {
	RingCapacity     int    `yaml:"ring_capacity"`
	PoolCapacity     int    `yaml:"pool_capacity"`
	Envelopes        int    `yaml:"envelopes"`
	SenderID         string `yaml:"sender_id"`
	MetricsAddr      string `yaml:"metrics_addr"`
	DisableTelemetry bool   `yaml:"disable_telemetry"`
}

func defaultConfig() Config {
	return Config{
		RingCapacity: 1024,
		PoolCapacity: 256,
		Envelopes:    10000,
		SenderID:     "tachyon-bench",
		MetricsAddr:  "",
	}
}

// loadConfig reads a YAML file at path into the defaults. A missing
// path is not an error: the caller runs on defaults plus flags alone.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
