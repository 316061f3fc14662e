// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package config loads the optional YAML config file spec.md §6 names:
// "PTX_CONFIG names an optional YAML config file with defaults."
// Grounded on the teacher's DefaultConfigService/viper.New wiring in
// internal/config/service.go, narrowed to this domain's flat schema and
// a single explicit file path instead of a search-path list.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/ptxhq/ptx/internal/env"
)

// Defaults holds the `defaults.*` config keys.
type Defaults struct {
	Output string `mapstructure:"output"`
	Limit  uint64 `mapstructure:"limit"`
}

// AWS holds the `aws.*` config keys. No source reads them: source.AWSSource
// is a stub.
type AWS struct {
	Profile string `mapstructure:"profile"`
	Region  string `mapstructure:"region"`
}

// GCP holds the `gcp.*` config keys. No source reads them: source.GCPSource
// is a stub.
type GCP struct {
	Project string `mapstructure:"project"`
}

// Kubernetes holds the `kubernetes.*` config keys consumed by
// source.KubernetesSource.
type Kubernetes struct {
	Namespace string `mapstructure:"namespace"`
}

// Config is the full PTX_CONFIG schema, per spec.md §6.
type Config struct {
	Defaults   Defaults          `mapstructure:"defaults"`
	AWS        AWS               `mapstructure:"aws"`
	GCP        GCP               `mapstructure:"gcp"`
	Kubernetes Kubernetes        `mapstructure:"kubernetes"`
	Aliases    map[string]string `mapstructure:"aliases"`
}

// Default returns the built-in configuration used when no PTX_CONFIG
// file is present.
func Default() *Config {
	return &Config{
		Defaults: Defaults{Output: "table", Limit: 0},
	}
}

// Load reads the config file named by the PTX_CONFIG environment
// variable through viper, with PTX-prefixed environment variables
// (PTX_DEFAULTS_OUTPUT, PTX_AWS_REGION, ...) overriding file values —
// the same SetEnvPrefix/AutomaticEnv pattern the teacher's config
// service applies to its own GZH-prefixed keys. A missing variable or
// missing file is not an error: Load returns Default() in either case,
// mirroring the teacher's read-if-exists-else-default idiom.
func Load(e env.Environment) (*Config, error) {
	cfg := Default()

	path, ok := e.LookupEnv(env.ConfigPath)
	if !ok || path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("PTX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.ReadInConfig(); err != nil {
		return cfg, nil
	}
	if err := v.Unmarshal(cfg); err != nil {
		return Default(), nil
	}

	return cfg, nil
}
