// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates partial [AppConfig] values from different
// sources and merges them into a single configuration on [configBuilder.build].
//
// The builder follows the fluent-interface pattern: each with* method
// appends a config source and returns the same *configBuilder so calls can
// be chained. Any error encountered during a with* step is stored in err
// and causes build to fail-fast without attempting to merge.
type configBuilder struct {
	configs []*AppConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*AppConfig, 0, 3)}
}

// withEnv parses environment variables into an [AppConfig] via [parseEnv]
// and appends the result to the builder.
func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &AppConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, envCfg)
	return b
}

// withFlags appends override, a config already populated from command-line
// flags by the caller (keychainctl binds these with cobra/pflag rather
// than this package parsing os.Args itself, so a single binary never
// registers two competing flag sets). A nil override is a no-op.
func (b *configBuilder) withFlags(override *AppConfig) *configBuilder {
	if override == nil {
		return b
	}
	b.configs = append(b.configs, override)
	return b
}

// withJSON looks for a non-empty JSONFilePath field across all configs
// accumulated so far and, if found, parses that JSON file via [parseJSON],
// appending the result. When multiple sources specify a path, the last
// non-empty value wins. If no path is found, withJSON is a no-op.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)
	return b
}

// build merges all accumulated partial configurations into a single
// [AppConfig] and validates the result. Merge order follows append order:
// each subsequent source overrides the fields it sets on the accumulator
// (mergo.WithOverride), so later sources win — env, then flags, then the
// JSON file, per [Load]'s append order.
func (b *configBuilder) build() (*AppConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, b.err)
	}

	cfg := &AppConfig{}
	for _, c := range b.configs {
		if err := mergo.Merge(cfg, c, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("%w: merging configs: %v", ErrInvalidConfig, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Load assembles an [AppConfig] from environment variables, the supplied
// flagOverride (may be nil), and an optional JSON file, in that priority
// order. This is the entry point keychainctl uses at startup.
func Load(flagOverride *AppConfig) (*AppConfig, error) {
	return newConfigBuilder().withEnv().withFlags(flagOverride).withJSON().build()
}
