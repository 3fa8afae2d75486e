package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs from several sources and merges
// them in the order they were added. A field already set by an earlier
// source is kept.
type configBuilder struct {
	configs  []*StructuredConfig
	jsonPath string
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withJSONPath sets an explicit JSON file path that takes precedence over
// CONFIG / -c.
func (b *configBuilder) withJSONPath(path string) *configBuilder {
	b.jsonPath = path
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := b.jsonPath
	if jsonPath == "" {
		for _, cfg := range b.configs {
			if cfg.JSONFilePath != "" {
				jsonPath = cfg.JSONFilePath
				break
			}
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

func (b *configBuilder) withDefaults(defaults *StructuredConfig) *configBuilder {
	b.configs = append(b.configs, defaults)
	return b
}
