// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"dario.cat/mergo"
)

// GetClientConfig returns the terminal client configuration assembled from
// environment variables backfilled with defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if err := mergo.Merge(cfg, defaultClientConfig()); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	return cfg, cfg.validate()
}
