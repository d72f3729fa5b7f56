// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Validation errors returned by the config builders when the merged
// configuration is unusable. Matched with [errors.Is].
var (
	// ErrInvalidServerConfigs is returned when the HTTP listen address is
	// empty after merging env values and defaults.
	ErrInvalidServerConfigs = errors.New("invalid server configs")

	// ErrInvalidStorageConfigs is returned when any mandatory database
	// connection setting is missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidAdapterConfigs is returned when the client adapter has no
	// server address or no request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")
)
