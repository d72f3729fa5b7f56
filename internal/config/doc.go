// SPDX-License-Identifier: Apache-2.0

// Package config loads and validates the application configuration.
//
// Configuration is supplied entirely through environment variables (an
// optional .env file is loaded by the entrypoints before parsing). Values
// missing from the environment fall back to defaults suitable for local
// development only. There are no CLI flags and no configuration files.
package config
