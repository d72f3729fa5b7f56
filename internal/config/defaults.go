// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// defaultConfig returns the server configuration used when the environment
// leaves a value unset. Every default targets local development; production
// deployments are expected to set all variables explicitly.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:     "1.0.0",
			Environment: "development",
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB: DBConfig{
				Host:            "localhost",
				Port:            "5432",
				Name:            "notesdb",
				User:            "postgres",
				Password:        "postgres",
				ConnectAttempts: 3,
			},
		},
	}
}

// defaultClientConfig returns the terminal client defaults: a server on
// localhost and a per-request timeout generous enough for slow links.
func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerAddress:  "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
	}
}
