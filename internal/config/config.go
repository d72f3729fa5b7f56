// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the notes
// server. It is populated from environment variables and backfilled with
// local-development defaults by the config builder.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the reported version
	// and the runtime environment name.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string reported by the liveness
	// endpoint (e.g. "1.0.0").
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Environment names the runtime environment ("development",
	// "production"). In development, internal error detail is echoed to
	// API callers; otherwise it is only logged server-side.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`
}

// IsDevelopment reports whether the application runs in the development
// environment.
func (a App) IsDevelopment() bool {
	return a.Environment == "development"
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format (e.g. ":8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing of a single inbound
	// request (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the PostgreSQL connection settings.
	DB DBConfig `envPrefix:"DB_"`
}

// DBConfig holds connection settings for the PostgreSQL backend.
type DBConfig struct {
	// Host is the database host name.
	// Env: STORAGE_DB_HOST
	Host string `env:"HOST"`

	// Port is the database TCP port.
	// Env: STORAGE_DB_PORT
	Port string `env:"PORT"`

	// Name is the database name holding the notes table.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`

	// User is the database role used by the service.
	// Env: STORAGE_DB_USER
	User string `env:"USER"`

	// Password authenticates User. The default is for local development
	// only.
	// Env: STORAGE_DB_PASSWORD
	Password string `env:"PASSWORD"`

	// ConnectAttempts is the number of times the startup ping is retried
	// before the process gives up and exits.
	// Env: STORAGE_DB_CONNECT_ATTEMPTS
	ConnectAttempts uint `env:"CONNECT_ATTEMPTS"`
}

// DSN assembles the PostgreSQL connection string from the individual
// settings.
func (db DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		db.User, db.Password, db.Host, db.Port, db.Name,
	)
}

// ClientConfig is the configuration for the terminal client binary.
type ClientConfig struct {
	// Adapter holds the settings of the HTTP adapter talking to the notes
	// server.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
}

// ClientAdapter holds connection settings for the server adapter.
type ClientAdapter struct {
	// ServerAddress is the base URL of the notes server.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds every single API call issued by the client.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}
