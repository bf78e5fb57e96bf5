// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-provider daemon and its operator CLI. It aggregates all
// sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: activation handle signing
	// parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local vault database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings used by the operator CLI to reach the API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Vault holds lock-lifecycle defaults and key derivation parameters.
	Vault Vault `envPrefix:"VAULT_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HandleSignKey is the HMAC key used to sign activation handles handed
	// out with credential entries. Must be kept confidential.
	// Env: APP_HANDLE_SIGN_KEY
	HandleSignKey string `env:"HANDLE_SIGN_KEY"`

	// HandleIssuer is the "iss" claim embedded in every activation handle.
	// Env: APP_HANDLE_ISSUER
	HandleIssuer string `env:"HANDLE_ISSUER"`

	// HandleTTL is how long an activation handle stays resolvable.
	// Env: APP_HANDLE_TTL
	HandleTTL time.Duration `env:"HANDLE_TTL"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite vault database.
type DB struct {
	// DSN is the SQLite database file path or URI
	// (e.g. "file:vault.db?_foreign_keys=on").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8787").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound settings of the operator CLI.
type Adapter struct {
	// HTTPAddress is the provider API address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single CLI request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Vault holds the lock-lifecycle defaults applied to accounts without
// explicit settings, plus Argon2id parameters for master-key derivation.
type Vault struct {
	// DefaultTimeout is the vault timeout for accounts with no stored value:
	// "never", "on_app_restart", or a duration such as "15m".
	// Env: VAULT_DEFAULT_TIMEOUT
	DefaultTimeout string `env:"DEFAULT_TIMEOUT"`

	// DefaultTimeoutAction is "lock" or "logout".
	// Env: VAULT_DEFAULT_TIMEOUT_ACTION
	DefaultTimeoutAction string `env:"DEFAULT_TIMEOUT_ACTION"`

	// KDFIterations, KDFMemoryKiB and KDFParallelism override the Argon2id
	// defaults used for newly provisioned accounts.
	KDFIterations  uint32 `env:"KDF_ITERATIONS"`
	KDFMemoryKiB   uint32 `env:"KDF_MEMORY_KIB"`
	KDFParallelism uint8  `env:"KDF_PARALLELISM"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the daemon configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return cfg, nil
}

// GetClientConfig loads the operator CLI configuration. Command-line flags
// are owned by the CLI itself and passed in as overrides, which win over
// environment variables and the JSON file.
func GetClientConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		with(overrides).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err = cfg.validateClient(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return cfg, nil
}
