// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-sign-keeper. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an
// optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the request integrity
	// key and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the encrypted vault file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Feed holds settings of the inbound signing-request endpoint served by
	// the signer.
	Feed Feed `envPrefix:"FEED_"`

	// Adapter holds settings used by peers (cmd/signreq) to reach a signer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Crypto holds the Argon2id parameters used when a new vault is created.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// Vault holds the location of the encrypted key vault.
	Vault Vault `envPrefix:"VAULT_"`
}

// Vault holds file-system settings of the SQLite key vault.
type Vault struct {
	// Path is the vault database file.
	// Env: STORAGE_VAULT_PATH
	Path string `env:"PATH"`
}

// Feed holds network and queueing settings of the signing-request feed.
type Feed struct {
	// HTTPAddress is the TCP address on which the feed listens,
	// in "host:port" format (e.g. "127.0.0.1:7447").
	// Env: FEED_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds how long a peer waits for the user's decision.
	// Env: FEED_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// QueueSize is the capacity of the channel between the HTTP handlers
	// and the UI event loop.
	// Env: FEED_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// Adapter holds the signer address used by outbound peer requests.
type Adapter struct {
	// HTTPAddress is the signer feed address in "host:port" format.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the client-side timeout for one signing request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Crypto holds Argon2id parameters.
type Crypto struct {
	// Env: CRYPTO_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`
	// Env: CRYPTO_ARGON_MEMORY_KIB
	ArgonMemoryKiB uint32 `env:"ARGON_MEMORY_KIB"`
	// Env: CRYPTO_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`
}

// Log holds logger settings.
type Log struct {
	// FilePath is where the signer writes its JSON log. The terminal is
	// owned by the UI, so the signer never logs to stdout.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources. Sources are merged with [mergo.Merge], so the first
// source providing a non-zero value for a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
