// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_HASH_KEY": "security_hash",
		"APP_VERSION":  "1.2.3",

		"STORAGE_VAULT_PATH": "/var/lib/signer/vault.db",

		"FEED_ADDRESS":         "127.0.0.1:7447",
		"FEED_REQUEST_TIMEOUT": "90s",
		"FEED_QUEUE_SIZE":      "16",

		"ADAPTER_ADDRESS":         "127.0.0.1:7448",
		"ADAPTER_REQUEST_TIMEOUT": "2m",

		"CRYPTO_ARGON_TIME":       "3",
		"CRYPTO_ARGON_MEMORY_KIB": "65536",
		"CRYPTO_ARGON_THREADS":    "2",

		"LOG_FILE_PATH": "/tmp/signer.log",
		"LOG_LEVEL":     "debug",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "security_hash", cfg.App.HashKey)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "/var/lib/signer/vault.db", cfg.Storage.Vault.Path)

	assert.Equal(t, "127.0.0.1:7447", cfg.Feed.HTTPAddress)
	assert.Equal(t, 90*time.Second, cfg.Feed.RequestTimeout)
	assert.Equal(t, 16, cfg.Feed.QueueSize)

	assert.Equal(t, "127.0.0.1:7448", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Minute, cfg.Adapter.RequestTimeout)

	assert.Equal(t, uint32(3), cfg.Crypto.ArgonTime)
	assert.Equal(t, uint32(65536), cfg.Crypto.ArgonMemoryKiB)
	assert.Equal(t, uint8(2), cfg.Crypto.ArgonThreads)

	assert.Equal(t, "/tmp/signer.log", cfg.Log.FilePath)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_HASH_KEY": "secret",
		"FEED_ADDRESS": "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.HashKey)
	assert.Empty(t, cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Feed.HTTPAddress)
	assert.Zero(t, cfg.Feed.RequestTimeout)
	assert.Zero(t, cfg.Feed.QueueSize)

	// Others untouched
	assert.Empty(t, cfg.Storage.Vault.Path)
	assert.Equal(t, Crypto{}, cfg.Crypto)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"FEED_REQUEST_TIMEOUT": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidArgonThreads(t *testing.T) {
	// uint8 overflow
	setEnvVars(t, map[string]string{
		"CRYPTO_ARGON_THREADS": "300",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "seconds", value: "30s", expected: 30 * time.Second},
		{name: "minutes", value: "5m", expected: 5 * time.Minute},
		{name: "mixed", value: "1m30s", expected: 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{"FEED_REQUEST_TIMEOUT": tt.value})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Feed.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_HASH_KEY",
		"APP_VERSION",

		"STORAGE_VAULT_PATH",

		"FEED_ADDRESS",
		"FEED_REQUEST_TIMEOUT",
		"FEED_QUEUE_SIZE",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",

		"CRYPTO_ARGON_TIME",
		"CRYPTO_ARGON_MEMORY_KIB",
		"CRYPTO_ARGON_THREADS",

		"LOG_FILE_PATH",
		"LOG_LEVEL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
