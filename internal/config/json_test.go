package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "hash_key": "security_hash", "version": "1.0.0" },
		"storage": { "vault": { "path": "/var/lib/signer/vault.db" } },
		"feed": {
			"http_address": "127.0.0.1:7447",
			"request_timeout": "45s",
			"queue_size": 8
		},
		"adapter": { "http_address": "127.0.0.1:7447", "request_timeout": "1m" },
		"crypto": { "argon_time": 2, "argon_memory_kib": 32768, "argon_threads": 2 },
		"log": { "file_path": "/tmp/signer.log", "level": "warn" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "security_hash", cfg.App.HashKey)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "/var/lib/signer/vault.db", cfg.Storage.Vault.Path)
	assert.Equal(t, "127.0.0.1:7447", cfg.Feed.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Feed.RequestTimeout)
	assert.Equal(t, 8, cfg.Feed.QueueSize)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, Crypto{ArgonTime: 2, ArgonMemoryKiB: 32768, ArgonThreads: 2}, cfg.Crypto)
	assert.Equal(t, Log{FilePath: "/tmp/signer.log", Level: "warn"}, cfg.Log)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"feed": {"request_timeout": "not-a-duration"}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"feed": {"request_timeout": 1000000000}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Feed.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
