// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Each binary validates its
// own view, so nothing is enforced at this level.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Vault.Path == "" || strings.Contains(cfg.Storage.Vault.Path, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Feed.HTTPAddress == "" || cfg.Feed.RequestTimeout <= 0 || cfg.Feed.QueueSize <= 0 {
		return ErrInvalidFeedConfigs
	}

	// argon2 needs at least 8 KiB per lane.
	if cfg.Crypto.ArgonTime == 0 || cfg.Crypto.ArgonThreads == 0 ||
		cfg.Crypto.ArgonMemoryKiB < 8*uint32(cfg.Crypto.ArgonThreads) {
		return ErrInvalidCryptoConfigs
	}

	if cfg.Log.FilePath == "" {
		return ErrInvalidLogConfigs
	}

	return nil
}

func (cfg *PeerConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
