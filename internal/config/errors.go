package config

import "errors"

// Validation errors returned by [ClientConfig.validate] and
// [PeerConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid peer adapter settings
	// (for example, missing signer address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory vault path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidFeedConfigs indicates a missing feed address, timeout or
	// queue size.
	ErrInvalidFeedConfigs = errors.New("invalid feed configuration")
	// ErrInvalidCryptoConfigs indicates Argon2id parameters argon2 would
	// reject.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidLogConfigs indicates a missing log file path.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
