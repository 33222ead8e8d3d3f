package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used to verify incoming signing requests.
	HashKey string
	// Version is shown in the build info overlay.
	Version string
}

// ClientVault holds the vault location.
type ClientVault struct {
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	Vault ClientVault
}

// ClientFeed holds settings of the signing-request feed.
type ClientFeed struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	QueueSize      int
}

// ClientCrypto holds Argon2id parameters for new vaults.
type ClientCrypto struct {
	ArgonTime      uint32
	ArgonMemoryKiB uint32
	ArgonThreads   uint8
}

// ClientLog holds logger settings.
type ClientLog struct {
	FilePath string
	Level    string
}

// ClientConfig is the configuration of the signer (cmd/client) assembled
// from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Feed    ClientFeed
	Crypto  ClientCrypto
	Log     ClientLog
}

// GetClientConfig builds and validates the signer config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Version: cfg.App.Version,
		},
		Storage: ClientStorage{
			Vault: ClientVault{Path: cfg.Storage.Vault.Path},
		},
		Feed: ClientFeed{
			HTTPAddress:    cfg.Feed.HTTPAddress,
			RequestTimeout: cfg.Feed.RequestTimeout,
			QueueSize:      cfg.Feed.QueueSize,
		},
		Crypto: ClientCrypto{
			ArgonTime:      cfg.Crypto.ArgonTime,
			ArgonMemoryKiB: cfg.Crypto.ArgonMemoryKiB,
			ArgonThreads:   cfg.Crypto.ArgonThreads,
		},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
			Level:    cfg.Log.Level,
		},
	}
}

// PeerAdapter holds the outbound transport settings of a peer.
type PeerAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// PeerConfig is the configuration of cmd/signreq.
type PeerConfig struct {
	HashKey string
	Adapter PeerAdapter
}

// GetPeerConfig builds and validates the peer config view.
func GetPeerConfig() (*PeerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	peerCfg := newPeerConfig(cfg)
	return peerCfg, peerCfg.validate()
}

func newPeerConfig(cfg *StructuredConfig) *PeerConfig {
	return &PeerConfig{
		HashKey: cfg.App.HashKey,
		Adapter: PeerAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
}
