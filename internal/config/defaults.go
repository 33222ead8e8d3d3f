package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	appDirName = "go-sign-keeper"

	defaultFeedAddress    = "127.0.0.1:7447"
	defaultFeedTimeout    = 2 * time.Minute
	defaultFeedQueueSize  = 64
	defaultAdapterTimeout = defaultFeedTimeout + 5*time.Second

	defaultArgonTime      = 1
	defaultArgonMemoryKiB = 64 * 1024
	defaultArgonThreads   = 4

	defaultLogLevel = "info"
)

// defaultConfig is merged last and fills whatever the other sources left
// empty.
func defaultConfig() *StructuredConfig {
	dir := dataDir()

	return &StructuredConfig{
		App: App{Version: "dev"},
		Storage: Storage{
			Vault: Vault{Path: filepath.Join(dir, "vault.db")},
		},
		Feed: Feed{
			HTTPAddress:    defaultFeedAddress,
			RequestTimeout: defaultFeedTimeout,
			QueueSize:      defaultFeedQueueSize,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultFeedAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		Crypto: Crypto{
			ArgonTime:      defaultArgonTime,
			ArgonMemoryKiB: defaultArgonMemoryKiB,
			ArgonThreads:   defaultArgonThreads,
		},
		Log: Log{
			FilePath: filepath.Join(dir, "signer.log"),
			Level:    defaultLogLevel,
		},
	}
}

// dataDir is the per-user directory holding the vault and the log.
// Falls back to the working directory when the OS does not report one.
func dataDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "."
	}
	return filepath.Join(base, appDirName)
}
