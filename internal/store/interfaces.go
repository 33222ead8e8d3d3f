package store

import (
	"context"

	"github.com/MKhiriev/go-sign-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Vault is the on-disk encrypted key store before it is unlocked.
type Vault interface {
	// Exists reports whether a vault file is present.
	Exists() bool
	// OpenOrCreate unlocks the vault with passphrase, creating it first when
	// it does not exist yet. A passphrase that does not match the stored
	// one yields ErrWrongPassphrase.
	OpenOrCreate(ctx context.Context, passphrase string) (KeyStore, error)
	// Delete irreversibly removes the vault. Deleting a missing vault is
	// not an error.
	Delete() error
}

// KeyStore is an unlocked vault handle. Implementations are safe for
// concurrent use.
type KeyStore interface {
	SaveKeypair(ctx context.Context, keypair models.Keypair) error
	ListPublicKeys(ctx context.Context, limit, offset int) ([]string, error)
	DeleteKeypair(ctx context.Context, publicKey string) error
	Close() error
}
