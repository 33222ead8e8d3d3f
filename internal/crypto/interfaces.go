package crypto

// KeyChainService protects the vault with a passphrase. It knows nothing
// about the database or the UI; its only job is to generate and guard keys.
//
// Scheme:
//
//	Salt, DEK  = GenerateSalt() + GenerateDEK()     (vault creation)
//	KEK        = GenerateKEK(passphrase, salt)      (every unlock)
//	WrappedDEK = WrapDEK(DEK, KEK)                  (stored in vault_meta)
//	Secret     = Seal(secretKey, DEK)               (stored per keypair)
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. The salt is not secret; it is
	// stored next to the wrapped DEK so that equal passphrases give
	// different KEKs.
	GenerateSalt() ([]byte, error)

	// GenerateDEK returns a random 256-bit data-encryption key. The DEK
	// encrypts every secret key in the vault and never leaves memory in the
	// clear.
	GenerateDEK() ([]byte, error)

	// GenerateKEK derives the key-encryption key from the passphrase and
	// salt with Argon2id.
	GenerateKEK(passphrase string, salt []byte) []byte

	// WrapDEK encrypts the DEK with the KEK (AES-256-GCM, nonce || ciphertext).
	WrapDEK(DEK, KEK []byte) ([]byte, error)

	// UnwrapDEK reverses WrapDEK. A wrong passphrase yields a KEK that fails
	// GCM authentication; that case is reported as ErrDecryptionFailed.
	UnwrapDEK(wrappedDEK, KEK []byte) ([]byte, error)

	// Seal encrypts plaintext with the DEK.
	Seal(plaintext, DEK []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal.
	Open(blob, DEK []byte) ([]byte, error)
}
