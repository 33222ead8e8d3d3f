// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// ArgonParams tunes Argon2id. Zero fields fall back to [DefaultArgonParams].
type ArgonParams struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultArgonParams are the OWASP (2024) recommendations: one pass over
// 64 MiB with four lanes.
var DefaultArgonParams = ArgonParams{
	Time:      1,
	MemoryKiB: 64 * 1024,
	Threads:   4,
}

const (
	saltLen = 16
	keyLen  = 32
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] using params for the
// Argon2id key derivation.
func NewKeyChainService(params ArgonParams) KeyChainService {
	if params.Time == 0 {
		params.Time = DefaultArgonParams.Time
	}
	if params.MemoryKiB == 0 {
		params.MemoryKiB = DefaultArgonParams.MemoryKiB
	}
	if params.Threads == 0 {
		params.Threads = DefaultArgonParams.Threads
	}

	return &keyChainService{
		argonTime:    params.Time,
		argonMemory:  params.MemoryKiB,
		argonThreads: params.Threads,
		argonKeyLen:  keyLen,
	}
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	return randomBytes(saltLen)
}

// GenerateDEK implements [KeyChainService].
func (k *keyChainService) GenerateDEK() ([]byte, error) {
	return randomBytes(keyLen)
}

// GenerateKEK implements [KeyChainService]. The result exists only in memory.
func (k *keyChainService) GenerateKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// WrapDEK implements [KeyChainService].
func (k *keyChainService) WrapDEK(DEK, KEK []byte) ([]byte, error) {
	blob, err := seal(DEK, KEK)
	if err != nil {
		return nil, fmt.Errorf("wrap DEK: %w", err)
	}
	return blob, nil
}

// UnwrapDEK implements [KeyChainService].
func (k *keyChainService) UnwrapDEK(wrappedDEK, KEK []byte) ([]byte, error) {
	dek, err := open(wrappedDEK, KEK)
	if err != nil {
		return nil, fmt.Errorf("unwrap DEK: %w", err)
	}
	return dek, nil
}

// Seal implements [KeyChainService].
func (k *keyChainService) Seal(plaintext, DEK []byte) ([]byte, error) {
	return seal(plaintext, DEK)
}

// Open implements [KeyChainService].
func (k *keyChainService) Open(blob, DEK []byte) ([]byte, error) {
	return open(blob, DEK)
}

// seal encrypts plaintext with AES-256-GCM. A random 12-byte nonce is
// prepended: blob = nonce || ciphertext.
func seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

func open(blob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
