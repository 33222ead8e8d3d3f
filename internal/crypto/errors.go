// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidSecretKey is returned when a string is neither a 64-character
	// hex secret key nor an nsec1 bech32 key, or when the decoded scalar is
	// outside [1, n-1] of secp256k1.
	ErrInvalidSecretKey = errors.New("invalid secret key")

	// ErrInvalidPublicKey is returned when a public key is not 32 bytes of hex.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrDecryptionFailed is returned when AES-GCM authentication fails,
	// which for the wrapped DEK almost always means a wrong passphrase.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrCiphertextTooShort is returned when a blob is shorter than the nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)
