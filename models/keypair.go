// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Keypair is a secp256k1 signing keypair held by the vault.
//
// Both fields are lowercase hex. PublicKey is the 32-byte BIP-340 x-only
// key that identifies the keypair everywhere outside the vault.
type Keypair struct {
	SecretKey string `json:"-"`
	PublicKey string `json:"public_key"`
}
