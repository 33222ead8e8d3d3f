// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/MKhiriev/go-sign-keeper/models"
)

const (
	nsecPrefix = "nsec"
	npubPrefix = "npub"
)

// ParseSecretKey turns user input into a keypair. It accepts a 64-character
// hex secret key (any case) or an nsec1 bech32 string. Whitespace is not
// stripped. The function is pure and is called on every keystroke.
func ParseSecretKey(text string) (models.Keypair, error) {
	raw, err := decodeSecretKey(text)
	if err != nil {
		return models.Keypair{}, err
	}

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow || scalar.IsZero() {
		return models.Keypair{}, ErrInvalidSecretKey
	}

	return keypairFromBytes(raw), nil
}

// GenerateKeypair creates a fresh random keypair.
func GenerateKeypair() (models.Keypair, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return models.Keypair{}, fmt.Errorf("generate private key: %w", err)
	}
	return keypairFromBytes(priv.Serialize()), nil
}

// EncodeNpub renders a hex public key as a bech32 npub string.
func EncodeNpub(publicKey string) (string, error) {
	raw, err := hex.DecodeString(publicKey)
	if err != nil || len(raw) != 32 {
		return "", ErrInvalidPublicKey
	}

	conv, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert bits: %w", err)
	}
	return bech32.Encode(npubPrefix, conv)
}

func decodeSecretKey(text string) ([]byte, error) {
	if strings.HasPrefix(strings.ToLower(text), nsecPrefix+"1") {
		hrp, data, err := bech32.Decode(text)
		if err != nil || hrp != nsecPrefix {
			return nil, ErrInvalidSecretKey
		}
		raw, err := bech32.ConvertBits(data, 5, 8, false)
		if err != nil || len(raw) != 32 {
			return nil, ErrInvalidSecretKey
		}
		return raw, nil
	}

	if len(text) != 64 {
		return nil, ErrInvalidSecretKey
	}
	raw, err := hex.DecodeString(text)
	if err != nil {
		return nil, ErrInvalidSecretKey
	}
	return raw, nil
}

func keypairFromBytes(raw []byte) models.Keypair {
	_, pub := btcec.PrivKeyFromBytes(raw)
	return models.Keypair{
		SecretKey: hex.EncodeToString(raw),
		PublicKey: hex.EncodeToString(schnorr.SerializePubKey(pub)),
	}
}
