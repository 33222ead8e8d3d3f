// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-sign-keeper/internal/config"
	"github.com/MKhiriev/go-sign-keeper/internal/crypto"
	"github.com/MKhiriev/go-sign-keeper/internal/logger"
)

// vaultMeta is the single vault_meta row.
type vaultMeta struct {
	Salt       []byte
	WrappedDEK []byte
	Params     crypto.ArgonParams
}

type sqliteVault struct {
	path   string
	params crypto.ArgonParams
	logger *logger.Logger
}

// NewVault returns a [Vault] backed by the SQLite file at cfg.Path. New
// vaults derive their key with the Argon2id parameters in cryptoCfg;
// existing vaults keep the parameters they were created with.
func NewVault(cfg config.ClientVault, cryptoCfg config.ClientCrypto, log *logger.Logger) Vault {
	return &sqliteVault{
		path: cfg.Path,
		params: crypto.ArgonParams{
			Time:      cryptoCfg.ArgonTime,
			MemoryKiB: cryptoCfg.ArgonMemoryKiB,
			Threads:   cryptoCfg.ArgonThreads,
		},
		logger: log,
	}
}

// Exists implements [Vault].
func (v *sqliteVault) Exists() bool {
	_, err := os.Stat(v.path)
	return err == nil
}

// Delete implements [Vault].
func (v *sqliteVault) Delete() error {
	for _, p := range []string{v.path, v.path + "-journal", v.path + "-wal", v.path + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			v.logger.Err(err).Str("func", "sqliteVault.Delete").Str("path", p).Msg("failed to remove vault file")
			return fmt.Errorf("delete vault: %w", err)
		}
	}

	v.logger.Info().Str("func", "sqliteVault.Delete").Msg("vault deleted")
	return nil
}

// OpenOrCreate implements [Vault].
func (v *sqliteVault) OpenOrCreate(ctx context.Context, passphrase string) (KeyStore, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	log := v.logger
	existed := v.Exists()

	db, err := NewConnectSQLite(ctx, v.path, log)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}

	dek, err := v.unlock(ctx, db, passphrase)
	if err != nil {
		_ = db.Close()
		if !existed {
			// do not leave a half-initialised vault behind
			_ = v.Delete()
		}
		return nil, err
	}

	log.Info().Str("func", "sqliteVault.OpenOrCreate").Bool("created", !existed).Msg("vault unlocked")

	return newKeyStore(db, dek, crypto.NewKeyChainService(v.params), log), nil
}

// unlock migrates the schema and returns the DEK, initialising vault_meta
// on first use.
func (v *sqliteVault) unlock(ctx context.Context, db *DB, passphrase string) ([]byte, error) {
	if err := db.Migrate(ctx); err != nil {
		v.logger.Err(err).Str("func", "sqliteVault.unlock").Msg("vault migration failed")
		return nil, fmt.Errorf("migrate vault: %w", err)
	}

	meta, err := readVaultMeta(ctx, db)
	if errors.Is(err, sql.ErrNoRows) {
		return v.initVault(ctx, db, passphrase)
	}
	if err != nil {
		v.logger.Err(err).Str("func", "sqliteVault.unlock").Msg("failed to read vault metadata")
		return nil, fmt.Errorf("%w: %w", ErrVaultCorrupted, err)
	}

	keychain := crypto.NewKeyChainService(meta.Params)
	dek, err := keychain.UnwrapDEK(meta.WrappedDEK, keychain.GenerateKEK(passphrase, meta.Salt))
	if errors.Is(err, crypto.ErrDecryptionFailed) {
		v.logger.Warn().Str("func", "sqliteVault.unlock").Msg("wrong passphrase")
		return nil, ErrWrongPassphrase
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVaultCorrupted, err)
	}

	return dek, nil
}

func (v *sqliteVault) initVault(ctx context.Context, db *DB, passphrase string) ([]byte, error) {
	keychain := crypto.NewKeyChainService(v.params)

	salt, err := keychain.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	dek, err := keychain.GenerateDEK()
	if err != nil {
		return nil, fmt.Errorf("generate DEK: %w", err)
	}
	wrapped, err := keychain.WrapDEK(dek, keychain.GenerateKEK(passphrase, salt))
	if err != nil {
		return nil, err
	}

	query, args, err := buildInsertVaultMetaQuery(vaultMeta{Salt: salt, WrappedDEK: wrapped, Params: v.params})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := db.execWithRetry(ctx, query, args...); err != nil {
		v.logger.Err(err).Str("func", "sqliteVault.initVault").Msg("failed to store vault metadata")
		return nil, err
	}

	return dek, nil
}

func readVaultMeta(ctx context.Context, db *DB) (vaultMeta, error) {
	query, args, err := buildSelectVaultMetaQuery()
	if err != nil {
		return vaultMeta{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var meta vaultMeta
	err = db.QueryRowContext(ctx, query, args...).Scan(
		&meta.Salt,
		&meta.WrappedDEK,
		&meta.Params.Time,
		&meta.Params.MemoryKiB,
		&meta.Params.Threads,
	)
	if err != nil {
		return vaultMeta{}, err
	}

	return meta, nil
}
