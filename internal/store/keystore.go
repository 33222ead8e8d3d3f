package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-sign-keeper/internal/crypto"
	"github.com/MKhiriev/go-sign-keeper/internal/logger"
	"github.com/MKhiriev/go-sign-keeper/models"
)

type keyStore struct {
	*DB
	keychain crypto.KeyChainService
	logger   *logger.Logger

	mu     sync.RWMutex
	dek    []byte
	closed bool
}

func newKeyStore(db *DB, dek []byte, keychain crypto.KeyChainService, logger *logger.Logger) *keyStore {
	return &keyStore{
		DB:       db,
		keychain: keychain,
		logger:   logger,
		dek:      dek,
	}
}

// SaveKeypair implements [KeyStore]. The secret key is sealed with the DEK
// before it reaches the database.
func (k *keyStore) SaveKeypair(ctx context.Context, keypair models.Keypair) error {
	log := logger.FromContext(ctx)

	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.closed {
		return ErrStoreClosed
	}

	sealed, err := k.keychain.Seal([]byte(keypair.SecretKey), k.dek)
	if err != nil {
		log.Err(err).Str("func", "keyStore.SaveKeypair").Msg("failed to seal secret key")
		return fmt.Errorf("seal secret key: %w", err)
	}

	query, args, err := buildInsertKeypairQuery(keypair.PublicKey, sealed)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = k.execWithRetry(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrKeypairExists
		}
		log.Err(err).
			Str("func", "keyStore.SaveKeypair").
			Str("public_key", keypair.PublicKey).
			Msg("failed to insert keypair")
		return fmt.Errorf("failed to save keypair: %w", err)
	}

	return nil
}

// ListPublicKeys implements [KeyStore].
func (k *keyStore) ListPublicKeys(ctx context.Context, limit, offset int) ([]string, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 || offset < 0 {
		return nil, ErrInvalidPagination
	}

	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.closed {
		return nil, ErrStoreClosed
	}

	query, args, err := buildListPublicKeysQuery(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := k.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "keyStore.ListPublicKeys").Msg("failed to query public keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0, limit)
	for rows.Next() {
		var pk string
		if err := rows.Scan(&pk); err != nil {
			log.Err(err).Str("func", "keyStore.ListPublicKeys").Msg("failed to scan public key")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		keys = append(keys, pk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return keys, nil
}

// DeleteKeypair implements [KeyStore].
func (k *keyStore) DeleteKeypair(ctx context.Context, publicKey string) error {
	log := logger.FromContext(ctx)

	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.closed {
		return ErrStoreClosed
	}

	query, args, err := buildDeleteKeypairQuery(publicKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := k.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "keyStore.DeleteKeypair").Str("public_key", publicKey).Msg("failed to delete keypair")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrKeypairNotFound
	}

	return nil
}

// Close implements [KeyStore]. The DEK is wiped from memory. Closing twice
// is a no-op.
func (k *keyStore) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return nil
	}
	k.closed = true

	clear(k.dek)
	k.dek = nil

	return k.DB.Close()
}
