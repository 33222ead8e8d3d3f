package store

import "errors"

// Sentinel errors returned by vault and key store methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrEmptyPassphrase is returned by OpenOrCreate when no passphrase was
	// typed. An empty passphrase would create a vault anyone can open.
	ErrEmptyPassphrase = errors.New("empty passphrase")

	// ErrWrongPassphrase is returned by OpenOrCreate when the passphrase
	// does not unwrap the stored data-encryption key.
	ErrWrongPassphrase = errors.New("wrong passphrase")

	// ErrKeypairExists is returned when the public key is already stored.
	ErrKeypairExists = errors.New("keypair already exists")

	// ErrKeypairNotFound is returned by DeleteKeypair when nothing matched.
	ErrKeypairNotFound = errors.New("keypair was not found")

	// ErrStoreClosed is returned by every KeyStore method after Close.
	ErrStoreClosed = errors.New("key store is closed")

	// ErrInvalidPagination is returned for a non-positive limit or a
	// negative offset.
	ErrInvalidPagination = errors.New("invalid pagination")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when reading a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrVaultCorrupted is returned when the vault file exists but its
	// metadata cannot be read.
	ErrVaultCorrupted = errors.New("vault metadata is corrupted")
)
