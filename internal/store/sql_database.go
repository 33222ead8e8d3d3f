package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sign-keeper/internal/logger"
	"github.com/MKhiriev/go-sign-keeper/migrations"
)

const (
	execAttempts = 3
	execBackoff  = 50 * time.Millisecond
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB)
}

// execWithRetry runs a DML statement, retrying while the classifier reports
// a transient error (SQLITE_BUSY and friends).
func (db *DB) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var lastErr error

	for attempt := 1; attempt <= execAttempts; attempt++ {
		res, err := db.ExecContext(ctx, query, args...)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if db.errorClassificator.Classify(err) != Retryable || attempt == execAttempts {
			break
		}

		db.logger.Debug().Err(err).
			Str("func", "DB.execWithRetry").
			Int("attempt", attempt).
			Msg("transient sqlite error, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(execBackoff * time.Duration(attempt)):
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, lastErr)
}
