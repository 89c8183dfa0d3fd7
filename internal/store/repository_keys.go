// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/models"
)

// keyRepository is the PostgreSQL-backed implementation of [KeyRepository].
// It manages the "user_keys" table: one write-once row per user holding the
// plaintext public key and the password-protected private-key blob.
type keyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewKeyRepository constructs a [KeyRepository] backed by the provided
// database connection and logger.
func NewKeyRepository(db *DB, logger *logger.Logger) KeyRepository {
	logger.Debug().Msg("creating key repository")
	return &keyRepository{
		db:     db,
		logger: logger,
	}
}

// SaveKeyRecord inserts the key record for a user.
//
// The user_keys primary key is the user ID, so a second enrollment attempt
// fails with a unique violation which is mapped to [ErrKeyRecordExists].
// Existing records are never updated: messages encrypted against the old
// public key would become permanently unreadable.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrKeyRecordExists].
//   - Any other driver-level error → wrapped in [ErrExecutingStatement].
func (r *keyRepository) SaveKeyRecord(ctx context.Context, record models.KeyRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveKeyRecord, record.UserID, record.PublicKey, record.EncryptedPrivateKey)
	if err != nil {
		log.Err(err).
			Str("func", "keyRepository.SaveKeyRecord").
			Int64("user_id", record.UserID).
			Msg("failed to insert key record")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrKeyRecordExists
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// GetKeyRecord retrieves the key record for the given user.
//
// Absence is a normal state, not an error: accounts created before key
// enrollment have no row, and callers must decide what that means for them
// (typically "cannot encrypt for this user"). A nil record with a nil error
// signals exactly that.
func (r *keyRepository) GetKeyRecord(ctx context.Context, userID int64) (*models.KeyRecord, error) {
	log := logger.FromContext(ctx)

	var record models.KeyRecord
	row := r.db.QueryRowContext(ctx, getKeyRecord, userID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "keyRepository.GetKeyRecord").
			Int64("user_id", userID).
			Msg("failed to query key record")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&record.UserID, &record.PublicKey, &record.EncryptedPrivateKey, &record.CreatedAt); err != nil {
		// no record is not an error
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).
			Str("func", "keyRepository.GetKeyRecord").
			Int64("user_id", userID).
			Msg("failed to scan key record row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &record, nil
}

// GetPublicKeys retrieves the public keys for a batch of user IDs in a single
// query. The result maps user ID → transport-encoded public key; users
// without a key record are silently omitted.
//
// An empty ID list returns an empty map without touching the database.
func (r *keyRepository) GetPublicKeys(ctx context.Context, userIDs []int64) (map[int64]string, error) {
	log := logger.FromContext(ctx)

	keys := make(map[int64]string, len(userIDs))
	if len(userIDs) == 0 {
		return keys, nil
	}

	query, args, err := buildPublicKeysQuery(ctx, userIDs)
	if err != nil {
		log.Err(err).
			Str("func", "keyRepository.GetPublicKeys").
			Msg("failed to build public keys query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "keyRepository.GetPublicKeys").
			Int("requested", len(userIDs)).
			Msg("failed to execute public keys query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userID    int64
			publicKey string
		)

		if scanErr := rows.Scan(&userID, &publicKey); scanErr != nil {
			log.Err(scanErr).
				Str("func", "keyRepository.GetPublicKeys").
				Msg("failed to scan public key row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		keys[userID] = publicKey
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "keyRepository.GetPublicKeys").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return keys, nil
}
