package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. The session table is constrained to one row; saving
// simply replaces whatever was there.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.ClientSession) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, saveSession,
		session.UserID,
		session.Login,
		session.Name,
		session.Token,
		session.LastMessageID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to persist session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession returns the persisted session, or nil when nobody is logged in.
func (s *sessionRepository) GetSession(ctx context.Context) (*models.ClientSession, error) {
	log := logger.FromContext(ctx)

	var session models.ClientSession
	row := s.DB.QueryRowContext(ctx, getSession)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to query session")
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	scanErr := row.Scan(
		&session.UserID,
		&session.Login,
		&session.Name,
		&session.Token,
		&session.LastMessageID,
		&session.UpdatedAt,
	)
	if scanErr != nil {
		// no session is not an error
		if errors.Is(scanErr, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(scanErr).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to scan session row")
		return nil, fmt.Errorf("failed to scan session row: %w", scanErr)
	}

	return &session, nil
}

// UpdateWatermark advances the inbox watermark. Passing a value at or below
// the stored one is a no-op, so late or overlapping refresh sweeps cannot
// rewind it.
func (s *sessionRepository) UpdateWatermark(ctx context.Context, lastMessageID int64) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, updateWatermark, lastMessageID)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.UpdateWatermark").
			Int64("last_message_id", lastMessageID).
			Msg("failed to update watermark")
		return fmt.Errorf("failed to update watermark: %w", err)
	}

	return nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, deleteSession)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
