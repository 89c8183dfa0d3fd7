package store

import (
	"context"
	"fmt"

	"github.com/lushkiwi/UT-Marketplace/internal/config"
	"github.com/lushkiwi/UT-Marketplace/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// SessionRepository is the single-row persisted login session.
	SessionRepository SessionRepository

	// MessageCacheRepository is the local cache of server messages backing
	// offline reads.
	MessageCacheRepository MessageCacheRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Creates missing tables via [DB.BootstrapSchema].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories sharing the connection.
//
// Returns an error if the database connection cannot be established or if
// schema bootstrap fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.BootstrapSchema(ctx); err != nil {
		return nil, fmt.Errorf("schema bootstrap failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository:      NewSessionRepository(db, logger),
		MessageCacheRepository: NewMessageCacheRepository(db, logger),
	}, nil
}
