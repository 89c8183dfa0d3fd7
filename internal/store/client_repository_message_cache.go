package store

import (
	"context"
	"fmt"

	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/models"
)

// messageCacheRepository is the SQLite-backed implementation of
// [MessageCacheRepository]. Content is written exactly as the server returned
// it; a cached row can change only its read flag on re-pull.
type messageCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewMessageCacheRepository(db *DB, logger *logger.Logger) MessageCacheRepository {
	return &messageCacheRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertMessages inserts or refreshes cached messages keyed by server ID.
// A single message goes straight through; batches run inside one transaction
// with a prepared statement.
func (m *messageCacheRepository) UpsertMessages(ctx context.Context, messages ...models.Message) error {
	log := logger.FromContext(ctx)

	if len(messages) == 0 {
		return nil
	}

	if len(messages) == 1 {
		message := messages[0]
		_, err := m.DB.ExecContext(ctx, upsertCachedMessage,
			message.ID,
			message.SenderID,
			message.ReceiverID,
			message.ListingID,
			message.Content,
			message.IsRead,
			message.CreatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "messageCacheRepository.UpsertMessages").
				Int64("message_id", message.ID).
				Msg("failed to upsert cached message")
			return fmt.Errorf("failed to cache message (id=%d): %w", message.ID, err)
		}

		return nil
	}

	// begin transaction
	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "messageCacheRepository.UpsertMessages").
			Msg("error during opening transaction")
		return fmt.Errorf("error during opening transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertCachedMessage)
	if err != nil {
		log.Err(err).
			Str("func", "messageCacheRepository.UpsertMessages").
			Msg("error preparing upsert statement")
		return fmt.Errorf("error preparing upsert statement: %w", err)
	}
	defer stmt.Close()

	for _, message := range messages {
		_, execErr := stmt.ExecContext(ctx,
			message.ID,
			message.SenderID,
			message.ReceiverID,
			message.ListingID,
			message.Content,
			message.IsRead,
			message.CreatedAt,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "messageCacheRepository.UpsertMessages").
				Int64("message_id", message.ID).
				Msg("failed to upsert cached message in batch")
			return fmt.Errorf("failed to cache message (id=%d): %w", message.ID, execErr)
		}
	}

	return tx.Commit()
}

// GetThread returns the cached two-way thread between userID and
// counterpartyID, oldest first. Returns an empty slice when nothing is
// cached for the pair.
func (m *messageCacheRepository) GetThread(ctx context.Context, userID int64, counterpartyID int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := m.DB.QueryContext(ctx, getCachedThread, userID, counterpartyID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "messageCacheRepository.GetThread").
			Int64("user_id", userID).
			Int64("counterparty_id", counterpartyID).
			Msg("failed to execute cached thread query")
		return nil, fmt.Errorf("failed to query cached thread: %w", queryErr)
	}
	defer rows.Close()

	thread := make([]models.Message, 0, 50)

	for rows.Next() {
		var message models.Message

		scanErr := rows.Scan(
			&message.ID,
			&message.SenderID,
			&message.ReceiverID,
			&message.ListingID,
			&message.Content,
			&message.IsRead,
			&message.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "messageCacheRepository.GetThread").
				Msg("failed to scan cached message row")
			return nil, fmt.Errorf("failed to scan cached message row: %w", scanErr)
		}

		thread = append(thread, message)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "messageCacheRepository.GetThread").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error occurred during rows iteration: %w", rowsErr)
	}

	return thread, nil
}

// GetConversations builds per-counterparty summaries from the local cache,
// newest activity first. Content comes back raw; classifying it for preview
// is the caller's concern.
func (m *messageCacheRepository) GetConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := m.DB.QueryContext(ctx, getCachedConversations, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "messageCacheRepository.GetConversations").
			Int64("user_id", userID).
			Msg("failed to execute cached conversations query")
		return nil, fmt.Errorf("failed to query cached conversations: %w", queryErr)
	}
	defer rows.Close()

	conversations := make([]models.Conversation, 0, 50)

	for rows.Next() {
		var conversation models.Conversation

		scanErr := rows.Scan(
			&conversation.CounterpartyID,
			&conversation.CounterpartyName,
			&conversation.ListingID,
			&conversation.LastMessage,
			&conversation.LastMessageAt,
			&conversation.LastSenderID,
			&conversation.UnreadCount,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "messageCacheRepository.GetConversations").
				Msg("failed to scan cached conversation row")
			return nil, fmt.Errorf("failed to scan cached conversation row: %w", scanErr)
		}

		conversations = append(conversations, conversation)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "messageCacheRepository.GetConversations").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error occurred during rows iteration: %w", rowsErr)
	}

	return conversations, nil
}

// MarkThreadRead flips the read flag on cached messages from counterpartyID
// addressed to userID, matching what the server does on its side.
func (m *messageCacheRepository) MarkThreadRead(ctx context.Context, userID int64, counterpartyID int64) error {
	log := logger.FromContext(ctx)

	_, err := m.DB.ExecContext(ctx, markCachedThreadRead, userID, counterpartyID)
	if err != nil {
		log.Err(err).
			Str("func", "messageCacheRepository.MarkThreadRead").
			Int64("user_id", userID).
			Int64("counterparty_id", counterpartyID).
			Msg("failed to mark cached thread read")
		return fmt.Errorf("failed to mark cached thread read: %w", err)
	}

	return nil
}

// SaveContacts refreshes cached counterparty display names.
func (m *messageCacheRepository) SaveContacts(ctx context.Context, contacts ...models.Contact) error {
	log := logger.FromContext(ctx)

	for _, contact := range contacts {
		_, err := m.DB.ExecContext(ctx, saveContact, contact.UserID, contact.Name)
		if err != nil {
			log.Err(err).
				Str("func", "messageCacheRepository.SaveContacts").
				Int64("user_id", contact.UserID).
				Msg("failed to save cached contact")
			return fmt.Errorf("failed to save cached contact (user_id=%d): %w", contact.UserID, err)
		}
	}

	return nil
}

// Clear wipes cached messages and contacts. Called on logout; the session row
// is deleted separately by [SessionRepository.DeleteSession].
func (m *messageCacheRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := m.DB.ExecContext(ctx, clearMessageCache)
	if err != nil {
		log.Err(err).
			Str("func", "messageCacheRepository.Clear").
			Msg("failed to clear message cache")
		return fmt.Errorf("failed to clear message cache: %w", err)
	}

	return nil
}
