package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/models"
)

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository] working against the "messages" table.
//
// Message content is opaque here: whether a row holds plaintext or transport
// ciphertext is decided (and decidable) only on clients holding the receiver
// private key.
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// SaveMessage persists a new message and returns it with server-assigned
// fields (ID, IsRead, CreatedAt).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503), i.e. unknown sender or
//     receiver → [ErrMessageNotSaved].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped in [ErrScanningRow].
func (r *messageRepository) SaveMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveMessage, message.SenderID, message.ReceiverID, message.ListingID, message.Content)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "messageRepository.SaveMessage").
			Int64("sender_id", message.SenderID).
			Int64("receiver_id", message.ReceiverID).
			Msg("failed to insert message")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Message{}, ErrMessageNotSaved
		default:
			return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var saved models.Message
	if err := row.Scan(&saved.ID, &saved.SenderID, &saved.ReceiverID, &saved.ListingID, &saved.Content, &saved.IsRead, &saved.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "messageRepository.SaveMessage").
			Msg("failed to scan saved message")
		return models.Message{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// GetThread retrieves the full message thread between userID and
// counterpartyID, both directions, ordered oldest first. A non-nil listingID
// narrows the thread to a single listing.
//
// Returns an empty slice when the two users have never exchanged messages.
func (r *messageRepository) GetThread(ctx context.Context, userID int64, counterpartyID int64, listingID *int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildThreadQuery(ctx, userID, counterpartyID, listingID)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.GetThread").
			Msg("failed to build thread query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "messageRepository.GetThread").
			Int64("user_id", userID).
			Int64("counterparty_id", counterpartyID).
			Msg("failed to execute thread query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
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
				Str("func", "messageRepository.GetThread").
				Msg("failed to scan message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		thread = append(thread, message)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "messageRepository.GetThread").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return thread, nil
}

// GetInbox retrieves every message touching the given user (sent or
// received) with an ID greater than sinceID, ordered by ID. Passing zero
// returns the complete history; clients use the highest ID they have seen as
// the watermark for incremental pulls.
func (r *messageRepository) GetInbox(ctx context.Context, userID int64, sinceID int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, getInbox, userID, sinceID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "messageRepository.GetInbox").
			Int64("user_id", userID).
			Int64("since_id", sinceID).
			Msg("failed to execute inbox query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	inbox := make([]models.Message, 0, 50)

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
				Str("func", "messageRepository.GetInbox").
				Msg("failed to scan message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		inbox = append(inbox, message)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "messageRepository.GetInbox").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return inbox, nil
}

// GetConversations retrieves one summary row per counterparty the user has
// exchanged messages with: the latest message of the pair (raw content, the
// service layer decides how to preview it), its timestamp and author, and
// the number of unread messages addressed to the user.
//
// Conversations are ordered by latest activity, newest first. Returns an
// empty slice for users with no message history.
func (r *messageRepository) GetConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, getConversations, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "messageRepository.GetConversations").
			Int64("user_id", userID).
			Msg("failed to execute conversations query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
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
				Str("func", "messageRepository.GetConversations").
				Msg("failed to scan conversation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		conversations = append(conversations, conversation)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "messageRepository.GetConversations").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return conversations, nil
}

// MarkThreadRead marks every unread message sent by counterpartyID to userID
// as read and reports how many rows changed.
//
// Only the receiving side of the thread is touched: a user can never mark
// messages they sent themselves, and repeating the call is a no-op returning
// zero.
func (r *messageRepository) MarkThreadRead(ctx context.Context, userID int64, counterpartyID int64) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, markThreadRead, userID, counterpartyID)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.MarkThreadRead").
			Int64("user_id", userID).
			Int64("counterparty_id", counterpartyID).
			Msg("failed to mark thread read")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	marked, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.MarkThreadRead").
			Msg("failed to read affected rows count")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return marked, nil
}
