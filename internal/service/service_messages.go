package service

import (
	"context"
	"fmt"

	"github.com/lushkiwi/UT-Marketplace/internal/crypto"
	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/internal/store"
	"github.com/lushkiwi/UT-Marketplace/models"
)

// messageService is the concrete implementation of MessageService. It treats
// message content as opaque text: ciphertext and legacy plaintext flow
// through the same paths, and the server never attempts decryption (it holds
// no private keys).
type messageService struct {
	messageRepository store.MessageRepository

	logger *logger.Logger
}

// NewMessageService constructs a MessageService backed by the given
// repository.
func NewMessageService(messageRepository store.MessageRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		logger:            logger,
	}
}

// SendMessage persists a message from senderID as described by the request
// and returns it with server-assigned fields. The sender identity always
// comes from the authenticated context, never from the request body.
func (m *messageService) SendMessage(ctx context.Context, senderID int64, request models.SendMessageRequest) (models.Message, error) {
	log := logger.FromContext(ctx)

	message := models.Message{
		SenderID:   senderID,
		ReceiverID: request.ReceiverID,
		ListingID:  request.ListingID,
		Content:    request.Content,
	}

	saved, err := m.messageRepository.SaveMessage(ctx, message)
	if err != nil {
		log.Err(err).
			Int64("sender_id", senderID).
			Int64("receiver_id", request.ReceiverID).
			Msg("message persistence failed")
		return models.Message{}, fmt.Errorf("message persistence failed: %w", err)
	}

	return saved, nil
}

// GetThread returns the full two-way thread between userID and
// counterpartyID, oldest first, optionally narrowed to one listing.
func (m *messageService) GetThread(ctx context.Context, userID int64, counterpartyID int64, listingID *int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	thread, err := m.messageRepository.GetThread(ctx, userID, counterpartyID, listingID)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("counterparty_id", counterpartyID).
			Msg("thread lookup failed")
		return nil, fmt.Errorf("thread lookup failed: %w", err)
	}

	return thread, nil
}

// GetInbox returns every message touching userID above the sinceID
// watermark, ordered by ID, for incremental client pulls.
func (m *messageService) GetInbox(ctx context.Context, userID int64, sinceID int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	inbox, err := m.messageRepository.GetInbox(ctx, userID, sinceID)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("since_id", sinceID).
			Msg("inbox lookup failed")
		return nil, fmt.Errorf("inbox lookup failed: %w", err)
	}

	return inbox, nil
}

// GetConversations returns per-counterparty summaries with a display-safe
// Preview: raw content when the latest message does not look encrypted,
// otherwise the fixed placeholder. LastMessage always carries the raw stored
// content so clients holding the receiver key can decrypt it locally.
func (m *messageService) GetConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	conversations, err := m.messageRepository.GetConversations(ctx, userID)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Msg("conversations lookup failed")
		return nil, fmt.Errorf("conversations lookup failed: %w", err)
	}

	for i := range conversations {
		conversations[i].Preview = crypto.ClassifyForPreview(conversations[i].LastMessage)
	}

	return conversations, nil
}

// MarkThreadRead marks the unread messages counterpartyID sent to userID as
// read and reports how many rows changed. Repeating the call is a no-op.
func (m *messageService) MarkThreadRead(ctx context.Context, userID int64, counterpartyID int64) (int64, error) {
	log := logger.FromContext(ctx)

	marked, err := m.messageRepository.MarkThreadRead(ctx, userID, counterpartyID)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("counterparty_id", counterpartyID).
			Msg("mark thread read failed")
		return 0, fmt.Errorf("mark thread read failed: %w", err)
	}

	return marked, nil
}
