package service

import (
	"context"
	"fmt"

	"github.com/lushkiwi/UT-Marketplace/internal/validators"
	"github.com/lushkiwi/UT-Marketplace/models"
)

// MessageValidationService decorates a MessageService with input validation.
// Invalid requests are rejected before reaching the persistence layer, wrapped
// in ErrInvalidDataProvided so handlers can map them uniformly.
type MessageValidationService struct {
	inner     MessageService
	validator validators.Validator
}

func NewMessageValidationService() MessageServiceWrapper {
	return &MessageValidationService{
		validator: validators.NewMessagingValidator(),
	}
}

func (v *MessageValidationService) SendMessage(ctx context.Context, senderID int64, request models.SendMessageRequest) (models.Message, error) {
	message := models.Message{
		SenderID:   senderID,
		ReceiverID: request.ReceiverID,
		ListingID:  request.ListingID,
		Content:    request.Content,
	}

	if err := v.validator.Validate(ctx, message); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SendMessage(ctx, senderID, request)
}

func (v *MessageValidationService) GetThread(ctx context.Context, userID int64, counterpartyID int64, listingID *int64) ([]models.Message, error) {
	if counterpartyID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidCounterparty)
	}

	return v.inner.GetThread(ctx, userID, counterpartyID, listingID)
}

func (v *MessageValidationService) GetInbox(ctx context.Context, userID int64, sinceID int64) ([]models.Message, error) {
	if sinceID < 0 {
		sinceID = 0
	}

	return v.inner.GetInbox(ctx, userID, sinceID)
}

func (v *MessageValidationService) GetConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	return v.inner.GetConversations(ctx, userID)
}

func (v *MessageValidationService) MarkThreadRead(ctx context.Context, userID int64, counterpartyID int64) (int64, error) {
	if err := v.validator.Validate(ctx, models.MarkReadRequest{CounterpartyID: counterpartyID}); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.MarkThreadRead(ctx, userID, counterpartyID)
}

func (v *MessageValidationService) Wrap(wrapped MessageService) MessageService {
	v.inner = wrapped
	return v
}
