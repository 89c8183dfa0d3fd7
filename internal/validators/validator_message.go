package validators

import (
	"context"
	"strings"

	"github.com/lushkiwi/UT-Marketplace/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldSenderID targets the author identifier of a message.
	FieldSenderID = "sender_id"

	// FieldReceiverID targets the recipient identifier of a message or send request.
	FieldReceiverID = "receiver_id"

	// FieldContent targets the message body (plaintext or transport ciphertext).
	FieldContent = "content"

	// FieldListingID targets the optional marketplace listing reference.
	FieldListingID = "listing_id"

	// FieldDistinctParties enforces that sender and receiver are different users.
	FieldDistinctParties = "distinct parties"

	// FieldCounterpartyID targets the counterparty identifier in thread-scoped requests.
	FieldCounterpartyID = "counterparty_id"

	// FieldLogin targets the account login in auth requests.
	FieldLogin = "login"

	// FieldPassword targets the plaintext password in auth requests.
	FieldPassword = "password"

	// FieldKeyBundle enforces that the public key and the protected private-key
	// blob arrive together: one half alone is useless and suggests a broken client.
	FieldKeyBundle = "key_bundle"
)

// MessagingValidator implements the Validator interface for the messaging
// domain models: Message, SendMessageRequest, MarkReadRequest,
// RegisterRequest, and User (auth requests).
type MessagingValidator struct {
}

func NewMessagingValidator() Validator {
	return &MessagingValidator{}
}

func (v *MessagingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Message:
		return v.validateMessage(ctx, value, fields...)
	case *models.Message:
		return v.validateMessage(ctx, *value, fields...)

	case models.SendMessageRequest:
		return v.validateSendMessageRequest(ctx, value, fields...)
	case *models.SendMessageRequest:
		return v.validateSendMessageRequest(ctx, *value, fields...)

	case models.MarkReadRequest:
		return v.validateMarkReadRequest(ctx, value, fields...)
	case *models.MarkReadRequest:
		return v.validateMarkReadRequest(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.User:
		return v.validateAuthUser(ctx, value, fields...)
	case *models.User:
		return v.validateAuthUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MessagingValidator) validateMessage(ctx context.Context, message models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSenderID, FieldReceiverID, FieldContent, FieldListingID, FieldDistinctParties}
	}

	for _, f := range fields {
		switch f {
		case FieldSenderID:
			if message.SenderID <= 0 {
				return ErrInvalidUserID
			}
		case FieldReceiverID:
			if message.ReceiverID <= 0 {
				return ErrInvalidReceiverID
			}
		case FieldContent:
			if strings.TrimSpace(message.Content) == "" {
				return ErrEmptyContent
			}
		case FieldListingID:
			if message.ListingID != nil && *message.ListingID <= 0 {
				return ErrInvalidListingID
			}
		case FieldDistinctParties:
			if message.SenderID == message.ReceiverID {
				return ErrSelfMessage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessagingValidator) validateSendMessageRequest(ctx context.Context, request models.SendMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReceiverID, FieldContent, FieldListingID}
	}

	for _, f := range fields {
		switch f {
		case FieldReceiverID:
			if request.ReceiverID <= 0 {
				return ErrInvalidReceiverID
			}
		case FieldContent:
			if strings.TrimSpace(request.Content) == "" {
				return ErrEmptyContent
			}
		case FieldListingID:
			if request.ListingID != nil && *request.ListingID <= 0 {
				return ErrInvalidListingID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessagingValidator) validateMarkReadRequest(ctx context.Context, request models.MarkReadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCounterpartyID}
	}

	for _, f := range fields {
		switch f {
		case FieldCounterpartyID:
			if request.CounterpartyID <= 0 {
				return ErrInvalidCounterparty
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessagingValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword, FieldKeyBundle}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(request.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		case FieldKeyBundle:
			// both halves or neither: legacy-style signup without keys is
			// allowed, a half bundle is not
			if (request.PublicKey == "") != (request.EncryptedPrivateKey == "") {
				return ErrPartialKeyBundle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessagingValidator) validateAuthUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
