package store

import (
	"context"

	"github.com/lushkiwi/UT-Marketplace/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository is the single-row local session store: who is logged in,
// their bearer token, and the inbox watermark. It never holds key material.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.ClientSession) error
	GetSession(ctx context.Context) (*models.ClientSession, error)
	UpdateWatermark(ctx context.Context, lastMessageID int64) error
	DeleteSession(ctx context.Context) error
}

// MessageCacheRepository is the local message cache backing offline reads.
// Rows hold content exactly as the server returned it (ciphertext or legacy
// plaintext); decryption output is never written back.
type MessageCacheRepository interface {
	UpsertMessages(ctx context.Context, messages ...models.Message) error
	GetThread(ctx context.Context, userID int64, counterpartyID int64) ([]models.Message, error)
	GetConversations(ctx context.Context, userID int64) ([]models.Conversation, error)
	MarkThreadRead(ctx context.Context, userID int64, counterpartyID int64) error
	SaveContacts(ctx context.Context, contacts ...models.Contact) error
	Clear(ctx context.Context) error
}
