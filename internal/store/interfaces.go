package store

import (
	"context"

	"github.com/lushkiwi/UT-Marketplace/models"
)

// UserRepository persists marketplace accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// KeyRepository persists per-user key material: the public key stored in the
// clear and the password-protected private-key blob. Records are write-once;
// an existing record is never overwritten because messages already encrypted
// against the old public key would become permanently unreadable.
type KeyRepository interface {
	SaveKeyRecord(ctx context.Context, record models.KeyRecord) error
	GetKeyRecord(ctx context.Context, userID int64) (*models.KeyRecord, error)
	GetPublicKeys(ctx context.Context, userIDs []int64) (map[int64]string, error)
}

// MessageRepository persists chat messages. Content is opaque at this layer:
// plaintext and ciphertext are stored and returned byte-for-byte.
type MessageRepository interface {
	SaveMessage(ctx context.Context, message models.Message) (models.Message, error)
	GetThread(ctx context.Context, userID int64, counterpartyID int64, listingID *int64) ([]models.Message, error)
	GetInbox(ctx context.Context, userID int64, sinceID int64) ([]models.Message, error)
	GetConversations(ctx context.Context, userID int64) ([]models.Conversation, error)
	MarkThreadRead(ctx context.Context, userID int64, counterpartyID int64) (int64, error)
}
