package service

import (
	"context"

	"github.com/lushkiwi/UT-Marketplace/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// KeyService is the public-key directory: it serves per-user key records and
// batch public-key lookups. It never sees a private key outside the opaque
// protected blob.
type KeyService interface {
	GetKeyRecord(ctx context.Context, userID int64) (*models.KeyRecord, error)
	GetPublicKeys(ctx context.Context, userIDs []int64) (map[int64]string, error)
}

type MessageService interface {
	SendMessage(ctx context.Context, senderID int64, request models.SendMessageRequest) (models.Message, error)

	GetThread(ctx context.Context, userID int64, counterpartyID int64, listingID *int64) ([]models.Message, error)
	GetInbox(ctx context.Context, userID int64, sinceID int64) ([]models.Message, error)
	GetConversations(ctx context.Context, userID int64) ([]models.Conversation, error)

	MarkThreadRead(ctx context.Context, userID int64, counterpartyID int64) (int64, error)
}

// MessageServiceWrapper defines middleware composition for MessageService.
// Implementations wrap an existing MessageService to add behavior such as
// logging or validating.
type MessageServiceWrapper interface {
	Wrap(MessageService) MessageService // returns a decorated MessageService applying additional behavior
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// AppInfoService exposes application build information such as the running
// version string.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
