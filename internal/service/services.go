package service

import (
	"github.com/lushkiwi/UT-Marketplace/internal/config"
	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/internal/store"
)

// Services aggregates all server-side business logic services.
type Services struct {
	AuthService    AuthService
	KeyService     KeyService
	MessageService MessageService
	AppInfoService AppInfoService
}

// NewServices creates the full service layer on top of the given storages:
//  1. Auth service: registration with key enrollment, login and JWT token
//     lifecycle, wrapped with input validation.
//  2. Key service: public key lookups and protected key record retrieval.
//  3. Message service: sending, threads, inbox deltas, conversation summaries
//     and read receipts, wrapped with input validation.
//  4. App info service: build metadata for the version endpoint.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, storages.KeyRepository, cfg.App, logger),
	)

	messageService := NewMessageValidationService().Wrap(
		NewMessageService(storages.MessageRepository, logger),
	)

	return &Services{
		AuthService:    authService,
		KeyService:     NewKeyService(storages.KeyRepository, logger),
		MessageService: messageService,
		AppInfoService: appInfoService,
	}, nil
}
