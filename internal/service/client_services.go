package service

import (
	"github.com/lushkiwi/UT-Marketplace/internal/adapter"
	"github.com/lushkiwi/UT-Marketplace/internal/crypto"
	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/internal/session"
	"github.com/lushkiwi/UT-Marketplace/internal/store"
)

type ClientServices struct {
	AuthService         ClientAuthService
	ConversationService ConversationService
	RefreshJob          InboxRefreshJob

	// Keys is the shared session key cache. The UI reads it to render the
	// encryption state; the services load and clear it through auth flows.
	Keys *session.KeyCache
}

// NewClientServices creates the client-side service layer on top of the local
// store and the server adapter:
//  1. Auth service: registration with key issuance, login and unlock with blob
//     opening, logout with full teardown.
//  2. Conversation service: decrypt-on-read transcripts, the tri-state send
//     policy, and the cache refresh delta pull.
//  3. Inbox refresh job: background poller over the conversation service.
//
// All three share one [session.KeyCache] so the UI and the services agree on
// the encryption state at every moment.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) (*ClientServices, error) {
	logger.Info().Msg("creating client services...")

	codec := crypto.NewKeyCodec()
	cipher := crypto.NewMessageCipher()
	vault := crypto.NewPrivateKeyVault()
	keys := session.NewKeyCache(codec)

	authSvc := NewClientAuthService(localStore, serverAdapter, codec, vault, keys)
	conversationSvc := NewConversationService(localStore, serverAdapter, codec, cipher, keys)

	return &ClientServices{
		AuthService:         authSvc,
		ConversationService: conversationSvc,
		RefreshJob:          NewInboxRefreshJob(conversationSvc),
		Keys:                keys,
	}, nil
}
