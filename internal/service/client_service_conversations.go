// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package service

import (
	"context"
	"crypto/rsa"
	"fmt"
	"strings"
	"sync"

	"github.com/lushkiwi/UT-Marketplace/internal/adapter"
	"github.com/lushkiwi/UT-Marketplace/internal/crypto"
	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/internal/session"
	"github.com/lushkiwi/UT-Marketplace/internal/store"
	"github.com/lushkiwi/UT-Marketplace/models"
)

// decryptWorkers bounds the parallel decrypt fan-out. RSA decryption is
// CPU-bound at roughly a millisecond per message, and transcripts are
// independent messages, so a small fixed pool keeps long threads fast
// without saturating every core.
const decryptWorkers = 8

type conversationService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	codec      crypto.KeyCodec
	cipher     crypto.MessageCipher
	keys       *session.KeyCache
}

func NewConversationService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, codec crypto.KeyCodec, cipher crypto.MessageCipher, keys *session.KeyCache) ConversationService {
	return &conversationService{
		localStore: localStore,
		adapter:    serverAdapter,
		codec:      codec,
		cipher:     cipher,
		keys:       keys,
	}
}

func (s *conversationService) Conversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	conversations, err := s.adapter.GetConversations(ctx)
	if err != nil {
		log.Warn().Err(err).
			Int64("user_id", userID).
			Msg("conversations fetch failed, serving local cache")

		cached, cacheErr := s.localStore.MessageCacheRepository.GetConversations(ctx, userID)
		if cacheErr != nil {
			return nil, fmt.Errorf("conversations unavailable: %w", mapAdapterError(err))
		}
		return s.upgradePreviews(cached, userID), nil
	}

	s.rememberContacts(ctx, conversations)

	return s.upgradePreviews(conversations, userID), nil
}

func (s *conversationService) Thread(ctx context.Context, userID, counterpartyID int64, listingID *int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	messages, err := s.adapter.GetThread(ctx, counterpartyID, listingID)
	if err != nil {
		log.Warn().Err(err).
			Int64("counterparty_id", counterpartyID).
			Msg("thread fetch failed, serving local cache")

		cached, cacheErr := s.localStore.MessageCacheRepository.GetThread(ctx, userID, counterpartyID)
		if cacheErr != nil {
			return nil, fmt.Errorf("thread unavailable: %w", mapAdapterError(err))
		}
		return s.decryptAll(filterListing(cached, listingID), userID), nil
	}

	if len(messages) > 0 {
		if err := s.localStore.MessageCacheRepository.UpsertMessages(ctx, messages...); err != nil {
			log.Warn().Err(err).Msg("failed to cache thread messages")
		}
	}

	return s.decryptAll(messages, userID), nil
}

func (s *conversationService) Send(ctx context.Context, receiverID int64, listingID *int64, text string) (models.Message, SendOutcome, error) {
	if strings.TrimSpace(text) == "" {
		return models.Message{}, SendBlocked, fmt.Errorf("%w: empty message", ErrInvalidDataProvided)
	}

	content, outcome, err := s.prepareContent(ctx, receiverID, text)
	if err != nil {
		return models.Message{}, SendBlocked, err
	}

	message, err := s.adapter.SendMessage(ctx, models.SendMessageRequest{
		ReceiverID: receiverID,
		ListingID:  listingID,
		Content:    content,
	})
	if err != nil {
		return models.Message{}, SendBlocked, fmt.Errorf("send message: %w", mapAdapterError(err))
	}

	// Echo into the cache so the thread renders the sent copy immediately.
	if err := s.localStore.MessageCacheRepository.UpsertMessages(ctx, message); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Int64("message_id", message.ID).
			Msg("failed to cache sent message")
	}

	return message, outcome, nil
}

func (s *conversationService) MarkRead(ctx context.Context, userID, counterpartyID int64) error {
	if _, err := s.adapter.MarkThreadRead(ctx, counterpartyID); err != nil {
		return fmt.Errorf("mark thread read: %w", mapAdapterError(err))
	}

	if err := s.localStore.MessageCacheRepository.MarkThreadRead(ctx, userID, counterpartyID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Int64("counterparty_id", counterpartyID).
			Msg("failed to mark cached thread read")
	}

	return nil
}

func (s *conversationService) Refresh(ctx context.Context, userID int64) (int, error) {
	sess, err := s.localStore.SessionRepository.GetSession(ctx)
	if err != nil {
		return 0, fmt.Errorf("read session watermark: %w", err)
	}
	// A stale background job can outlive a logout or an account switch; it
	// must not pull someone else's inbox into this cache.
	if sess == nil || sess.UserID != userID {
		return 0, ErrNoStoredSession
	}

	messages, err := s.adapter.GetInbox(ctx, sess.LastMessageID)
	if err != nil {
		return 0, fmt.Errorf("fetch inbox delta: %w", mapAdapterError(err))
	}
	if len(messages) == 0 {
		return 0, nil
	}

	if err := s.localStore.MessageCacheRepository.UpsertMessages(ctx, messages...); err != nil {
		return 0, fmt.Errorf("cache inbox delta: %w", err)
	}

	maxID := sess.LastMessageID
	for _, m := range messages {
		if m.ID > maxID {
			maxID = m.ID
		}
	}
	if err := s.localStore.SessionRepository.UpdateWatermark(ctx, maxID); err != nil {
		return 0, fmt.Errorf("advance watermark: %w", err)
	}

	return len(messages), nil
}

// prepareContent decides the tri-state encryption policy for one send:
// recipient key present → encrypt, no key record → plaintext fallback,
// encryption failure → blocked. The cipher never makes this decision.
func (s *conversationService) prepareContent(ctx context.Context, receiverID int64, text string) (string, SendOutcome, error) {
	encoded, ok, err := s.adapter.GetPublicKey(ctx, receiverID)
	if err != nil {
		return "", SendBlocked, fmt.Errorf("look up recipient key: %w", mapAdapterError(err))
	}
	if !ok {
		// Recipient predates encrypted messaging; deliver as typed.
		return text, SendPlaintext, nil
	}

	pub, err := s.codec.DecodePublicKey(encoded)
	if err != nil {
		return "", SendBlocked, fmt.Errorf("%w: recipient key record is corrupt: %w", ErrSendBlocked, err)
	}

	ciphertext, err := s.cipher.Encrypt(text, pub)
	if err != nil {
		return "", SendBlocked, fmt.Errorf("%w: %w", ErrSendBlocked, err)
	}

	return ciphertext, SendEncrypted, nil
}

// decryptAll applies the receiver-only decryption rule across a transcript.
// Messages are independent, so the map runs in parallel over a bounded pool,
// each goroutine writing through its own message pointer.
func (s *conversationService) decryptAll(messages []models.Message, userID int64) []models.Message {
	priv := s.sessionPrivateKey()
	if priv == nil || len(messages) == 0 {
		return messages
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, decryptWorkers)
	for i := range messages {
		if !shouldDecrypt(messages[i], userID) {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(m *models.Message) {
			defer wg.Done()
			defer func() { <-sem }()
			m.Content = s.cipher.Decrypt(m.Content, priv)
		}(&messages[i])
	}
	wg.Wait()

	return messages
}

// shouldDecrypt gates the decrypt attempt: only received bodies that look
// like transport ciphertext go through the cipher. Legacy plaintext passes
// through readable, and sent copies are unreadable on this side regardless,
// since they were encrypted against the counterparty's key.
func shouldDecrypt(m models.Message, userID int64) bool {
	return m.ReceiverID == userID && crypto.LooksEncrypted(m.Content)
}

// upgradePreviews replaces placeholder previews with decrypted text for
// conversations whose latest message this user can actually read. Everything
// else keeps the server-side classification.
func (s *conversationService) upgradePreviews(conversations []models.Conversation, userID int64) []models.Conversation {
	priv := s.sessionPrivateKey()
	if priv == nil {
		return conversations
	}

	for i, c := range conversations {
		if c.LastSenderID == userID || !crypto.LooksEncrypted(c.LastMessage) {
			continue
		}
		if text := s.cipher.Decrypt(c.LastMessage, priv); text != crypto.UndecryptableMarker {
			conversations[i].Preview = text
		}
	}

	return conversations
}

// sessionPrivateKey returns the decoded session private key, or nil when the
// cache is empty or the stored string does not parse. A nil key switches
// every decrypt path into passthrough mode.
func (s *conversationService) sessionPrivateKey() *rsa.PrivateKey {
	encoded, ok := s.keys.PrivateKey()
	if !ok {
		return nil
	}

	priv, err := s.codec.DecodePrivateKey(encoded)
	if err != nil {
		return nil
	}

	return priv
}

// rememberContacts refreshes cached counterparty names so the offline
// conversation list can still label threads.
func (s *conversationService) rememberContacts(ctx context.Context, conversations []models.Conversation) {
	if len(conversations) == 0 {
		return
	}

	contacts := make([]models.Contact, 0, len(conversations))
	for _, c := range conversations {
		contacts = append(contacts, models.Contact{UserID: c.CounterpartyID, Name: c.CounterpartyName})
	}

	if err := s.localStore.MessageCacheRepository.SaveContacts(ctx, contacts...); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to cache contact names")
	}
}

// filterListing narrows a cached thread to one listing partition. The remote
// query filters server-side; the cache fallback filters here instead.
func filterListing(messages []models.Message, listingID *int64) []models.Message {
	if listingID == nil {
		return messages
	}

	filtered := make([]models.Message, 0, len(messages))
	for _, m := range messages {
		if m.ListingID != nil && *m.ListingID == *listingID {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
