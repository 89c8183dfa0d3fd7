package service

import (
	"context"
	"fmt"

	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/internal/store"
	"github.com/lushkiwi/UT-Marketplace/models"
)

// keyService is the concrete implementation of KeyService, a thin layer over
// the KeyRepository. Key material stays opaque here: the service relays the
// transport-encoded public keys and the protected private-key blob without
// decoding either.
type keyService struct {
	keyRepository store.KeyRepository

	logger *logger.Logger
}

// NewKeyService constructs a KeyService backed by the given repository.
func NewKeyService(keyRepository store.KeyRepository, logger *logger.Logger) KeyService {
	return &keyService{
		keyRepository: keyRepository,
		logger:        logger,
	}
}

// GetKeyRecord returns the key record for userID, or nil when the account has
// none (created before key enrollment). Absence is a normal state, not an
// error.
//
// Returns ErrInvalidDataProvided for non-positive user IDs.
func (k *keyService) GetKeyRecord(ctx context.Context, userID int64) (*models.KeyRecord, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("user_id", userID).Msg("invalid user id for key record lookup")
		return nil, ErrInvalidDataProvided
	}

	record, err := k.keyRepository.GetKeyRecord(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("key record lookup failed")
		return nil, fmt.Errorf("key record lookup failed: %w", err)
	}

	return record, nil
}

// GetPublicKeys resolves public keys for a batch of user IDs in one
// repository round trip. Users without key records are omitted from the
// result; an empty input yields an empty map without touching storage.
func (k *keyService) GetPublicKeys(ctx context.Context, userIDs []int64) (map[int64]string, error) {
	log := logger.FromContext(ctx)

	keys, err := k.keyRepository.GetPublicKeys(ctx, userIDs)
	if err != nil {
		log.Err(err).Int("requested", len(userIDs)).Msg("batch public key lookup failed")
		return nil, fmt.Errorf("batch public key lookup failed: %w", err)
	}

	return keys, nil
}
