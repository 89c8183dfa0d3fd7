// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

// Package session holds the unlocked key material of the signed-in user for
// the lifetime of a client session. Nothing in this package touches disk:
// the cache is process memory only, filled after a successful unlock and
// dropped on logout.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lushkiwi/UT-Marketplace/internal/crypto"
)

// ErrKeysNotLoaded reports a key-dependent operation attempted before the
// session cache was loaded, or after it was cleared. Callers surface it as
// "log in again" rather than retrying.
var ErrKeysNotLoaded = errors.New("session keys not loaded")

// KeyCache is a two-state store for the session key pair: empty or loaded,
// nothing in between. Load installs both halves atomically and Clear drops
// both atomically, so readers can never observe a public key without its
// private counterpart. Safe for concurrent use.
type KeyCache struct {
	mu    sync.RWMutex
	codec crypto.KeyCodec

	publicKey  string
	privateKey string
	loaded     bool
}

// NewKeyCache constructs an empty cache that validates incoming key material
// with codec.
func NewKeyCache(codec crypto.KeyCodec) *KeyCache {
	return &KeyCache{codec: codec}
}

// Load validates both transport strings structurally and installs them as
// the session pair. If either half fails validation the cache is left in
// its previous state and the error wraps [crypto.ErrKeyDecode]; a partial
// pair is never installed. Validation is structural only: deep parsing
// happens at first use, not here.
func (c *KeyCache) Load(publicKey, privateKey string) error {
	if !c.codec.IsValidKey(publicKey) {
		return fmt.Errorf("%w: public key is not valid transport encoding", crypto.ErrKeyDecode)
	}
	if !c.codec.IsValidKey(privateKey) {
		return fmt.Errorf("%w: private key is not valid transport encoding", crypto.ErrKeyDecode)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.publicKey = publicKey
	c.privateKey = privateKey
	c.loaded = true
	return nil
}

// Clear drops both keys and returns the cache to the empty state. Always
// succeeds, including on an already-empty cache; logout paths call it
// unconditionally.
func (c *KeyCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publicKey = ""
	c.privateKey = ""
	c.loaded = false
}

// IsReady reports whether a pair is currently loaded.
func (c *KeyCache) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// PublicKey returns the loaded public key, or ok=false on an empty cache.
func (c *KeyCache) PublicKey() (key string, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.publicKey, c.loaded
}

// PrivateKey returns the loaded private key, or ok=false on an empty cache.
func (c *KeyCache) PrivateKey() (key string, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.privateKey, c.loaded
}

// RequireKeys returns both halves of the session pair, failing with
// [ErrKeysNotLoaded] on an empty cache. Operations that cannot proceed
// without keys call this instead of the individual accessors.
func (c *KeyCache) RequireKeys() (publicKey, privateKey string, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return "", "", ErrKeysNotLoaded
	}
	return c.publicKey, c.privateKey, nil
}
