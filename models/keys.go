// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package models

import "time"

// KeyPair holds a freshly generated asymmetric key pair in transport encoding
// (base64 over SPKI for the public half, base64 over PKCS#8 for the private
// half). The two halves are generated together and split immediately for
// different storage treatment: the public key is stored in the clear, the
// private key only ever leaves client memory inside a password-protected blob.
//
// PrivateKey must never be written to persistent storage or any log in its
// raw decoded form.
type KeyPair struct {
	// PublicKey is the transport-encoded public half, safe to share.
	PublicKey string `json:"public_key"`

	// PrivateKey is the transport-encoded private half. In-memory use only;
	// excluded from JSON so it cannot leak through serialized models.
	PrivateKey string `json:"-"`
}

// KeyRecord is the durable per-user key material row served by the key
// directory: the plaintext public key plus the password-protected private-key
// blob. One record per user, created once at signup. Accounts created before
// the encrypted-messaging feature existed have no record at all; callers
// must treat absence as a normal, non-fatal state.
type KeyRecord struct {
	// UserID references the owning identity (1:1).
	UserID int64 `json:"user_id"`

	// PublicKey is the transport-encoded public key, stored in the clear.
	PublicKey string `json:"public_key"`

	// EncryptedPrivateKey is the serialized protected blob
	// (salt ‖ nonce ‖ ciphertext, base64). Opaque without the password.
	EncryptedPrivateKey string `json:"encrypted_private_key"`

	// CreatedAt is when the key pair was issued.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the KeyRecord model.
func (k KeyRecord) TableName() string {
	return "user_keys"
}
