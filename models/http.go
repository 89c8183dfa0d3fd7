package models

// RegisterRequest carries everything the server needs to create an account in
// one shot: credentials plus the client-generated key bundle. Key issuance is
// atomic with signup: the private key arrives only inside the protected blob.
type RegisterRequest struct {
	// Login is the unique account login.
	Login string `json:"login"`

	// Name is the display name shown to counterparties.
	Name string `json:"name"`

	// Password is the plaintext password, used server-side only to derive the
	// stored auth hash. The same password protects the private-key blob, but
	// that derivation happens on the client before this request is built.
	Password string `json:"password"`

	// PublicKey is the transport-encoded public key, stored in the clear.
	PublicKey string `json:"public_key"`

	// EncryptedPrivateKey is the serialized password-protected blob.
	EncryptedPrivateKey string `json:"encrypted_private_key"`
}

// LoginResponse is returned on successful authentication: the account, and
// the stored key record when one exists. KeyRecord is nil for accounts
// created before encrypted messaging existed ("legacy users"), so clients must
// treat that as a normal state, not an error.
type LoginResponse struct {
	// UserID is the authenticated account identifier.
	UserID int64 `json:"user_id"`

	// Name is the account display name.
	Name string `json:"name"`

	// KeyRecord holds the public key and protected private-key blob,
	// or nil when the account has no key material on file.
	KeyRecord *KeyRecord `json:"key_record,omitempty"`
}

// PublicKeysRequest asks for the public keys of a set of users in one round
// trip, used when rendering conversation lists. Unknown ids are omitted from
// the response rather than reported as errors.
type PublicKeysRequest struct {
	// UserIDs is the set of users whose public keys are requested.
	UserIDs []int64 `json:"user_ids"`
}

// PublicKeysResponse maps user id to transport-encoded public key.
// Users without a key record are absent from the map.
type PublicKeysResponse struct {
	// Keys maps user id → public key for every id that has a record.
	Keys map[int64]string `json:"keys"`
}

// SendMessageRequest creates one message. Content is stored exactly as sent:
// the server cannot (and does not try to) tell ciphertext from plaintext.
type SendMessageRequest struct {
	// ReceiverID is the recipient of the message.
	ReceiverID int64 `json:"receiver_id"`

	// ListingID optionally ties the message to a marketplace listing.
	ListingID *int64 `json:"listing_id,omitempty"`

	// Content is the message body, plaintext or transport ciphertext.
	Content string `json:"content"`

	// Hash is the hex-encoded HMAC-SHA256 over Content, computed with the
	// shared transport key. The server recomputes it before persisting and
	// rejects the message on mismatch.
	Hash string `json:"hash,omitempty"`
}

// MarkReadRequest flags every unread message from CounterpartyID to the
// authenticated user as read.
type MarkReadRequest struct {
	// CounterpartyID is the sender whose messages are being acknowledged.
	CounterpartyID int64 `json:"counterparty_id"`
}

// MarkReadResponse reports how many messages a read acknowledgement actually
// flipped. Zero means the thread was already read; repeating the call is safe.
type MarkReadResponse struct {
	// MarkedRead is the number of messages that changed state.
	MarkedRead int64 `json:"marked_read"`
}
