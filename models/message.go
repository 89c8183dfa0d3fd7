package models

import "time"

// Message is one marketplace chat message as stored and transported. Content
// is either legacy plaintext or transport-encoded ciphertext produced against
// the receiver's public key; the two are indistinguishable without the
// preview heuristic, and only the receiver's private key settles the question.
type Message struct {
	// ID is the server-assigned message identifier.
	ID int64 `json:"id"`

	// SenderID is the author of the message.
	SenderID int64 `json:"sender_id"`

	// ReceiverID is the recipient the content was (possibly) encrypted for.
	ReceiverID int64 `json:"receiver_id"`

	// ListingID optionally partitions a conversation by marketplace listing.
	// Nil for direct conversations without a listing context.
	ListingID *int64 `json:"listing_id,omitempty"`

	// Content is the stored message body: plaintext or ciphertext.
	Content string `json:"content"`

	// IsRead reports whether the receiver has opened the message.
	IsRead bool `json:"is_read"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

// Conversation is a per-counterparty summary row for the conversation list:
// the latest message preview, its timestamp, and how many messages the
// current user has not read yet.
type Conversation struct {
	// CounterpartyID is the other participant of the conversation.
	CounterpartyID int64 `json:"counterparty_id"`

	// CounterpartyName is the display name of the other participant.
	CounterpartyName string `json:"counterparty_name"`

	// ListingID carries the listing partition of the latest message, if any.
	ListingID *int64 `json:"listing_id,omitempty"`

	// LastMessage is the raw latest message body exactly as stored. Clients
	// holding the receiver private key decrypt it locally.
	LastMessage string `json:"last_message"`

	// Preview is the display fallback: the raw content when it does not look
	// encrypted, otherwise the fixed encrypted-content placeholder. Clients
	// with loaded keys overwrite it with the decrypted text.
	Preview string `json:"preview"`

	// LastMessageAt is the timestamp of the latest message.
	LastMessageAt time.Time `json:"last_message_at"`

	// LastSenderID is the author of the latest message, used by clients to
	// prefix previews with "You: " for own messages.
	LastSenderID int64 `json:"last_sender_id"`

	// UnreadCount is the number of unread messages addressed to the
	// current user in this conversation.
	UnreadCount int `json:"unread_count"`
}
