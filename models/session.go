package models

import "time"

// ClientSession is the single locally persisted login session. It carries the
// bearer token and the inbox watermark, never any key material: private keys
// exist on disk only inside the server-held protected blob, and plaintext
// only in process memory.
type ClientSession struct {
	// UserID is the authenticated account identifier.
	UserID int64

	// Login is the account login, kept for display and re-authentication.
	Login string

	// Name is the account display name.
	Name string

	// Token is the bearer token for the server API.
	Token string

	// LastMessageID is the highest server message ID pulled into the local
	// cache. The refresh worker requests only messages above it.
	LastMessageID int64

	// UpdatedAt is when the session row was last written.
	UpdatedAt time.Time
}

// Contact is a locally cached counterparty name, refreshed from conversation
// summaries so the list renders offline.
type Contact struct {
	// UserID is the counterparty account identifier.
	UserID int64

	// Name is the display name as last seen from the server.
	Name string
}
