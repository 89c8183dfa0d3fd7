// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

// Package adapter provides transport-layer abstractions for communicating with
// the marketplace server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/lushkiwi/UT-Marketplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the marketplace
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// All methods except Register and Login require a bearer token to have been
// set; the server derives the acting user from that token, so no method takes
// the caller's own user id.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login, or when resuming a stored session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the credentials and key bundle in
	// req. On success it stores the returned bearer token via SetToken and
	// returns the server-side account summary. Returns [ErrConflict] (wrapped)
	// when the login is already taken.
	Register(ctx context.Context, req models.RegisterRequest) (models.LoginResponse, error)

	// Login authenticates with the server using the plaintext credentials in
	// user. On success it stores the returned bearer token via SetToken and
	// returns the account summary including the stored key record (nil for
	// accounts without key material). Returns [ErrUnauthorized] (wrapped) on
	// bad credentials.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// GetKeyRecord fetches the key record for userID: the public key plus the
	// password-protected private-key blob. Accounts without key material yield
	// (nil, nil); absence is a normal state, not an error.
	GetKeyRecord(ctx context.Context, userID int64) (*models.KeyRecord, error)

	// GetPublicKeys resolves public keys for a batch of user ids in one round
	// trip. Users without key records are omitted from the result. An empty
	// input returns an empty map without a network call.
	GetPublicKeys(ctx context.Context, userIDs []int64) (map[int64]string, error)

	// GetPublicKey is the point form of GetPublicKeys for a single user id.
	// ok=false means the user has no key record; absence is a normal state,
	// not an error.
	GetPublicKey(ctx context.Context, userID int64) (publicKey string, ok bool, err error)

	// SendMessage delivers one message and returns it with server-assigned
	// fields (id, timestamp). The sender is the authenticated user.
	SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error)

	// GetThread fetches the full two-way thread with counterpartyID, oldest
	// first, optionally narrowed to a single listing.
	GetThread(ctx context.Context, counterpartyID int64, listingID *int64) ([]models.Message, error)

	// GetInbox fetches every message touching the authenticated user with an
	// id above sinceID, ordered by id. Used by the background refresh job for
	// incremental pulls.
	GetInbox(ctx context.Context, sinceID int64) ([]models.Message, error)

	// GetConversations fetches the per-counterparty conversation summaries for
	// the authenticated user, most recent first.
	GetConversations(ctx context.Context) ([]models.Conversation, error)

	// MarkThreadRead acknowledges every unread message from counterpartyID and
	// reports how many changed state.
	MarkThreadRead(ctx context.Context, counterpartyID int64) (int64, error)
}
