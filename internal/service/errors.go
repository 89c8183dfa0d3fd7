package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// Client-side sentinels. The HTTP adapter reports transport-level errors;
// mapAdapterError translates them into these business errors so the terminal
// client never has to inspect status codes or response bodies itself.
var (
	// ErrRegisterOnServer reports that account creation failed on the remote
	// server after the local key material was prepared successfully.
	ErrRegisterOnServer = errors.New("registration failed on server")

	// ErrLoginOnServer reports that remote authentication failed for a
	// reason other than bad credentials (transport failure, server error).
	ErrLoginOnServer = errors.New("login failed on server")

	// ErrNoStoredSession reports an unlock or session-resume attempt with no
	// persisted login on this device.
	ErrNoStoredSession = errors.New("no stored session on this device")

	// ErrAccessDenied reports a server refusal to serve a resource owned by
	// a different account.
	ErrAccessDenied = errors.New("access to another user's data denied")

	// ErrServerInternal reports an unclassified remote failure. The client
	// can only suggest retrying later.
	ErrServerInternal = errors.New("server internal error")

	// ErrSendBlocked reports that a message send was stopped before upload
	// because the recipient has a published key but encryption failed
	// (oversize plaintext or a corrupt directory record). Falling back to
	// plaintext here would silently downgrade a conversation both sides
	// expect to be encrypted, so the send is refused instead.
	ErrSendBlocked = errors.New("message send blocked")
)
