package service

import (
	"context"
	"time"

	"github.com/lushkiwi/UT-Marketplace/models"
)

// SendOutcome reports how a message body was treated before upload. The
// encryption decision is tri-state and is made here in the orchestration
// layer, never inside the cipher: the cipher stays a pure computation and the
// policy around missing keys and failures lives with the caller.
type SendOutcome int

const (
	// SendBlocked means the message was not uploaded: the recipient has a
	// published key but encrypting for it failed. Returned together with a
	// non-nil error.
	SendBlocked SendOutcome = iota

	// SendEncrypted means the body was encrypted against the recipient's
	// public key before upload.
	SendEncrypted

	// SendPlaintext means the recipient has no key record (an account from
	// before encrypted messaging existed) and the body was uploaded as
	// typed. Callers should tell the user the message was not protected.
	SendPlaintext
)

// ClientAuthService owns the client-side account lifecycle: key issuance at
// signup, unlocking the private key at login, and tearing the session down
// again. It is the only component that ever sees the account password, and
// it never persists it.
type ClientAuthService interface {
	// Register creates a new account. It generates a fresh key pair,
	// protects the private half with the account password, uploads the
	// credential bundle, loads the session key cache, and persists the
	// issued session locally. The local message cache is reset for the new
	// account.
	// Returns the persisted session or an error if any step fails; no
	// partial session is left behind on failure.
	Register(ctx context.Context, login, name, password string) (models.ClientSession, error)

	// Login authenticates against the server, opens the stored private-key
	// blob with the password, loads the session key cache, and persists the
	// session locally. Accounts without key material log in successfully
	// with an empty key cache; messaging then degrades to preview-only
	// rendering.
	// Returns the persisted session or an error if authentication or blob
	// opening fails.
	Login(ctx context.Context, login, password string) (models.ClientSession, error)

	// Unlock resumes the locally persisted session without re-entering the
	// login: it restores the bearer token, re-fetches the key record, and
	// opens the private-key blob with the supplied password.
	// Returns [ErrNoStoredSession] when nobody is logged in on this device,
	// or the vault's error when the password does not open the blob.
	Unlock(ctx context.Context, password string) (models.ClientSession, error)

	// Logout clears the in-memory key cache, forgets the bearer token, and
	// deletes the persisted session and message cache. The key cache is
	// cleared first and unconditionally: key material must never outlive
	// the session even when local storage cleanup fails.
	Logout(ctx context.Context) error

	// CurrentSession returns the locally persisted session, or nil when
	// nobody is logged in. Never contacts the server.
	CurrentSession(ctx context.Context) (*models.ClientSession, error)
}

// ConversationService is the decrypt-on-read / encrypt-on-write orchestration
// over a user's conversations. It fetches from the server when reachable,
// falls back to the local cache when not, and applies the per-message
// decryption rule uniformly: decrypt only what the current identity received,
// pass everything else through.
type ConversationService interface {
	// Conversations returns per-counterparty summaries for userID, newest
	// first. When the session keys are loaded, previews of received
	// encrypted messages are upgraded to their decrypted text; everything
	// else keeps the server-side classification (raw plaintext or the
	// encrypted-content placeholder).
	Conversations(ctx context.Context, userID int64) ([]models.Conversation, error)

	// Thread returns the full transcript between userID and counterpartyID,
	// optionally partitioned by listing, with received encrypted bodies
	// decrypted. Sent copies pass through unchanged: they were encrypted
	// against the counterparty's key, so this side cannot read them back.
	Thread(ctx context.Context, userID, counterpartyID int64, listingID *int64) ([]models.Message, error)

	// Send uploads one message to receiverID, deciding the encryption
	// policy first: recipient has a key record → encrypt; no record →
	// plaintext fallback; encryption failure → blocked with [ErrSendBlocked]
	// and nothing uploaded. The stored message is echoed into the local
	// cache on success.
	Send(ctx context.Context, receiverID int64, listingID *int64, text string) (models.Message, SendOutcome, error)

	// MarkRead acknowledges every unread message from counterpartyID to
	// userID, on the server and in the local cache.
	MarkRead(ctx context.Context, userID, counterpartyID int64) error

	// Refresh pulls messages above the stored inbox watermark into the
	// local cache and advances the watermark. Returns how many new messages
	// arrived; zero with no error when the inbox is already current.
	Refresh(ctx context.Context, userID int64) (int, error)
}

// InboxRefreshJob is a background poller that keeps the local message cache
// warm by calling Refresh on a ticker.
type InboxRefreshJob interface {
	// Start launches the background goroutine. It polls every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, userID int64, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the job is not running.
	Stop()
}
