package crypto

import (
	"crypto/rsa"

	"github.com/lushkiwi/UT-Marketplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mocks.go -package=mock

// KeyCodec owns asymmetric key material: generation of fresh pairs and the
// transport encoding used to move keys through text-oriented storage.
//
// Transport form is standard interchange binary (SPKI for public keys,
// PKCS#8 for private keys) wrapped in std base64, so the same string works
// in JSON bodies, database TEXT columns, and log-safe references.
type KeyCodec interface {
	// Generate produces a fresh RSA-2048 pair from the OS CSPRNG and returns
	// both halves already transport-encoded. Fails with a wrapped
	// [ErrKeyGeneration] on entropy or backend failure.
	Generate() (models.KeyPair, error)

	// EncodePublicKey serializes a public key to SPKI wrapped in base64.
	EncodePublicKey(pub *rsa.PublicKey) (string, error)

	// EncodePrivateKey serializes a private key to PKCS#8 wrapped in base64.
	EncodePrivateKey(priv *rsa.PrivateKey) (string, error)

	// DecodePublicKey reverses EncodePublicKey. An ill-formed string fails
	// with a wrapped [ErrKeyDecode]; it never yields a usable-but-wrong key.
	DecodePublicKey(encoded string) (*rsa.PublicKey, error)

	// DecodePrivateKey reverses EncodePrivateKey. An ill-formed string fails
	// with a wrapped [ErrKeyDecode].
	DecodePrivateKey(encoded string) (*rsa.PrivateKey, error)

	// IsValidKey reports whether value is structurally well-formed transport
	// encoding (non-empty, decodable std base64). This is NOT a cryptographic
	// validity check: any structurally decodable string passes, including one
	// that is not actually a key for the cipher.
	IsValidKey(value string) bool
}

// MessageCipher encrypts and decrypts a single message body against an
// asymmetric key. Operations are stateless computations over their inputs
// and safe for concurrent use across messages.
type MessageCipher interface {
	// Encrypt encodes plaintext as UTF-8 and encrypts it under the
	// recipient's public key with OAEP/SHA-256, returning base64 ciphertext.
	// Plaintext longer than MaxPlaintextSize fails with a wrapped
	// [ErrEncryption]: there is no hybrid scheme, the RSA payload bound is
	// the message bound. Callers decide whether to block or fall back.
	Encrypt(plaintext string, recipientPublicKey *rsa.PublicKey) (string, error)

	// Decrypt reverses Encrypt using the session private key. On ANY failure
	// (wrong key, corrupted ciphertext, legacy plaintext input) it returns
	// [UndecryptableMarker] instead of an error: one bad message must not
	// take down the rendering of a whole conversation.
	Decrypt(ciphertext string, privateKey *rsa.PrivateKey) string

	// MaxPlaintextSize returns the OAEP payload bound in bytes for the given
	// modulus: k − 2·hLen − 2, which is 190 bytes for RSA-2048 with SHA-256.
	MaxPlaintextSize(pub *rsa.PublicKey) int
}

// PrivateKeyVault protects a transport-encoded private key with a password
// for at-rest storage, independent of message encryption.
//
// Scheme: PBKDF2-HMAC-SHA256 with a fresh 16-byte salt derives an AES-256
// key; AES-GCM with a fresh 12-byte nonce seals the private key string.
// Blob layout is salt ‖ nonce ‖ ciphertext, base64-encoded.
type PrivateKeyVault interface {
	// Protect seals privateKey under password. Every call draws a new salt
	// and nonce, so two calls with identical inputs never produce the same
	// blob.
	Protect(privateKey, password string) (string, error)

	// Open re-derives the key from the stored salt and the supplied password
	// and unseals the blob. The sole failure signal is a wrapped
	// [ErrInvalidPasswordOrCorruptBlob]: an authenticated cipher cannot tell
	// a wrong password from corrupted data, and callers must present that
	// ambiguity to the user instead of claiming certainty either way.
	Open(blob, password string) (string, error)
}
