// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// privateKeyVault is the private implementation of [PrivateKeyVault].
type privateKeyVault struct {
	// PBKDF2 tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	iterations int
	saltLen    int
	keyLen     int
}

// NewPrivateKeyVault constructs a [PrivateKeyVault] with the PBKDF2-HMAC-SHA256
// parameters used across all clients:
//   - iterations:  100 000
//   - salt length: 16 bytes
//   - key length:  32 bytes (256 bits, AES-256)
//
// Lowering the iteration count would silently weaken every blob written
// afterwards, so the constructor is the only place the number lives.
func NewPrivateKeyVault() PrivateKeyVault {
	return &privateKeyVault{
		iterations: 100_000,
		saltLen:    16,
		keyLen:     32, // 256 bits
	}
}

// Protect implements [PrivateKeyVault]. Steps:
//  1. Draw a fresh random salt; derive the AES key via PBKDF2-HMAC-SHA256.
//  2. Seal the private key string with AES-256-GCM under a fresh nonce.
//  3. Serialize as salt ‖ nonce ‖ ciphertext and Base64-encode.
//
// Salt and nonce are drawn per call, so protecting the same key with the
// same password twice yields two different blobs.
func (v *privateKeyVault) Protect(privateKey, password string) (string, error) {
	salt := make([]byte, v.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := v.buildAEAD(password, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(privateKey), nil)

	// salt ‖ nonce ‖ ciphertext, then Base64 for text transport.
	blob := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [PrivateKeyVault]. It splits the blob back into salt,
// nonce, and ciphertext, re-derives the AES key from the supplied password,
// and verifies the GCM tag. Every failure mode (undecodable blob, truncated
// blob, tag mismatch) maps to [ErrInvalidPasswordOrCorruptBlob]; a wrong
// password and a corrupted blob are indistinguishable here and callers must
// not pretend otherwise.
func (v *privateKeyVault) Open(blob, password string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrInvalidPasswordOrCorruptBlob, err)
	}

	// A well-formed blob carries at least the salt and the GCM nonce.
	if len(raw) < v.saltLen+gcmNonceSize {
		return "", fmt.Errorf("%w: blob too short", ErrInvalidPasswordOrCorruptBlob)
	}
	salt, rest := raw[:v.saltLen], raw[v.saltLen:]

	gcm, err := v.buildAEAD(password, salt)
	if err != nil {
		return "", err
	}

	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPasswordOrCorruptBlob, err)
	}

	return string(plaintext), nil
}

// gcmNonceSize is the standard GCM nonce length used for the length check in
// Open before the AEAD is constructed.
const gcmNonceSize = 12

// buildAEAD derives the AES-256 key from password and salt and wraps it in
// GCM. Shared by Protect and Open so both sides always agree on parameters.
func (v *privateKeyVault) buildAEAD(password string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(password), salt, v.iterations, v.keyLen, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
