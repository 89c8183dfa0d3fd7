// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package crypto

import "errors"

// Sentinel errors for the crypto layer. Callers match with errors.Is; the
// wrapped chain carries operational detail, the sentinel carries the category.
var (
	// ErrKeyGeneration reports that a fresh key pair could not be produced,
	// typically an entropy source or backend failure.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrKeyDecode reports a transport string that does not parse back into
	// a usable key. The source record should be treated as corrupt.
	ErrKeyDecode = errors.New("malformed key encoding")

	// ErrEncryption reports a failed encrypt call, including plaintext
	// exceeding the payload bound of the scheme.
	ErrEncryption = errors.New("message encryption failed")

	// ErrInvalidPasswordOrCorruptBlob is the single failure signal of the
	// private key vault. Wrong password and corrupted blob are cryptographically
	// indistinguishable under an authenticated cipher.
	ErrInvalidPasswordOrCorruptBlob = errors.New("invalid password or corrupt key blob")
)
