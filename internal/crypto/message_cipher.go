// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// UndecryptableMarker is the display string substituted for any message body
// that fails decryption. Decrypt returns it instead of an error so that one
// undecryptable message never blocks rendering the rest of a conversation.
const UndecryptableMarker = "[Unable to decrypt]"

// messageCipher is the private implementation of [MessageCipher].
type messageCipher struct{}

// NewMessageCipher constructs a [MessageCipher] using RSA-OAEP with SHA-256.
func NewMessageCipher() MessageCipher {
	return &messageCipher{}
}

// Encrypt implements [MessageCipher]. Steps:
//  1. Bound check: the UTF-8 byte length must fit the OAEP payload, there is
//     no chunking and no hybrid fallback.
//  2. OAEP-encrypt under the recipient public key with SHA-256 and a fresh
//     random seed, so equal plaintexts yield different ciphertexts.
//  3. Base64-encode for text transport.
func (m *messageCipher) Encrypt(plaintext string, recipientPublicKey *rsa.PublicKey) (string, error) {
	raw := []byte(plaintext)
	if limit := m.MaxPlaintextSize(recipientPublicKey); len(raw) > limit {
		return "", fmt.Errorf("%w: plaintext is %d bytes, limit is %d", ErrEncryption, len(raw), limit)
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, recipientPublicKey, raw, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt implements [MessageCipher]. Never returns an error: base64 decode
// failure, OAEP failure under the wrong key, and corrupted input all
// collapse to [UndecryptableMarker]. Plaintext bodies stored before
// encryption existed fall out the same way when a receiver-side decrypt pass
// sweeps a mixed conversation.
func (m *messageCipher) Decrypt(ciphertext string, privateKey *rsa.PrivateKey) string {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return UndecryptableMarker
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, privateKey, blob, nil)
	if err != nil {
		return UndecryptableMarker
	}

	return string(plaintext)
}

// MaxPlaintextSize implements [MessageCipher]: k − 2·hLen − 2 bytes, where k
// is the modulus size and hLen the SHA-256 digest size. 190 for RSA-2048.
func (m *messageCipher) MaxPlaintextSize(pub *rsa.PublicKey) int {
	return pub.Size() - 2*sha256.Size - 2
}
