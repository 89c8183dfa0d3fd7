// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"fmt"

	"github.com/lushkiwi/UT-Marketplace/models"
)

// rsaKeyBits is the modulus size for generated pairs. 2048 bits keeps
// browser and mobile counterparts interoperable and bounds the OAEP payload
// at 190 bytes, which is the message size bound of the whole scheme.
const rsaKeyBits = 2048

// keyCodec is the private implementation of [KeyCodec].
type keyCodec struct{}

// NewKeyCodec constructs a [KeyCodec] producing RSA-2048 pairs in
// SPKI/PKCS#8 transport encoding.
func NewKeyCodec() KeyCodec {
	return &keyCodec{}
}

// Generate implements [KeyCodec]. It draws a fresh RSA-2048 pair from the OS
// CSPRNG and returns both halves transport-encoded. Any failure comes back
// wrapped in [ErrKeyGeneration].
func (c *keyCodec) Generate() (models.KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("%w: %w", ErrKeyGeneration, err)
	}

	publicKey, err := c.EncodePublicKey(&priv.PublicKey)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("%w: %w", ErrKeyGeneration, err)
	}

	privateKey, err := c.EncodePrivateKey(priv)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("%w: %w", ErrKeyGeneration, err)
	}

	return models.KeyPair{PublicKey: publicKey, PrivateKey: privateKey}, nil
}

// EncodePublicKey implements [KeyCodec]. SPKI (PKIX) DER wrapped in standard
// Base64.
func (c *keyCodec) EncodePublicKey(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("marshal public key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(der), nil
}

// EncodePrivateKey implements [KeyCodec]. PKCS#8 DER wrapped in standard
// Base64.
func (c *keyCodec) EncodePrivateKey(priv *rsa.PrivateKey) (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return "", fmt.Errorf("marshal private key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(der), nil
}

// DecodePublicKey implements [KeyCodec]. It reverses [EncodePublicKey] and
// additionally rejects SPKI material that is not an RSA key. All failures
// wrap [ErrKeyDecode].
func (c *keyCodec) DecodePublicKey(encoded string) (*rsa.PublicKey, error) {
	der, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrKeyDecode, err)
	}

	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse spki: %w", ErrKeyDecode, err)
	}

	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an rsa public key", ErrKeyDecode)
	}
	return pub, nil
}

// DecodePrivateKey implements [KeyCodec]. It reverses [EncodePrivateKey] and
// additionally rejects PKCS#8 material that is not an RSA key. All failures
// wrap [ErrKeyDecode].
func (c *keyCodec) DecodePrivateKey(encoded string) (*rsa.PrivateKey, error) {
	der, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrKeyDecode, err)
	}

	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse pkcs8: %w", ErrKeyDecode, err)
	}

	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an rsa private key", ErrKeyDecode)
	}
	return priv, nil
}

// IsValidKey implements [KeyCodec]. Structural check only: non-empty and
// decodable as standard Base64. It does not parse the DER; session load uses
// it as a cheap gate and full parsing happens on first use.
func (c *keyCodec) IsValidKey(value string) bool {
	if value == "" {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(value)
	return err == nil
}
