// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// ErrMalformedCiphertext is returned when a sealed value cannot be decoded
// or authenticated.
var ErrMalformedCiphertext = errors.New("malformed ciphertext")

const tokenCipherInfo = "crm-sync/oauth-token/v1"

// TokenCipher seals OAuth tokens before they are written to the database.
// Values are XChaCha20-Poly1305 encrypted under a key derived with HKDF
// from the configured master key and encoded as base64url(nonce||ciphertext).
type TokenCipher struct {
	aead cipher.AEAD
}

// NewTokenCipher derives the encryption key from masterKey.
func NewTokenCipher(masterKey []byte) (*TokenCipher, error) {
	if len(masterKey) < 32 {
		return nil, errors.New("master key must be at least 32 bytes")
	}

	key := make([]byte, chacha20poly1305.KeySize)
	kdf := hkdf.New(sha256.New, masterKey, nil, []byte(tokenCipherInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("derive token key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init token cipher: %w", err)
	}

	return &TokenCipher{aead: aead}, nil
}

// Seal encrypts plaintext. additional binds the ciphertext to a context
// such as the owner id, so a value copied to another row fails to open.
func (c *TokenCipher) Seal(plaintext, additional string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plaintext)+c.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), []byte(additional))
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal.
func (c *TokenCipher) Open(encoded, additional string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}

	ns := c.aead.NonceSize()
	if len(raw) < ns+c.aead.Overhead() {
		return "", ErrMalformedCiphertext
	}

	plain, err := c.aead.Open(nil, raw[:ns], raw[ns:], []byte(additional))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}

	return string(plain), nil
}
