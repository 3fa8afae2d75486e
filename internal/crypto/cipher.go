// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
)

const (
	// KeySlotName is the device slot holding the exported AES key.
	KeySlotName = "cipher.key"

	// BlobDelimiter separates the nonce and ciphertext segments of a blob.
	BlobDelimiter = ":"

	keySize = 32 // AES-256
)

var blobEncoding = base64.StdEncoding.Strict()

// secretCipher is the AES-256-GCM implementation of [SecretCipher].
type secretCipher struct {
	slots KeySlots

	mu   sync.Mutex
	aead cipher.AEAD

	logger *logger.Logger
}

// NewSecretCipher returns a [SecretCipher] whose key lives in slots. The key
// is loaded (or generated) lazily on first use and cached afterwards.
func NewSecretCipher(slots KeySlots, logger *logger.Logger) SecretCipher {
	return &secretCipher{slots: slots, logger: logger}
}

// Encrypt implements [SecretCipher].
func (c *secretCipher) Encrypt(ctx context.Context, plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	aead, err := c.key(ctx)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(nonce) + BlobDelimiter + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt implements [SecretCipher].
func (c *secretCipher) Decrypt(ctx context.Context, blob string) (string, error) {
	if blob == "" {
		return "", nil
	}

	parts := strings.Split(blob, BlobDelimiter)
	if len(parts) != 2 || strings.ContainsAny(blob, "\r\n") {
		return "", ErrMalformedSecret
	}

	// Strict rejects non-zero padding bits, so every blob has exactly one
	// accepted spelling.
	nonce, err := blobEncoding.DecodeString(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: nonce: %w", ErrMalformedSecret, err)
	}
	sealed, err := blobEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext: %w", ErrMalformedSecret, err)
	}

	aead, err := c.key(ctx)
	if err != nil {
		return "", err
	}

	if len(nonce) != aead.NonceSize() {
		return "", ErrCorruptedOrIncompatible
	}

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrCorruptedOrIncompatible
	}

	return string(plaintext), nil
}

// key returns the cached AEAD, importing or generating the device key on
// first use. A stored key that does not decode to 32 bytes is replaced.
func (c *secretCipher) key(ctx context.Context) (cipher.AEAD, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.aead != nil {
		return c.aead, nil
	}

	log := logger.FromContext(ctx)

	raw, found, err := c.slots.GetSlot(ctx, KeySlotName)
	if err != nil {
		log.Err(err).Str("func", "secretCipher.key").Msg("failed to read key slot")
		return nil, fmt.Errorf("read key slot: %w", err)
	}

	var key []byte
	if found {
		key, err = base64.StdEncoding.DecodeString(raw)
		if err != nil || len(key) != keySize {
			log.Warn().Str("func", "secretCipher.key").Msg("stored device key is unreadable, generating a new one; existing secrets will not decrypt")
			key = nil
		}
	}

	if key == nil {
		key = make([]byte, keySize)
		if _, err = io.ReadFull(rand.Reader, key); err != nil {
			return nil, fmt.Errorf("generate device key: %w", err)
		}
		if err = c.slots.PutSlot(ctx, KeySlotName, base64.StdEncoding.EncodeToString(key)); err != nil {
			log.Err(err).Str("func", "secretCipher.key").Msg("failed to persist device key")
			return nil, fmt.Errorf("persist device key: %w", err)
		}
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	c.aead = aead
	return aead, nil
}
