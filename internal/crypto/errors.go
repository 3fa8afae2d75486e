// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrCipher is the common parent of every secret decryption failure.
	ErrCipher = errors.New("cipher failure")

	// ErrMalformedSecret is returned for blobs that are not exactly two
	// base64 segments joined by [BlobDelimiter].
	ErrMalformedSecret = fmt.Errorf("%w: malformed secret blob", ErrCipher)

	// ErrCorruptedOrIncompatible is returned when AES-GCM rejects the nonce,
	// ciphertext or tag: the blob was altered or sealed with another key.
	ErrCorruptedOrIncompatible = fmt.Errorf("%w: secret is corrupted or was encrypted with an incompatible key", ErrCipher)

	// ErrInvalidPasswordHash is returned when a stored hash cannot be parsed.
	ErrInvalidPasswordHash = errors.New("invalid password hash encoding")
)
