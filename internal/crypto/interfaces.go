package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// SecretCipher protects credential secrets at rest with a per-device key.
//
// Blobs have the form base64(nonce) ":" base64(ciphertext‖tag). The empty
// string is passed through unchanged in both directions.
type SecretCipher interface {
	// Encrypt seals plaintext with a fresh random nonce.
	Encrypt(ctx context.Context, plaintext string) (string, error)

	// Decrypt opens a blob produced by Encrypt. It fails with
	// [ErrMalformedSecret] when the blob is not two base64 segments and with
	// [ErrCorruptedOrIncompatible] when authentication fails (tampering or a
	// different device key). It never returns partial plaintext.
	Decrypt(ctx context.Context, blob string) (string, error)
}

// KeySlots is the device-local, non-synced key/value storage the cipher
// keeps its exported key in.
type KeySlots interface {
	GetSlot(ctx context.Context, key string) (string, bool, error)
	PutSlot(ctx context.Context, key, value string) error
}

// PasswordHasher derives and verifies stored password hashes on the server.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}
