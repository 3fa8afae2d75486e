// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-prompt-keeper/internal/crypto"
	"github.com/MKhiriev/go-prompt-keeper/internal/events"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// credentialService keeps the "exactly one active credential" rule: every
// mutation that can change the active flag does all of its flips inside
// one transaction.
type credentialService struct {
	localDeps
	cipher crypto.SecretCipher
}

func NewCredentialService(local *store.LocalStore, cipher crypto.SecretCipher, bus *events.Bus) CredentialService {
	return &credentialService{localDeps: newLocalDeps(local, nil, bus), cipher: cipher}
}

// AddCredential encrypts secret and stores it. The first credential
// becomes active.
func (s *credentialService) AddCredential(ctx context.Context, name, secret string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	name, err := requireName(name, "credential name")
	if err != nil {
		return models.Credential{}, err
	}
	if secret == "" {
		return models.Credential{}, fmt.Errorf("%w: secret must not be empty", ErrInvalidInput)
	}

	if _, ok, err := s.local.Credentials().FindByName(ctx, name); err != nil {
		return models.Credential{}, err
	} else if ok {
		return models.Credential{}, fmt.Errorf("%w: %q", ErrDuplicateCredentialName, name)
	}

	encrypted, err := s.cipher.Encrypt(ctx, secret)
	if err != nil {
		log.Err(err).Str("func", "credentialService.AddCredential").Msg("failed to encrypt secret")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrCipherFailure, err)
	}

	credential := models.Credential{
		ID:              s.ids.Generate(),
		Name:            name,
		EncryptedSecret: encrypted,
		CreatedAt:       utils.Now(),
	}
	err = s.local.Transaction(ctx, []store.Table{store.TableCredentials}, func(ctx context.Context, tx *store.Tx) error {
		_, hasActive, err := tx.Credentials().GetActive(ctx)
		if err != nil {
			return err
		}
		credential.IsActive = !hasActive
		return tx.Credentials().Put(ctx, credential)
	})
	if errors.Is(err, store.ErrUniqueViolation) {
		return models.Credential{}, fmt.Errorf("%w: %q", ErrDuplicateCredentialName, name)
	}
	if err != nil {
		log.Err(err).Str("func", "credentialService.AddCredential").Msg("failed to store credential")
		return models.Credential{}, txError(err)
	}

	s.publish(ctx, models.KindCredential, models.OpCreated, credential.ID)
	return credential, nil
}

func (s *credentialService) ActivateCredential(ctx context.Context, id string) error {
	err := s.local.Transaction(ctx, []store.Table{store.TableCredentials}, func(ctx context.Context, tx *store.Tx) error {
		credential, ok, err := tx.Credentials().Get(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: credential %s", ErrNotFound, id)
		}
		if credential.IsActive {
			return nil
		}

		if err = tx.Credentials().DeactivateAll(ctx); err != nil {
			return err
		}
		credential.IsActive = true
		return tx.Credentials().Put(ctx, credential)
	})
	if err != nil {
		return txError(err)
	}

	s.publish(ctx, models.KindCredential, models.OpUpdated, id)
	return nil
}

// DeleteCredential removes a credential. When it was the active one the
// newest remaining credential takes over.
func (s *credentialService) DeleteCredential(ctx context.Context, id string) error {
	var promoted string
	err := s.local.Transaction(ctx, []store.Table{store.TableCredentials}, func(ctx context.Context, tx *store.Tx) error {
		credential, ok, err := tx.Credentials().Get(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: credential %s", ErrNotFound, id)
		}

		if err = tx.Credentials().Delete(ctx, id); err != nil {
			return err
		}
		if !credential.IsActive {
			return nil
		}

		remaining, err := tx.Credentials().List(ctx)
		if err != nil || len(remaining) == 0 {
			return err
		}
		next := remaining[0]
		next.IsActive = true
		promoted = next.ID
		return tx.Credentials().Put(ctx, next)
	})
	if err != nil {
		return txError(err)
	}

	s.publish(ctx, models.KindCredential, models.OpDeleted, id)
	if promoted != "" {
		s.publish(ctx, models.KindCredential, models.OpUpdated, promoted)
	}
	return nil
}

func (s *credentialService) ListCredentials(ctx context.Context) ([]models.Credential, error) {
	return s.local.Credentials().List(ctx)
}

func (s *credentialService) ActiveSecret(ctx context.Context) (string, bool, error) {
	credential, ok, err := s.local.Credentials().GetActive(ctx)
	if err != nil || !ok {
		return "", false, err
	}

	secret, err := s.cipher.Decrypt(ctx, credential.EncryptedSecret)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialService.ActiveSecret").
			Str("credential", credential.Name).
			Msg("failed to decrypt credential")
		return "", false, fmt.Errorf("%w: %q: %w", ErrCipherFailure, credential.Name, err)
	}
	return secret, true, nil
}
