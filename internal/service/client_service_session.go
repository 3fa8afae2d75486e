package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// sessionService keeps the sync account of this device. The token and the
// owner id live in device slots, so a restarted client resumes the session
// without asking for the password again.
type sessionService struct {
	local *store.LocalStore
	auth  Authenticator
}

func NewSessionService(local *store.LocalStore, auth Authenticator) SessionService {
	return &sessionService{local: local, auth: auth}
}

func (s *sessionService) Register(ctx context.Context, login, password string) (string, error) {
	if s.auth == nil {
		return "", ErrNoSyncServer
	}
	user, err := credentialsToUser(login, password)
	if err != nil {
		return "", err
	}

	token, err := s.auth.Register(ctx, user)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return s.save(ctx, token)
}

func (s *sessionService) Login(ctx context.Context, login, password string) (string, error) {
	if s.auth == nil {
		return "", ErrNoSyncServer
	}
	user, err := credentialsToUser(login, password)
	if err != nil {
		return "", err
	}

	token, err := s.auth.Login(ctx, user)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return s.save(ctx, token)
}

func (s *sessionService) Logout(ctx context.Context) error {
	if s.auth != nil {
		s.auth.SetToken("")
	}
	err := s.local.Transaction(ctx, []store.Table{store.TableDeviceSlots}, func(ctx context.Context, tx *store.Tx) error {
		if err := tx.Slots().DeleteSlot(ctx, store.SlotSessionToken); err != nil {
			return err
		}
		return tx.Slots().DeleteSlot(ctx, store.SlotOwnerID)
	})
	return txError(err)
}

func (s *sessionService) Restore(ctx context.Context) (string, bool, error) {
	token, ok, err := s.local.Slots().GetSlot(ctx, store.SlotSessionToken)
	if err != nil || !ok {
		return "", false, err
	}
	ownerID, ok, err := s.local.Slots().GetSlot(ctx, store.SlotOwnerID)
	if err != nil || !ok {
		return "", false, err
	}

	if s.auth != nil {
		s.auth.SetToken(token)
	}
	return ownerID, true, nil
}

func (s *sessionService) save(ctx context.Context, token string) (string, error) {
	ownerID, err := utils.ParseOwnerIDFromJWT(token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.save").Msg("server returned unusable token")
		return "", fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	err = s.local.Transaction(ctx, []store.Table{store.TableDeviceSlots}, func(ctx context.Context, tx *store.Tx) error {
		if err := tx.Slots().PutSlot(ctx, store.SlotSessionToken, token); err != nil {
			return err
		}
		return tx.Slots().PutSlot(ctx, store.SlotOwnerID, ownerID)
	})
	if err != nil {
		return "", txError(err)
	}

	s.auth.SetToken(token)
	return ownerID, nil
}

func credentialsToUser(login, password string) (models.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	return models.User{Login: login, Password: password}, nil
}
