// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-prompt-keeper/internal/service"
)

// humanizeError turns service errors into short messages for the status
// line.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongPassword):
		return "Неверный логин или пароль"
	case errors.Is(err, service.ErrLoginAlreadyExists):
		return "Логин уже занят"
	case errors.Is(err, service.ErrTokenIsExpired), errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Сессия истекла, войдите снова"
	case errors.Is(err, service.ErrNoSyncServer):
		return "Сервер синхронизации не настроен"
	case errors.Is(err, service.ErrNotFound):
		return "Запись не найдена"
	case errors.Is(err, service.ErrDuplicateTagName):
		return "Такой тег уже есть"
	case errors.Is(err, service.ErrInvalidInput):
		return "Проверьте заполненные поля"
	case errors.Is(err, service.ErrSyncFailure):
		if serverUnavailable(err) {
			return "Отсутствует сеть или Сервер недоступен"
		}
		return "Ошибка синхронизации: изменения сохранены локально"
	}
	return err.Error()
}

func serverUnavailable(err error) bool {
	s := strings.ToLower(err.Error())
	for _, marker := range []string{
		"connection refused",
		"dial tcp",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"context deadline exceeded",
	} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
