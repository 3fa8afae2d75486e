package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-prompt-keeper/internal/app"
	"github.com/MKhiriev/go-prompt-keeper/internal/service"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		err         error
		wantStatus  int
		wantMessage string
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden, app.MsgAccessDenied},
		{service.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
		{fmt.Errorf("insert: %w", store.ErrLoginAlreadyExists), http.StatusConflict, app.MsgLoginAlreadyExists},
		{fmt.Errorf("%w: presets", store.ErrUnknownKind), http.StatusNotFound, app.MsgUnknownCollection},
		{fmt.Errorf("%w: %w", store.ErrExecutingStatement, store.ErrTransient), http.StatusServiceUnavailable, app.MsgStorageUnavailable},
		{errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			resp := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, tt.wantMessage, resp.message)
		})
	}
}
