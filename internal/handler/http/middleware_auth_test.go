package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-prompt-keeper/internal/app"
	"github.com/MKhiriev/go-prompt-keeper/internal/service"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "no token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		wantStatus int
		wantError  string
	}{
		{name: "valid token", header: "Bearer " + testToken, wantStatus: http.StatusOK},
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantError: ErrEmptyAuthorizationHeader.Error()},
		{name: "expired", header: "Bearer " + testToken, parseErr: service.ErrTokenIsExpired, wantStatus: http.StatusUnauthorized, wantError: app.MsgTokenIsExpired},
		{name: "invalid", header: "Bearer " + testToken, parseErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized, wantError: app.MsgTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.header != "" {
				f.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{OwnerID: testOwner}, tt.parseErr)
			}

			var gotOwner string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotOwner, _ = utils.OwnerFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/sync/prompts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			f.h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantError+`"}`, rec.Body.String())
				assert.Empty(t, gotOwner, "следующий обработчик не вызывается")
				return
			}
			assert.Equal(t, testOwner, gotOwner)
		})
	}
}
