package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/mock"
	"github.com/MKhiriev/go-prompt-keeper/internal/service"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

const (
	testOwner = "owner-1"
	testToken = "signed.jwt.token"
)

type handlerFixture struct {
	h       *Handler
	auth    *mock.MockAuthService
	sync    *mock.MockRemoteSyncService
	appInfo *mock.MockAppInfoService
}

func newHandlerFixture(t *testing.T) handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := handlerFixture{
		auth:    mock.NewMockAuthService(ctrl),
		sync:    mock.NewMockRemoteSyncService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	f.h = NewHandler(&service.Services{
		AuthService:       f.auth,
		RemoteSyncService: f.sync,
		AppInfoService:    f.appInfo,
	}, logger.Nop())
	return f
}

// expectToken makes testToken resolve to testOwner.
func (f handlerFixture) expectToken() {
	f.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{OwnerID: testOwner}, nil)
}

// serve runs a request through the full router.
func (f handlerFixture) serve(t *testing.T, method, target, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	f.h.Init().ServeHTTP(rec, req)

	res := rec.Result()
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(b)
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, log)
	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
}

func TestRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		setup      func(f handlerFixture)
		wantStatus int
	}{
		{
			name:   "version is public",
			method: http.MethodGet,
			target: "/api/version",
			setup: func(f handlerFixture) {
				f.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{Version: "1.0.0"})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "sync requires a token",
			method: http.MethodGet,
			target: "/api/sync/prompts",
			setup: func(f handlerFixture) {
				f.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "pull",
			method: http.MethodGet,
			target: "/api/sync/tags",
			setup: func(f handlerFixture) {
				f.expectToken()
				f.sync.EXPECT().PullTags(gomock.Any(), testOwner).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/sync/folders/f1",
			setup: func(f handlerFixture) {
				f.expectToken()
				f.sync.EXPECT().Delete(gomock.Any(), models.KindFolder, testOwner, "f1").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "unknown path",
			method:     http.MethodGet,
			target:     "/api/unknown",
			setup:      func(handlerFixture) {},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unsupported method is hidden",
			method:     http.MethodPatch,
			target:     "/api/sync/prompts/p1",
			setup:      func(handlerFixture) {},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "get on register",
			method:     http.MethodGet,
			target:     "/api/user/register",
			setup:      func(handlerFixture) {},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			tt.setup(f)

			res := f.serve(t, tt.method, tt.target, "")
			assert.Equal(t, tt.wantStatus, res.StatusCode)
			assert.NotEmpty(t, res.Header.Get(traceIDHeader), "каждый ответ несёт trace id")
		})
	}
}
