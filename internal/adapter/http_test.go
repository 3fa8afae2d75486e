// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prompt-keeper/internal/config"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// newAuthedAdapter возвращает адаптер с уже установленным токеном
func newAuthedAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := newTestAdapter(t, serverURL)
	a.SetToken("token-abc")
	return a
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "host and port", address: "localhost:8080"},
		{name: "full url", address: "https://sync.example.com/"},
		{name: "empty", address: "  ", wantErr: true},
		{name: "no host", address: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: tt.address}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		var u models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&u))
		assert.Equal(t, "alice", u.Login)
		assert.Equal(t, "secret", u.Password)

		w.Header().Set("Authorization", "Bearer issued-token")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Register(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	assert.Empty(t, a.Token(), "the session layer arms the token, not the adapter")
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "login already exists")
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer login-token")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "login-token", token)
}

func TestLogin_MissingAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse bearer token")
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid login/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice", Password: "bad"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Pull ────────────────────────────────────────────────────────────────────

func TestPullPrompts_Success(t *testing.T) {
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	want := []models.Prompt{{ID: "p1", Title: "hello", TagIDs: []string{"t1"}, CreatedAt: updated, UpdatedAt: updated}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sync/prompts", r.URL.Path)
		assert.Equal(t, "owner-1", r.URL.Query().Get("owner_id"))
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newAuthedAdapter(t, srv.URL)
	got, err := a.PullPrompts(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, []string{"t1"}, got[0].TagIDs)
	assert.True(t, updated.Equal(got[0].UpdatedAt))
}

func TestPull_Collections(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	a := newAuthedAdapter(t, srv.URL)
	ctx := context.Background()

	tags, err := a.PullTags(ctx, "o")
	require.NoError(t, err)
	assert.NotNil(t, tags)
	_, err = a.PullFolders(ctx, "o")
	require.NoError(t, err)
	_, err = a.PullVersions(ctx, "o")
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/sync/tags", "/api/sync/folders", "/api/sync/versions"}, paths)
}

func TestPull_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("access denied"))
	}))
	defer srv.Close()

	a := newAuthedAdapter(t, srv.URL)
	_, err := a.PullTags(context.Background(), "someone-else")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPull_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	a := newAuthedAdapter(t, srv.URL)
	_, err := a.PullFolders(context.Background(), "o")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode pull folder response")
}

func TestSync_WithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.PullPrompts(ctx, "o")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, a.PushTag(ctx, models.Tag{ID: "t"}), ErrUnauthorized)
	assert.ErrorIs(t, a.Delete(ctx, models.KindTag, "o", "t"), ErrUnauthorized)

	// после выхода токен снова пуст
	a.SetToken("x")
	a.SetToken("")
	assert.ErrorIs(t, a.PushTag(ctx, models.Tag{ID: "t"}), ErrUnauthorized)
}

// ── Push / Delete ───────────────────────────────────────────────────────────

func TestPush_Success(t *testing.T) {
	tests := []struct {
		name     string
		push     func(a *httpServerAdapter) error
		wantPath string
		wantID   string
	}{
		{
			name:     "prompt",
			push:     func(a *httpServerAdapter) error { return a.PushPrompt(context.Background(), models.Prompt{ID: "p1"}) },
			wantPath: "/api/sync/prompts/p1",
			wantID:   "p1",
		},
		{
			name:     "tag",
			push:     func(a *httpServerAdapter) error { return a.PushTag(context.Background(), models.Tag{ID: "t1"}) },
			wantPath: "/api/sync/tags/t1",
			wantID:   "t1",
		},
		{
			name:     "folder",
			push:     func(a *httpServerAdapter) error { return a.PushFolder(context.Background(), models.Folder{ID: "f1"}) },
			wantPath: "/api/sync/folders/f1",
			wantID:   "f1",
		},
		{
			name: "version",
			push: func(a *httpServerAdapter) error {
				return a.PushVersion(context.Background(), models.PromptVersion{ID: "v1", PromptID: "p1"})
			},
			wantPath: "/api/sync/versions/v1",
			wantID:   "v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var body struct {
					ID string `json:"id"`
				}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, tt.wantID, body.ID)

				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			require.NoError(t, tt.push(newAuthedAdapter(t, srv.URL)))
		})
	}
}

func TestPush_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	err := newAuthedAdapter(t, srv.URL).PushPrompt(context.Background(), models.Prompt{ID: "p1"})

	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestDelete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/sync/prompts/p%201", r.URL.EscapedPath())
		assert.Equal(t, "owner-1", r.URL.Query().Get("owner_id"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newAuthedAdapter(t, srv.URL).Delete(context.Background(), models.KindPrompt, "owner-1", "p 1")

	assert.NoError(t, err)
}

func TestDelete_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newAuthedAdapter(t, url).Delete(context.Background(), models.KindTag, "o", "t1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete tag request")
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{status: http.StatusForbidden, wantErr: ErrForbidden},
		{status: http.StatusNotFound, wantErr: ErrNotFound},
		{status: http.StatusConflict, wantErr: ErrConflict},
		{status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("details"))
			}))
			defer srv.Close()

			err := newAuthedAdapter(t, srv.URL).PushTag(context.Background(), models.Tag{ID: "t"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), ": details")
		})
	}

	t.Run("unlisted status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
		defer srv.Close()

		err := newAuthedAdapter(t, srv.URL).PushTag(context.Background(), models.Tag{ID: "t"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http 418")
	})
}
