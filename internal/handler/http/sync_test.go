package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-prompt-keeper/internal/app"
	"github.com/MKhiriev/go-prompt-keeper/internal/service"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

func TestPull(t *testing.T) {
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("prompts", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.expectToken()
		f.sync.EXPECT().PullPrompts(gomock.Any(), testOwner).
			Return([]models.Prompt{{ID: "p1", Title: "Greeting", TagIDs: []string{"t1"}, UpdatedAt: updated}}, nil)

		res := f.serve(t, http.MethodGet, "/api/sync/prompts", "")
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

		var got []models.Prompt
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "p1", got[0].ID)
		assert.True(t, updated.Equal(got[0].UpdatedAt))
	})

	t.Run("empty collection is an empty array", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.expectToken()
		f.sync.EXPECT().PullVersions(gomock.Any(), testOwner).Return(nil, nil)

		res := f.serve(t, http.MethodGet, "/api/sync/versions", "")
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `[]`, readBody(t, res))
	})

	t.Run("owner from query", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.expectToken()
		f.sync.EXPECT().PullFolders(gomock.Any(), "owner-2").Return(nil, service.ErrUnauthorizedAccessToDifferentUserData)

		res := f.serve(t, http.MethodGet, "/api/sync/folders?owner_id=owner-2", "")
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
		assert.JSONEq(t, `{"error":"`+app.MsgAccessDenied+`"}`, readBody(t, res))
	})

	t.Run("unknown collection", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.expectToken()

		res := f.serve(t, http.MethodGet, "/api/sync/presets", "")
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.JSONEq(t, `{"error":"`+app.MsgUnknownCollection+`"}`, readBody(t, res))
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.expectToken()
		f.sync.EXPECT().PullTags(gomock.Any(), testOwner).Return(nil, errors.New("conn reset"))

		res := f.serve(t, http.MethodGet, "/api/sync/tags", "")
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	})

	t.Run("transient storage failure", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.expectToken()
		f.sync.EXPECT().PullTags(gomock.Any(), testOwner).
			Return(nil, fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrTransient))

		res := f.serve(t, http.MethodGet, "/api/sync/tags", "")
		assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
		assert.JSONEq(t, `{"error":"`+app.MsgStorageUnavailable+`"}`, readBody(t, res))
	})
}

func TestPush(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		setup      func(f handlerFixture)
		wantStatus int
		wantError  string
	}{
		{
			name:   "prompt",
			target: "/api/sync/prompts/p1",
			body:   `{"id":"p1","title":"Greeting","content":"Hello","tag_ids":[],"folder_id":null}`,
			setup: func(f handlerFixture) {
				f.sync.EXPECT().PushPrompt(gomock.Any(), gomock.Cond(func(p models.Prompt) bool {
					return p.ID == "p1" && p.Content == "Hello"
				})).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "id is taken from the path",
			target: "/api/sync/tags/t1",
			body:   `{"name":"work"}`,
			setup: func(f handlerFixture) {
				f.sync.EXPECT().PushTag(gomock.Any(), gomock.Cond(func(tag models.Tag) bool {
					return tag.ID == "t1" && tag.Name == "work"
				})).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "version",
			target: "/api/sync/versions/v1",
			body:   `{"id":"v1","prompt_id":"p1","content":"Hello"}`,
			setup: func(f handlerFixture) {
				f.sync.EXPECT().PushVersion(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "id mismatch",
			target:     "/api/sync/folders/f1",
			body:       `{"id":"f2","name":"Drafts"}`,
			setup:      func(handlerFixture) {},
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgIDMismatch,
		},
		{
			name:       "malformed body",
			target:     "/api/sync/prompts/p1",
			body:       `{"id":`,
			setup:      func(handlerFixture) {},
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidDataProvided,
		},
		{
			name:   "foreign row",
			target: "/api/sync/folders/f1",
			body:   `{"id":"f1","owner_id":"owner-2","name":"Drafts"}`,
			setup: func(f handlerFixture) {
				f.sync.EXPECT().PushFolder(gomock.Any(), gomock.Any()).Return(service.ErrUnauthorizedAccessToDifferentUserData)
			},
			wantStatus: http.StatusForbidden,
			wantError:  app.MsgAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.expectToken()
			tt.setup(f)

			res := f.serve(t, http.MethodPut, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
			if tt.wantError != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantError+`"}`, readBody(t, res))
			}
		})
	}
}

func TestDelete(t *testing.T) {
	t.Run("owner from token", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.expectToken()
		f.sync.EXPECT().Delete(gomock.Any(), models.KindPrompt, testOwner, "p1").Return(nil)

		res := f.serve(t, http.MethodDelete, "/api/sync/prompts/p1", "")
		assert.Equal(t, http.StatusNoContent, res.StatusCode)
	})

	t.Run("foreign owner", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.expectToken()
		f.sync.EXPECT().Delete(gomock.Any(), models.KindTag, "owner-2", "t1").Return(service.ErrUnauthorizedAccessToDifferentUserData)

		res := f.serve(t, http.MethodDelete, "/api/sync/tags/t1?owner_id=owner-2", "")
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("unknown collection", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.expectToken()

		res := f.serve(t, http.MethodDelete, "/api/sync/credentials/c1", "")
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

func TestPush_RowTooLarge(t *testing.T) {
	f := newHandlerFixture(t)
	f.h.maxRowBytes = 32
	f.expectToken()

	res := f.serve(t, http.MethodPut, "/api/sync/prompts/p1", `{"id":"p1","title":"Greeting","content":"`+strings.Repeat("x", 64)+`"}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.JSONEq(t, `{"error":"`+app.MsgInvalidDataProvided+`"}`, readBody(t, res))
}
