package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

func TestGetServerInfo(t *testing.T) {
	f := newHandlerFixture(t)
	want := models.AppInfo{Version: "1.2.3", SnapshotFormat: 1, Collections: []string{"folders", "tags", "prompts", "versions"}}
	f.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(want)

	rec := httptest.NewRecorder()
	f.h.getServerInfo(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var got models.AppInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}
