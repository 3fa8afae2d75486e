package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
)

func TestAccessLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLevel(http.StatusNoContent))
	assert.Equal(t, zerolog.WarnLevel, accessLevel(http.StatusNotFound))
	assert.Equal(t, zerolog.ErrorLevel, accessLevel(http.StatusBadGateway))
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}
	assert.Equal(t, http.StatusOK, rw.Status(), "ничего не записано")

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusTeapot)
	_, err := rw.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rw.Status())
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 5, rw.size)
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	h := &Handler{logger: log}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("gone"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/sync/prompts?owner_id=x", nil)
	req = req.WithContext(log.WithContext(req.Context()))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, http.MethodGet, line["method"])
	assert.Equal(t, "/api/sync/prompts?owner_id=x", line["uri"])
	assert.EqualValues(t, http.StatusNotFound, line["status"])
	assert.EqualValues(t, 4, line["size"])
	assert.Contains(t, line, "duration")
}
