package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
)

func TestWithTraceID(t *testing.T) {
	known := uuid.NewString()

	tests := []struct {
		name      string
		header    string
		wantKnown bool
	}{
		{name: "generated when missing"},
		{name: "caller id is kept", header: known, wantKnown: true},
		{name: "garbage is replaced", header: "<script>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			traceID := rec.Header().Get(traceIDHeader)
			_, err := uuid.Parse(traceID)
			require.NoError(t, err)
			if tt.wantKnown {
				assert.Equal(t, known, traceID)
			}
			assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
		})
	}
}
