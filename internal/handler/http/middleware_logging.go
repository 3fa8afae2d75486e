package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
)

// withLogging writes one access line per request. Server errors are logged
// at error level and rejected requests at warn level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.WithLevel(accessLevel(lw.Status())).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.Status()).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func accessLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
