package http

import (
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/service"
)

// defaultMaxRowBytes caps the body of a single pushed row.
const defaultMaxRowBytes = 1 << 20

// Handler serves the sync API: accounts, the per-owner collections and the
// server info endpoint.
type Handler struct {
	services    *service.Services
	maxRowBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("sync API handler created")
	return &Handler{
		services:    services,
		maxRowBytes: defaultMaxRowBytes,
		logger:      logger,
	}
}
