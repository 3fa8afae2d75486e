package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prompt-keeper/internal/config"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/service"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Server
		wantErr error
	}{
		{name: "http address", cfg: config.Server{HTTPAddress: ":8080"}},
		{name: "no address", cfg: config.Server{}, wantErr: errNoSyncAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// http.NewHandler only keeps the pointer, nil services are fine here
			h, err := NewHandlers((*service.Services)(nil), tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, h.HTTP)
		})
	}
}
