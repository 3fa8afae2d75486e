package http

import (
	"net/http"

	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
)

// getServerInfo reports the server version together with the snapshot
// format and the sync collections it serves.
func (h *Handler) getServerInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())
	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		h.logger.Err(err).Str("func", "*Handler.getServerInfo").Msg("writing server info")
	}
}
