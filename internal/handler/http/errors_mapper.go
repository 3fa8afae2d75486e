package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-prompt-keeper/internal/app"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/service"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first matching error wins. The
// messages are what the client maps back onto service errors.
var errorResponses = []struct {
	err      error
	response errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{service.ErrTokenIsExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpired}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrUnauthorizedAccessToDifferentUserData, errorResponse{http.StatusForbidden, app.MsgAccessDenied}},
	{service.ErrLoginAlreadyExists, errorResponse{http.StatusConflict, app.MsgLoginAlreadyExists}},
	{store.ErrLoginAlreadyExists, errorResponse{http.StatusConflict, app.MsgLoginAlreadyExists}},
	{store.ErrUnknownKind, errorResponse{http.StatusNotFound, app.MsgUnknownCollection}},
	{store.ErrTransient, errorResponse{http.StatusServiceUnavailable, app.MsgStorageUnavailable}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.err) {
			return e.response
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeServiceError logs err under fn and answers with its mapped status.
func writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Err(err).Str("func", fn).Int("status", resp.status)
	if resp.status >= http.StatusInternalServerError {
		event.Msg("request failed")
	} else {
		event.Msg("request rejected")
	}

	utils.WriteError(w, resp.message, resp.status)
}
