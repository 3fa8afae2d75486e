package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-prompt-keeper/internal/app"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/service"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// collectionKind resolves the {collection} path parameter.
func collectionKind(r *http.Request) (models.EntityKind, error) {
	kind, err := models.ParseCollection(chi.URLParam(r, "collection"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", store.ErrUnknownKind, err)
	}
	return kind, nil
}

// requestedOwner is the owner_id query parameter, defaulting to the owner
// of the token. A different owner is refused by the service.
func requestedOwner(r *http.Request) string {
	if owner := r.URL.Query().Get("owner_id"); owner != "" {
		return owner
	}
	owner, _ := utils.OwnerFromContext(r.Context())
	return owner
}

// pull answers GET /api/sync/{collection} with every row of the owner.
func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sync := h.services.RemoteSyncService

	kind, err := collectionKind(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.pull", err)
		return
	}
	owner := requestedOwner(r)

	var rows any
	switch kind {
	case models.KindPrompt:
		rows, err = nonNil(sync.PullPrompts(ctx, owner))
	case models.KindTag:
		rows, err = nonNil(sync.PullTags(ctx, owner))
	case models.KindFolder:
		rows, err = nonNil(sync.PullFolders(ctx, owner))
	case models.KindVersion:
		rows, err = nonNil(sync.PullVersions(ctx, owner))
	}
	if err != nil {
		writeServiceError(w, r, "*Handler.pull", err)
		return
	}

	if _, err = utils.WriteJSON(w, rows, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.pull").Msg("failed to write response")
	}
}

// nonNil makes an empty collection encode as [] rather than null.
func nonNil[T any](rows []T, err error) ([]T, error) {
	if rows == nil {
		rows = []T{}
	}
	return rows, err
}

// push handles PUT /api/sync/{collection}/{id}. An empty id in the body is
// taken from the path; a different one is rejected.
func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sync := h.services.RemoteSyncService
	id := chi.URLParam(r, "id")

	kind, err := collectionKind(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.push", err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRowBytes)

	switch kind {
	case models.KindPrompt:
		err = pushRow(ctx, r, id, func(p *models.Prompt) *string { return &p.ID }, sync.PushPrompt)
	case models.KindTag:
		err = pushRow(ctx, r, id, func(t *models.Tag) *string { return &t.ID }, sync.PushTag)
	case models.KindFolder:
		err = pushRow(ctx, r, id, func(f *models.Folder) *string { return &f.ID }, sync.PushFolder)
	case models.KindVersion:
		err = pushRow(ctx, r, id, func(v *models.PromptVersion) *string { return &v.ID }, sync.PushVersion)
	}
	if err != nil {
		if errors.Is(err, errIDMismatch) {
			logger.FromRequest(r).Warn().Str("func", "*Handler.push").Str("id", id).Msg(app.MsgIDMismatch)
			utils.WriteError(w, app.MsgIDMismatch, http.StatusBadRequest)
			return
		}
		writeServiceError(w, r, "*Handler.push", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

var errIDMismatch = errors.New(app.MsgIDMismatch)

func pushRow[T any](ctx context.Context, r *http.Request, id string, idOf func(*T) *string, push func(context.Context, T) error) error {
	var row T
	if err := utils.DecodeJSON(r, &row); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}

	rowID := idOf(&row)
	switch *rowID {
	case "":
		*rowID = id
	case id:
	default:
		return errIDMismatch
	}

	return push(ctx, row)
}

// delete handles DELETE /api/sync/{collection}/{id}. Deleting a row that is
// already gone succeeds.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	kind, err := collectionKind(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.delete", err)
		return
	}

	err = h.services.RemoteSyncService.Delete(r.Context(), kind, requestedOwner(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.delete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
