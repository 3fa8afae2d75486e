package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// Sync routes:
//
//	GET    /api/sync/{collection}?owner_id=...
//	PUT    /api/sync/{collection}/{id}
//	DELETE /api/sync/{collection}/{id}?owner_id=...
const syncPath = "/api/sync/"

func collectionPath(kind models.EntityKind) string {
	return syncPath + kind.Collection()
}

func rowPath(kind models.EntityKind, id string) string {
	return collectionPath(kind) + "/" + url.PathEscape(id)
}

func (h *httpServerAdapter) PullPrompts(ctx context.Context, ownerID string) ([]models.Prompt, error) {
	return pull[models.Prompt](ctx, h, models.KindPrompt, ownerID)
}

func (h *httpServerAdapter) PullTags(ctx context.Context, ownerID string) ([]models.Tag, error) {
	return pull[models.Tag](ctx, h, models.KindTag, ownerID)
}

func (h *httpServerAdapter) PullFolders(ctx context.Context, ownerID string) ([]models.Folder, error) {
	return pull[models.Folder](ctx, h, models.KindFolder, ownerID)
}

func (h *httpServerAdapter) PullVersions(ctx context.Context, ownerID string) ([]models.PromptVersion, error) {
	return pull[models.PromptVersion](ctx, h, models.KindVersion, ownerID)
}

func (h *httpServerAdapter) PushPrompt(ctx context.Context, prompt models.Prompt) error {
	return h.push(ctx, models.KindPrompt, prompt.ID, prompt)
}

func (h *httpServerAdapter) PushTag(ctx context.Context, tag models.Tag) error {
	return h.push(ctx, models.KindTag, tag.ID, tag)
}

func (h *httpServerAdapter) PushFolder(ctx context.Context, folder models.Folder) error {
	return h.push(ctx, models.KindFolder, folder.ID, folder)
}

func (h *httpServerAdapter) PushVersion(ctx context.Context, version models.PromptVersion) error {
	return h.push(ctx, models.KindVersion, version.ID, version)
}

// Delete implements [ServerAdapter]. It sends DELETE /api/sync/{collection}/{id}.
func (h *httpServerAdapter) Delete(ctx context.Context, kind models.EntityKind, ownerID, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetQueryParam("owner_id", ownerID).
		Delete(rowPath(kind, id))
	if err != nil {
		return fmt.Errorf("delete %s request: %w", kind, err)
	}

	return mapHTTPError(resp)
}

// pull GETs a whole collection of ownerID. The server answers 403 when
// ownerID is not the token's subject.
func pull[T any](ctx context.Context, h *httpServerAdapter, kind models.EntityKind, ownerID string) ([]T, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParam("owner_id", ownerID).
		Get(collectionPath(kind))
	if err != nil {
		return nil, fmt.Errorf("pull %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	rows := make([]T, 0)
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode pull %s response: %w", kind, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "httpServerAdapter.pull").
		Str("kind", string(kind)).
		Int("rows", len(rows)).
		Msg("collection pulled")

	return rows, nil
}

func (h *httpServerAdapter) push(ctx context.Context, kind models.EntityKind, id string, row any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(row).
		Put(rowPath(kind, id))
	if err != nil {
		return fmt.Errorf("push %s request: %w", kind, err)
	}

	return mapHTTPError(resp)
}
