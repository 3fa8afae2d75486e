package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

var promptColumns = []string{
	"id", "owner_id", "title", "content", "notes", "folder_id",
	"created_at", "updated_at", "last_synced_at",
}

type promptRepository struct {
	sqlRepository
}

func newPromptRepository(db *DB, conn DBTX) PromptRepository {
	return &promptRepository{sqlRepository{db: db, conn: conn}}
}

// Put upserts the prompt row and replaces its tag links, keeping the order
// of p.TagIDs.
func (r *promptRepository) Put(ctx context.Context, p models.Prompt) error {
	if _, err := r.exec(ctx, buildUpsertPromptQuery(p), "promptRepository.Put"); err != nil {
		return err
	}

	if _, err := r.exec(ctx, sqliteSQL.Delete("prompt_tags").Where(sq.Eq{"prompt_id": p.ID}), "promptRepository.Put"); err != nil {
		return err
	}

	if len(p.TagIDs) == 0 {
		return nil
	}

	links := sqliteSQL.Insert("prompt_tags").Columns("prompt_id", "tag_id", "position")
	for i, tagID := range p.TagIDs {
		links = links.Values(p.ID, tagID, i)
	}
	_, err := r.exec(ctx, links, "promptRepository.Put")
	return err
}

func (r *promptRepository) Get(ctx context.Context, id string) (models.Prompt, bool, error) {
	prompts, err := r.list(ctx, sq.Eq{"id": id}, "promptRepository.Get")
	if err != nil || len(prompts) == 0 {
		return models.Prompt{}, false, err
	}
	return prompts[0], true, nil
}

// List returns the prompts of one owner scope, most recently updated first.
func (r *promptRepository) List(ctx context.Context, ownerID *string, filter models.PromptFilter) ([]models.Prompt, error) {
	where := sq.And{ownerScope(ownerID)}
	if !filter.AllFolders {
		where = append(where, sq.Eq{"folder_id": nullableString(filter.FolderID)})
	}
	if filter.TagID != "" {
		where = append(where, sq.Expr("id IN (SELECT prompt_id FROM prompt_tags WHERE tag_id = ?)", filter.TagID))
	}
	return r.list(ctx, where, "promptRepository.List")
}

func (r *promptRepository) ListByFolders(ctx context.Context, folderIDs []string) ([]models.Prompt, error) {
	if len(folderIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, sq.Eq{"folder_id": folderIDs}, "promptRepository.ListByFolders")
}

func (r *promptRepository) ListByTag(ctx context.Context, tagID string) ([]models.Prompt, error) {
	return r.list(ctx, sq.Expr("id IN (SELECT prompt_id FROM prompt_tags WHERE tag_id = ?)", tagID), "promptRepository.ListByTag")
}

func (r *promptRepository) ListAll(ctx context.Context) ([]models.Prompt, error) {
	return r.list(ctx, nil, "promptRepository.ListAll")
}

func (r *promptRepository) ListPending(ctx context.Context, ownerID string) ([]models.Prompt, error) {
	return r.list(ctx, pendingScope(ownerID), "promptRepository.ListPending")
}

func (r *promptRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.exec(ctx, sqliteSQL.Delete("prompt_tags").Where(sq.Eq{"prompt_id": id}), "promptRepository.Delete"); err != nil {
		return err
	}
	_, err := r.exec(ctx, sqliteSQL.Delete("prompts").Where(sq.Eq{"id": id}), "promptRepository.Delete")
	return err
}

func (r *promptRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.exec(ctx, sqliteSQL.Delete("prompt_tags"), "promptRepository.DeleteAll"); err != nil {
		return err
	}
	_, err := r.exec(ctx, sqliteSQL.Delete("prompts"), "promptRepository.DeleteAll")
	return err
}

func (r *promptRepository) MarkSynced(ctx context.Context, id string, at time.Time) error {
	_, err := r.exec(ctx, buildMarkSyncedQuery("prompts", id, at), "promptRepository.MarkSynced")
	return err
}

// list loads matching prompt rows and then their tag links in one query.
func (r *promptRepository) list(ctx context.Context, where sq.Sqlizer, funcName string) ([]models.Prompt, error) {
	q := sqliteSQL.Select(promptColumns...).From("prompts").OrderBy("updated_at DESC", "id")
	if where != nil {
		q = q.Where(where)
	}

	prompts, err := queryAll(ctx, r.conn, q, funcName, scanPrompt)
	if err != nil || len(prompts) == 0 {
		return prompts, err
	}

	ids := make([]string, len(prompts))
	for i, p := range prompts {
		ids[i] = p.ID
	}

	links, err := queryAll(ctx, r.conn,
		sqliteSQL.Select("prompt_id", "tag_id").From("prompt_tags").
			Where(sq.Eq{"prompt_id": ids}).OrderBy("prompt_id", "position"),
		funcName, scanPromptTag)
	if err != nil {
		return nil, err
	}

	tagsByPrompt := make(map[string][]string, len(prompts))
	for _, l := range links {
		tagsByPrompt[l.promptID] = append(tagsByPrompt[l.promptID], l.tagID)
	}
	for i := range prompts {
		prompts[i].TagIDs = tagsByPrompt[prompts[i].ID]
		if prompts[i].TagIDs == nil {
			prompts[i].TagIDs = []string{}
		}
	}

	return prompts, nil
}

func buildUpsertPromptQuery(p models.Prompt) sq.InsertBuilder {
	return sqliteSQL.Insert("prompts").
		Columns(promptColumns...).
		Values(p.ID, nullableString(p.OwnerID), p.Title, p.Content, p.Notes, nullableString(p.FolderID),
			p.CreatedAt.UTC(), p.UpdatedAt.UTC(), nullableTime(p.LastSyncedAt)).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			title = excluded.title,
			content = excluded.content,
			notes = excluded.notes,
			folder_id = excluded.folder_id,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			last_synced_at = excluded.last_synced_at`)
}

func buildMarkSyncedQuery(table, id string, at time.Time) sq.UpdateBuilder {
	return sqliteSQL.Update(table).Set("last_synced_at", at.UTC()).Where(sq.Eq{"id": id})
}

func scanPrompt(row rowScanner) (models.Prompt, error) {
	var (
		p          models.Prompt
		ownerID    sql.NullString
		folderID   sql.NullString
		lastSynced sql.NullTime
	)
	err := row.Scan(&p.ID, &ownerID, &p.Title, &p.Content, &p.Notes, &folderID,
		&p.CreatedAt, &p.UpdatedAt, &lastSynced)
	if err != nil {
		return models.Prompt{}, err
	}
	p.OwnerID = stringPtr(ownerID)
	p.FolderID = stringPtr(folderID)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	p.LastSyncedAt = timePtr(lastSynced)
	return p, nil
}

type promptTag struct {
	promptID string
	tagID    string
}

func scanPromptTag(row rowScanner) (promptTag, error) {
	var l promptTag
	err := row.Scan(&l.promptID, &l.tagID)
	return l, err
}
