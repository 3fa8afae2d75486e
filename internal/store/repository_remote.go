// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// remoteRepository is the PostgreSQL mirror of the syncable tables.
//
// Pushes are upserts keyed by id. An upsert only replaces an existing row
// when it belongs to the same owner and its updated_at is not newer than
// the incoming one, so a stale device never overwrites a fresher copy.
type remoteRepository struct {
	sqlRepository
	logger *logger.Logger
}

// NewRemoteRepository constructs a [RemoteRepository] over a PostgreSQL pool.
func NewRemoteRepository(db *DB, logger *logger.Logger) RemoteRepository {
	logger.Debug().Msg("creating remote repository")
	return &remoteRepository{
		sqlRepository: sqlRepository{db: db, conn: db.DB},
		logger:        logger,
	}
}

func (r *remoteRepository) PullPrompts(ctx context.Context, ownerID string) ([]models.Prompt, error) {
	q := postgresSQL.Select("id", "owner_id", "title", "content", "notes", "tag_ids", "folder_id", "created_at", "updated_at").
		From("prompts").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at", "id")
	prompts, err := queryAll(ctx, r.conn, q, "remoteRepository.PullPrompts", scanRemotePrompt)
	return prompts, r.db.markTransient(err)
}

func (r *remoteRepository) PullTags(ctx context.Context, ownerID string) ([]models.Tag, error) {
	q := postgresSQL.Select("id", "owner_id", "name", "created_at", "updated_at").
		From("tags").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at", "id")
	tags, err := queryAll(ctx, r.conn, q, "remoteRepository.PullTags", func(row rowScanner) (models.Tag, error) {
		var (
			t     models.Tag
			owner string
		)
		err := row.Scan(&t.ID, &owner, &t.Name, &t.CreatedAt, &t.UpdatedAt)
		t.OwnerID = &owner
		t.CreatedAt = t.CreatedAt.UTC()
		t.UpdatedAt = t.UpdatedAt.UTC()
		return t, err
	})
	return tags, r.db.markTransient(err)
}

func (r *remoteRepository) PullFolders(ctx context.Context, ownerID string) ([]models.Folder, error) {
	q := postgresSQL.Select("id", "owner_id", "name", "parent_id", "created_at", "updated_at").
		From("folders").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at", "id")
	folders, err := queryAll(ctx, r.conn, q, "remoteRepository.PullFolders", func(row rowScanner) (models.Folder, error) {
		var (
			f      models.Folder
			owner  string
			parent sql.NullString
		)
		err := row.Scan(&f.ID, &owner, &f.Name, &parent, &f.CreatedAt, &f.UpdatedAt)
		f.OwnerID = &owner
		f.ParentID = stringPtr(parent)
		f.CreatedAt = f.CreatedAt.UTC()
		f.UpdatedAt = f.UpdatedAt.UTC()
		return f, err
	})
	return folders, r.db.markTransient(err)
}

func (r *remoteRepository) PullVersions(ctx context.Context, ownerID string) ([]models.PromptVersion, error) {
	q := postgresSQL.Select("id", "prompt_id", "owner_id", "content", "notes", "commit_message", "created_at").
		From("prompt_versions").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at", "id")
	versions, err := queryAll(ctx, r.conn, q, "remoteRepository.PullVersions", func(row rowScanner) (models.PromptVersion, error) {
		var (
			v     models.PromptVersion
			owner string
		)
		err := row.Scan(&v.ID, &v.PromptID, &owner, &v.Content, &v.Notes, &v.CommitMessage, &v.CreatedAt)
		v.OwnerID = &owner
		v.CreatedAt = v.CreatedAt.UTC()
		return v, err
	})
	return versions, r.db.markTransient(err)
}

func (r *remoteRepository) PushPrompt(ctx context.Context, p models.Prompt) error {
	if p.OwnerID == nil {
		return fmt.Errorf("%w: prompt %s has no owner", ErrExecutingStatement, p.ID)
	}

	tagIDs := p.TagIDs
	if tagIDs == nil {
		tagIDs = []string{}
	}
	tags, err := json.Marshal(tagIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarshallingColumn, err)
	}

	q := postgresSQL.Insert("prompts").
		Columns("id", "owner_id", "title", "content", "notes", "tag_ids", "folder_id", "created_at", "updated_at").
		Values(p.ID, *p.OwnerID, p.Title, p.Content, p.Notes, string(tags), nullableString(p.FolderID),
			p.CreatedAt.UTC(), p.UpdatedAt.UTC()).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			notes = EXCLUDED.notes,
			tag_ids = EXCLUDED.tag_ids,
			folder_id = EXCLUDED.folder_id,
			updated_at = EXCLUDED.updated_at
		WHERE prompts.owner_id = EXCLUDED.owner_id AND prompts.updated_at <= EXCLUDED.updated_at`)
	_, err = r.exec(ctx, q, "remoteRepository.PushPrompt")
	return err
}

func (r *remoteRepository) PushTag(ctx context.Context, t models.Tag) error {
	if t.OwnerID == nil {
		return fmt.Errorf("%w: tag %s has no owner", ErrExecutingStatement, t.ID)
	}

	q := postgresSQL.Insert("tags").
		Columns("id", "owner_id", "name", "created_at", "updated_at").
		Values(t.ID, *t.OwnerID, t.Name, t.CreatedAt.UTC(), t.UpdatedAt.UTC()).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = EXCLUDED.updated_at
		WHERE tags.owner_id = EXCLUDED.owner_id AND tags.updated_at <= EXCLUDED.updated_at`)
	_, err := r.exec(ctx, q, "remoteRepository.PushTag")
	return err
}

func (r *remoteRepository) PushFolder(ctx context.Context, f models.Folder) error {
	if f.OwnerID == nil {
		return fmt.Errorf("%w: folder %s has no owner", ErrExecutingStatement, f.ID)
	}

	q := postgresSQL.Insert("folders").
		Columns("id", "owner_id", "name", "parent_id", "created_at", "updated_at").
		Values(f.ID, *f.OwnerID, f.Name, nullableString(f.ParentID), f.CreatedAt.UTC(), f.UpdatedAt.UTC()).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			parent_id = EXCLUDED.parent_id,
			updated_at = EXCLUDED.updated_at
		WHERE folders.owner_id = EXCLUDED.owner_id AND folders.updated_at <= EXCLUDED.updated_at`)
	_, err := r.exec(ctx, q, "remoteRepository.PushFolder")
	return err
}

// PushVersion inserts a version; for an existing id only the commit message
// can change.
func (r *remoteRepository) PushVersion(ctx context.Context, v models.PromptVersion) error {
	if v.OwnerID == nil {
		return fmt.Errorf("%w: version %s has no owner", ErrExecutingStatement, v.ID)
	}

	q := postgresSQL.Insert("prompt_versions").
		Columns("id", "prompt_id", "owner_id", "content", "notes", "commit_message", "created_at").
		Values(v.ID, v.PromptID, *v.OwnerID, v.Content, v.Notes, v.CommitMessage, v.CreatedAt.UTC()).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			commit_message = EXCLUDED.commit_message
		WHERE prompt_versions.owner_id = EXCLUDED.owner_id`)
	_, err := r.exec(ctx, q, "remoteRepository.PushVersion")
	return err
}

// Delete removes one entity of ownerID. Deleting a prompt also removes its
// versions, atomically. Deleting something that is already gone succeeds.
func (r *remoteRepository) Delete(ctx context.Context, kind models.EntityKind, ownerID, id string) error {
	log := logger.FromContext(ctx)

	if kind != models.KindPrompt {
		table, err := remoteTable(kind)
		if err != nil {
			return err
		}
		_, err = r.exec(ctx, postgresSQL.Delete(table).Where(sq.Eq{"id": id, "owner_id": ownerID}), "remoteRepository.Delete")
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "remoteRepository.Delete").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, r.db.markTransient(err))
	}
	defer tx.Rollback() //nolint:errcheck

	inTx := sqlRepository{db: r.db, conn: tx}
	if _, err = inTx.exec(ctx, postgresSQL.Delete("prompt_versions").Where(sq.Eq{"prompt_id": id, "owner_id": ownerID}), "remoteRepository.Delete"); err != nil {
		return err
	}
	if _, err = inTx.exec(ctx, postgresSQL.Delete("prompts").Where(sq.Eq{"id": id, "owner_id": ownerID}), "remoteRepository.Delete"); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "remoteRepository.Delete").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, r.db.markTransient(err))
	}
	return nil
}

func remoteTable(kind models.EntityKind) (string, error) {
	switch kind {
	case models.KindPrompt:
		return "prompts", nil
	case models.KindTag:
		return "tags", nil
	case models.KindFolder:
		return "folders", nil
	case models.KindVersion:
		return "prompt_versions", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

func scanRemotePrompt(row rowScanner) (models.Prompt, error) {
	var (
		p      models.Prompt
		owner  string
		tags   []byte
		folder sql.NullString
	)
	if err := row.Scan(&p.ID, &owner, &p.Title, &p.Content, &p.Notes, &tags, &folder, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return models.Prompt{}, err
	}
	p.TagIDs = []string{}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &p.TagIDs); err != nil {
			return models.Prompt{}, fmt.Errorf("%w: %w", ErrMarshallingColumn, err)
		}
	}
	p.OwnerID = &owner
	p.FolderID = stringPtr(folder)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}
