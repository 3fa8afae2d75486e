package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

var credentialColumns = []string{"id", "name", "encrypted_secret", "created_at", "is_active"}

type credentialRepository struct {
	sqlRepository
}

func newCredentialRepository(db *DB, conn DBTX) CredentialRepository {
	return &credentialRepository{sqlRepository{db: db, conn: conn}}
}

func (r *credentialRepository) Put(ctx context.Context, c models.Credential) error {
	q := sqliteSQL.Insert("credentials").
		Columns(credentialColumns...).
		Values(c.ID, c.Name, c.EncryptedSecret, c.CreatedAt.UTC(), c.IsActive).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			encrypted_secret = excluded.encrypted_secret,
			created_at = excluded.created_at,
			is_active = excluded.is_active`)
	_, err := r.exec(ctx, q, "credentialRepository.Put")
	return err
}

func (r *credentialRepository) Get(ctx context.Context, id string) (models.Credential, bool, error) {
	return queryOne(ctx, r.conn, r.selectCredentials().Where(sq.Eq{"id": id}), "credentialRepository.Get", scanCredential)
}

func (r *credentialRepository) FindByName(ctx context.Context, name string) (models.Credential, bool, error) {
	return queryOne(ctx, r.conn, r.selectCredentials().Where(sq.Eq{"name": name}), "credentialRepository.FindByName", scanCredential)
}

func (r *credentialRepository) GetActive(ctx context.Context) (models.Credential, bool, error) {
	return queryOne(ctx, r.conn, r.selectCredentials().Where(sq.Eq{"is_active": true}), "credentialRepository.GetActive", scanCredential)
}

// List returns credentials newest first.
func (r *credentialRepository) List(ctx context.Context) ([]models.Credential, error) {
	return queryAll(ctx, r.conn, r.selectCredentials().OrderBy("created_at DESC", "rowid DESC"), "credentialRepository.List", scanCredential)
}

func (r *credentialRepository) DeactivateAll(ctx context.Context) error {
	_, err := r.exec(ctx, sqliteSQL.Update("credentials").Set("is_active", false).Where(sq.Eq{"is_active": true}), "credentialRepository.DeactivateAll")
	return err
}

func (r *credentialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.exec(ctx, sqliteSQL.Delete("credentials").Where(sq.Eq{"id": id}), "credentialRepository.Delete")
	return err
}

func (r *credentialRepository) selectCredentials() sq.SelectBuilder {
	return sqliteSQL.Select(credentialColumns...).From("credentials")
}

func scanCredential(row rowScanner) (models.Credential, error) {
	var c models.Credential
	err := row.Scan(&c.ID, &c.Name, &c.EncryptedSecret, &c.CreatedAt, &c.IsActive)
	c.CreatedAt = c.CreatedAt.UTC()
	return c, err
}
