package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

var presetColumns = []string{
	"id", "name", "model", "temperature", "max_tokens", "top_p", "system_prompt", "created_at", "updated_at",
}

type presetRepository struct {
	sqlRepository
}

func newPresetRepository(db *DB, conn DBTX) PresetRepository {
	return &presetRepository{sqlRepository{db: db, conn: conn}}
}

func (r *presetRepository) Put(ctx context.Context, p models.ExecutionPreset) error {
	q := sqliteSQL.Insert("execution_presets").
		Columns(presetColumns...).
		Values(p.ID, p.Name, p.Model, p.Temperature, p.MaxTokens, p.TopP, p.SystemPrompt,
			p.CreatedAt.UTC(), p.UpdatedAt.UTC()).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			model = excluded.model,
			temperature = excluded.temperature,
			max_tokens = excluded.max_tokens,
			top_p = excluded.top_p,
			system_prompt = excluded.system_prompt,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`)
	_, err := r.exec(ctx, q, "presetRepository.Put")
	return err
}

func (r *presetRepository) Get(ctx context.Context, id string) (models.ExecutionPreset, bool, error) {
	return queryOne(ctx, r.conn, r.selectPresets().Where(sq.Eq{"id": id}), "presetRepository.Get", scanPreset)
}

func (r *presetRepository) FindByName(ctx context.Context, name string) (models.ExecutionPreset, bool, error) {
	return queryOne(ctx, r.conn, r.selectPresets().Where(sq.Eq{"name": name}), "presetRepository.FindByName", scanPreset)
}

func (r *presetRepository) List(ctx context.Context) ([]models.ExecutionPreset, error) {
	return queryAll(ctx, r.conn, r.selectPresets().OrderBy("name"), "presetRepository.List", scanPreset)
}

func (r *presetRepository) Delete(ctx context.Context, id string) error {
	_, err := r.exec(ctx, sqliteSQL.Delete("execution_presets").Where(sq.Eq{"id": id}), "presetRepository.Delete")
	return err
}

func (r *presetRepository) DeleteAll(ctx context.Context) error {
	_, err := r.exec(ctx, sqliteSQL.Delete("execution_presets"), "presetRepository.DeleteAll")
	return err
}

func (r *presetRepository) selectPresets() sq.SelectBuilder {
	return sqliteSQL.Select(presetColumns...).From("execution_presets")
}

func scanPreset(row rowScanner) (models.ExecutionPreset, error) {
	var p models.ExecutionPreset
	err := row.Scan(&p.ID, &p.Name, &p.Model, &p.Temperature, &p.MaxTokens, &p.TopP, &p.SystemPrompt,
		&p.CreatedAt, &p.UpdatedAt)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, err
}
