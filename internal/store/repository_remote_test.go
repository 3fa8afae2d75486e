package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

func newTestRemoteRepo(t *testing.T) (RemoteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := NewRemoteRepository(&DB{DB: db, dialect: DialectPostgres, logger: l, errorClassificator: NewPostgresErrorClassifier()}, l)
	return repo, mock
}

func TestRemoteRepository_PullPrompts(t *testing.T) {
	repo, mock := newTestRemoteRepo(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "content", "notes", "tag_ids", "folder_id", "created_at", "updated_at"}).
		AddRow("p1", "alice", "t", "c", "n", []byte(`["t2","t1"]`), "f1", at, at).
		AddRow("p2", "alice", "t", "c", "", []byte(`[]`), nil, at, at)

	mock.ExpectQuery(regexp.QuoteMeta("FROM prompts WHERE owner_id = $1")).
		WithArgs("alice").
		WillReturnRows(rows)

	prompts, err := repo.PullPrompts(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, prompts, 2)

	assert.Equal(t, []string{"t2", "t1"}, prompts[0].TagIDs)
	require.NotNil(t, prompts[0].FolderID)
	assert.Equal(t, "f1", *prompts[0].FolderID)
	require.NotNil(t, prompts[0].OwnerID)
	assert.Equal(t, "alice", *prompts[0].OwnerID)

	assert.Equal(t, []string{}, prompts[1].TagIDs)
	assert.Nil(t, prompts[1].FolderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteRepository_PullPrompts_BadTagJSON(t *testing.T) {
	repo, mock := newTestRemoteRepo(t)
	at := time.Now()

	rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "content", "notes", "tag_ids", "folder_id", "created_at", "updated_at"}).
		AddRow("p1", "alice", "t", "c", "n", []byte(`{`), nil, at, at)
	mock.ExpectQuery("FROM prompts").WillReturnRows(rows)

	_, err := repo.PullPrompts(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrMarshallingColumn)
}

func TestRemoteRepository_PullFoldersTagsVersions(t *testing.T) {
	repo, mock := newTestRemoteRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM folders WHERE owner_id = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "parent_id", "created_at", "updated_at"}).
			AddRow("f1", "alice", "root", nil, at, at).
			AddRow("f2", "alice", "child", "f1", at, at))
	mock.ExpectQuery(regexp.QuoteMeta("FROM tags WHERE owner_id = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "created_at", "updated_at"}).
			AddRow("t1", "alice", "work", at, at))
	mock.ExpectQuery(regexp.QuoteMeta("FROM prompt_versions WHERE owner_id = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "prompt_id", "owner_id", "content", "notes", "commit_message", "created_at"}).
			AddRow("v1", "p1", "alice", "x", "", "init", at))

	folders, err := repo.PullFolders(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Nil(t, folders[0].ParentID)
	assert.Equal(t, "f1", *folders[1].ParentID)

	tags, err := repo.PullTags(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "work", tags[0].Name)

	versions, err := repo.PullVersions(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, "init", versions[0].CommitMessage)
	assert.Equal(t, at, versions[0].CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteRepository_PushPrompt(t *testing.T) {
	repo, mock := newTestRemoteRepo(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	owner := "alice"

	p := models.Prompt{
		ID: "p1", OwnerID: &owner, Title: "t", Content: "c", Notes: "n",
		TagIDs: []string{"t1", "t2"}, CreatedAt: at, UpdatedAt: at,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO prompts")).
		WithArgs("p1", "alice", "t", "c", "n", `["t1","t2"]`, nil, at, at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.PushPrompt(context.Background(), p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteRepository_PushRequiresOwner(t *testing.T) {
	repo, _ := newTestRemoteRepo(t)
	ctx := context.Background()

	assert.Error(t, repo.PushPrompt(ctx, models.Prompt{ID: "p1"}))
	assert.Error(t, repo.PushTag(ctx, models.Tag{ID: "t1"}))
	assert.Error(t, repo.PushFolder(ctx, models.Folder{ID: "f1"}))
	assert.Error(t, repo.PushVersion(ctx, models.PromptVersion{ID: "v1"}))
}

func TestRemoteRepository_PushTag_UniqueViolation(t *testing.T) {
	repo, mock := newTestRemoteRepo(t)
	owner := "alice"

	mock.ExpectExec("INSERT INTO tags").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.PushTag(context.Background(), models.Tag{ID: "t1", OwnerID: &owner, Name: "x"})
	assert.ErrorIs(t, err, ErrUniqueViolation)
}

func TestRemoteRepository_PushTag_RetriesTransientFailure(t *testing.T) {
	repo, mock := newTestRemoteRepo(t)
	owner := "alice"

	mock.ExpectExec("INSERT INTO tags").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectExec("INSERT INTO tags").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.PushTag(context.Background(), models.Tag{ID: "t1", OwnerID: &owner, Name: "x"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteRepository_PushTag_TransientFailurePersists(t *testing.T) {
	repo, mock := newTestRemoteRepo(t)
	owner := "alice"

	mock.ExpectExec("INSERT INTO tags").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("INSERT INTO tags").
		WillReturnError(pgError(pgerrcode.SerializationFailure))

	err := repo.PushTag(context.Background(), models.Tag{ID: "t1", OwnerID: &owner, Name: "x"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, ErrTransient)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteRepository_PushTag_PermanentFailureNotRetried(t *testing.T) {
	repo, mock := newTestRemoteRepo(t)
	owner := "alice"

	mock.ExpectExec("INSERT INTO tags").
		WillReturnError(pgError(pgerrcode.CheckViolation))

	err := repo.PushTag(context.Background(), models.Tag{ID: "t1", OwnerID: &owner, Name: "x"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrTransient)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteRepository_PullTags_TransientFailure(t *testing.T) {
	repo, mock := newTestRemoteRepo(t)

	mock.ExpectQuery("FROM tags").
		WillReturnError(pgError(pgerrcode.CannotConnectNow))

	tags, err := repo.PullTags(context.Background(), "alice")
	assert.Nil(t, tags)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrTransient)
}

func TestRemoteRepository_PushFolderAndVersion(t *testing.T) {
	repo, mock := newTestRemoteRepo(t)
	ctx := context.Background()
	owner := "alice"
	parent := "f0"
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec("INSERT INTO folders").
		WithArgs("f1", "alice", "docs", "f0", at, at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO prompt_versions").
		WithArgs("v1", "p1", "alice", "x", "", "msg", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.PushFolder(ctx, models.Folder{ID: "f1", OwnerID: &owner, Name: "docs", ParentID: &parent, CreatedAt: at, UpdatedAt: at}))
	require.NoError(t, repo.PushVersion(ctx, models.PromptVersion{ID: "v1", PromptID: "p1", OwnerID: &owner, Content: "x", CommitMessage: "msg", CreatedAt: at}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteRepository_DeletePromptCascadesVersions(t *testing.T) {
	repo, mock := newTestRemoteRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM prompt_versions WHERE owner_id = $1 AND prompt_id = $2")).
		WithArgs("alice", "p1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM prompts WHERE id = $1 AND owner_id = $2")).
		WithArgs("p1", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), models.KindPrompt, "alice", "p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteRepository_DeletePromptRollsBack(t *testing.T) {
	repo, mock := newTestRemoteRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM prompt_versions").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM prompts").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), models.KindPrompt, "alice", "p1")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Inside the delete transaction a deadlock is reported, not repeated: the
// statement before it already ran on the aborted transaction.
func TestRemoteRepository_DeletePromptDeadlock(t *testing.T) {
	repo, mock := newTestRemoteRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM prompt_versions").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM prompts").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), models.KindPrompt, "alice", "p1")
	assert.ErrorIs(t, err, ErrTransient)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteRepository_DeleteOtherKinds(t *testing.T) {
	tests := []struct {
		kind  models.EntityKind
		table string
	}{
		{models.KindTag, "tags"},
		{models.KindFolder, "folders"},
		{models.KindVersion, "prompt_versions"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			repo, mock := newTestRemoteRepo(t)
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + tt.table + " WHERE id = $1 AND owner_id = $2")).
				WithArgs("x1", "alice").
				WillReturnResult(sqlmock.NewResult(0, 0))

			require.NoError(t, repo.Delete(context.Background(), tt.kind, "alice", "x1"))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRemoteRepository_DeleteUnknownKind(t *testing.T) {
	repo, _ := newTestRemoteRepo(t)

	err := repo.Delete(context.Background(), models.KindPreset, "alice", "x1")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
