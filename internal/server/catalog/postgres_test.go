package catalog

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/folderforge/folderforge/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*PostgresTagRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresTagRepository(db), mock
}

func TestPostgresTagRepository_Create(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO tags`)).
		WithArgs("t1", "Neon", "neon").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tag, err := repo.Create(context.Background(), &Tag{ID: "t1", Name: "Neon", Slug: "neon"})
	require.NoError(t, err)
	assert.Equal(t, "t1", tag.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTagRepository_Update_NotFound(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE tags SET`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}))

	name := "Renamed"
	_, err := repo.Update(context.Background(), "missing", &TagPatch{Name: &name})
	assert.True(t, errors.Is(err, common.ErrorNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTagRepository_Delete_MissingRowIsSuccess(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tags WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSettingsRepository_Get_EmptyIsZeroSettings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewPostgresSettingsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ad_config, features FROM settings`)).
		WillReturnRows(sqlmock.NewRows([]string{"ad_config", "features"}))

	s, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, s.AdConfig.Enabled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSettingsRepository_SaveAdConfig_TouchesOnlyAdSection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewPostgresSettingsRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO settings (id, ad_config)
		 VALUES ('default', COALESCE($1::jsonb, '{}'::jsonb))
		 ON CONFLICT (id) DO UPDATE SET ad_config = EXCLUDED.ad_config`)).
		WithArgs(`{"enabled":true,"provider":"adsense"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SaveAdConfig(context.Background(), &AdConfig{Enabled: true, Provider: "adsense"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
