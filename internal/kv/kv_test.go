package kv

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/renttrack/internal/config"
)

func exercise(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMissing)

	require.NoError(t, s.Set(ctx, "renttrack_token", "admin-token-1"))
	v, err := s.Get(ctx, "renttrack_token")
	require.NoError(t, err)
	assert.Equal(t, "admin-token-1", v)

	require.NoError(t, s.Set(ctx, "renttrack_token", "admin-token-2"))
	v, err = s.Get(ctx, "renttrack_token")
	require.NoError(t, err)
	assert.Equal(t, "admin-token-2", v)

	require.NoError(t, s.Delete(ctx, "renttrack_token"))
	_, err = s.Get(ctx, "renttrack_token")
	assert.ErrorIs(t, err, ErrMissing)
	require.NoError(t, s.Delete(ctx, "renttrack_token"), "deleting twice is fine")
}

func TestMemory(t *testing.T) {
	exercise(t, NewMemory())
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	exercise(t, NewFile(path))
}

func TestFileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, NewFile(path).Set(ctx, "renttrack_settings", `{"ocrAccuracy":0.9}`))

	v, err := NewFile(path).Get(ctx, "renttrack_settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ocrAccuracy":0.9}`, v)
}

func TestMySQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	s := NewMySQL(db, "")
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS kv_store")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, s.EnsureSchema(ctx))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT v FROM kv_store WHERE k=?")).
		WithArgs("renttrack_token").
		WillReturnRows(sqlmock.NewRows([]string{"v"}))
	_, err = s.Get(ctx, "renttrack_token")
	assert.ErrorIs(t, err, ErrMissing)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_store (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE")).
		WithArgs("renttrack_token", "tenant-token-9").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, s.Set(ctx, "renttrack_token", "tenant-token-9"))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT v FROM kv_store WHERE k=?")).
		WithArgs("renttrack_token").
		WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow("tenant-token-9"))
	v, err := s.Get(ctx, "renttrack_token")
	require.NoError(t, err)
	assert.Equal(t, "tenant-token-9", v)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_store WHERE k=?")).
		WithArgs("renttrack_token").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.Delete(ctx, "renttrack_token"))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, closeFn, err := Open(ctx, config.Config{KVBackend: config.KVMemory})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)
	require.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "kv.json")
	s, _, err = Open(ctx, config.Config{KVBackend: config.KVFile, KVFile: path})
	require.NoError(t, err)
	require.IsType(t, &File{}, s)
	assert.Equal(t, path, s.(*File).Path())

	_, _, err = Open(ctx, config.Config{KVBackend: "etcd"})
	assert.Error(t, err)
}
