package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func TestThemes_EmptyBeforeFirstSync(t *testing.T) {
	r := setupRepo(t)

	_, _, err := r.Themes(context.Background())
	require.ErrorIs(t, err, ErrEmpty)
	_, _, err = r.Posts(context.Background())
	require.ErrorIs(t, err, ErrEmpty)
}

func TestReplaceThemes_RoundTrip(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	require.NoError(t, r.ReplaceThemes(ctx, []models.Theme{{ID: 2, Description: "Go"}, {ID: 1, Description: "Java"}}, at))

	got, syncedAt, err := r.Themes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Theme{{ID: 1, Description: "Java"}, {ID: 2, Description: "Go"}}, got)
	assert.True(t, at.Equal(syncedAt))
}

func TestReplaceThemes_ReplacesPreviousListing(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.ReplaceThemes(ctx, []models.Theme{{ID: 1, Description: "old"}, {ID: 2, Description: "gone"}}, time.Now()))
	require.NoError(t, r.ReplaceThemes(ctx, []models.Theme{{ID: 1, Description: "new"}}, time.Now()))

	got, _, err := r.Themes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Theme{{ID: 1, Description: "new"}}, got)
}

func TestReplaceThemes_EmptyListingIsCached(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.ReplaceThemes(ctx, nil, time.Now()))

	got, _, err := r.Themes(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReplacePosts_RoundTrip(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()
	posts := []models.Post{{ID: 1, Title: "Hello", Text: "first post", Date: "2026-10-18T10:00:00", Theme: &models.Theme{ID: 1, Description: "Go"}}}

	require.NoError(t, r.ReplacePosts(ctx, posts, time.Now()))

	got, _, err := r.Posts(ctx)
	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestClear_ForgetsEverything(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.ReplaceThemes(ctx, []models.Theme{{ID: 1}}, time.Now()))
	require.NoError(t, r.ReplacePosts(ctx, []models.Post{{ID: 1}}, time.Now()))
	require.NoError(t, r.Clear(ctx))

	_, _, err := r.Themes(ctx)
	require.ErrorIs(t, err, ErrEmpty)
	_, _, err = r.Posts(ctx)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestReplaceThemes_DBErrorWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM themes").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	r := NewSQLiteRepository(db)
	err = r.ReplaceThemes(context.Background(), []models.Theme{{ID: 1}}, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to cache themes")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPosts_CorruptSyncTime(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM metadata").
		WithArgs(postsSyncedKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("yesterday")))

	_, _, err = NewSQLiteRepository(db).Posts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt posts sync time")
}

func TestClear_DBErrorWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	err = NewSQLiteRepository(db).Clear(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear cache")
}
