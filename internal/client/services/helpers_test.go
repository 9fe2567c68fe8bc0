package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/client/repositories/cache"
	"github.com/dmitrijs2005/blogpessoal/internal/client/session"
	"github.com/dmitrijs2005/blogpessoal/internal/client/storage"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) *cache.SQLiteRepository {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return cache.NewSQLiteRepository(db)
}

// loggedIn returns a store already holding a session for user 7.
func loggedIn(t *testing.T, f *fakeAPI) *session.Store {
	t.Helper()
	f.loginRet = &models.UserLogin{ID: 7, Name: "Ana", Username: "ana@mail.com", Token: "Bearer abc"}
	store := session.NewStore(f, nil)
	_, err := store.Login(context.Background(), models.Credentials{Username: "ana@mail.com", Password: "12345678"})
	require.NoError(t, err)
	return store
}
