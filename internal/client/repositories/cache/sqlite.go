package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/dbx"
)

const (
	themesSyncedKey = "themes_synced_at"
	postsSyncedKey  = "posts_synced_at"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ReplaceThemes(ctx context.Context, themes []models.Theme, at time.Time) error {
	return replace(ctx, r.db, "themes", themesSyncedKey, themes, func(t models.Theme) int64 { return t.ID }, at)
}

func (r *SQLiteRepository) Themes(ctx context.Context) ([]models.Theme, time.Time, error) {
	return load[models.Theme](ctx, r.db, "themes", themesSyncedKey)
}

func (r *SQLiteRepository) ReplacePosts(ctx context.Context, posts []models.Post, at time.Time) error {
	return replace(ctx, r.db, "posts", postsSyncedKey, posts, func(p models.Post) int64 { return p.ID }, at)
}

func (r *SQLiteRepository) Posts(ctx context.Context) ([]models.Post, time.Time, error) {
	return load[models.Post](ctx, r.db, "posts", postsSyncedKey)
}

// Clear forgets everything, e.g. on logout.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, table := range []string{"themes", "posts", "metadata"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// replace swaps the whole content of table for items and records when the
// listing was taken. table is one of our own constants, never user input.
func replace[T any](ctx context.Context, db *sql.DB, table, syncedKey string, items []T, id func(T) int64, at time.Time) error {
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return err
		}
		for _, item := range items {
			payload, err := json.Marshal(item)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `INSERT INTO `+table+` (id, payload) VALUES (?, ?)`, id(item), payload); err != nil {
				return err
			}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO metadata (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, syncedKey, []byte(at.UTC().Format(time.RFC3339Nano)))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to cache %s: %w", table, err)
	}
	return nil
}

func load[T any](ctx context.Context, db dbx.DBTX, table, syncedKey string) ([]T, time.Time, error) {
	var raw []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, syncedKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrEmpty
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read %s sync time: %w", table, err)
	}
	at, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("corrupt %s sync time: %w", table, err)
	}

	rows, err := db.QueryContext(ctx, `SELECT payload FROM `+table+` ORDER BY id`)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to list cached %s: %w", table, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to scan cached %s: %w", table, err)
		}
		var item T
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to decode cached %s: %w", table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to iterate cached %s: %w", table, err)
	}
	return items, at, nil
}
