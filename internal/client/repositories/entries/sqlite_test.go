package entries

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/daybook/internal/client/models"
	"github.com/dmitrijs2005/daybook/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE entries (
  id TEXT PRIMARY KEY,
  entry_date TEXT NOT NULL,
  content TEXT NOT NULL,
  ts INTEGER NOT NULL,
  last_modified INTEGER NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func sample(id string) *models.Entry {
	return &models.Entry{
		ID:           id,
		Date:         "2026-08-29",
		Content:      "a quiet day",
		Timestamp:    1000,
		LastModified: 1000,
	}
}

func TestCreateAndGetByID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	e := sample("id1")
	require.NoError(t, r.Create(ctx, e))

	got, err := r.GetByID(ctx, "id1")
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestGetByID_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, sample("id1")))

	e := sample("id1")
	e.Content = "edited"
	e.LastModified = 2000
	require.NoError(t, r.Update(ctx, e))

	got, err := r.GetByID(ctx, "id1")
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)
	assert.Equal(t, int64(2000), got.LastModified)
}

func TestUpdate_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	err := r.Update(context.Background(), sample("missing"))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteByID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, sample("id1")))
	require.NoError(t, r.DeleteByID(ctx, "id1"))

	_, err := r.GetByID(ctx, "id1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, r.DeleteByID(ctx, "id1"), common.ErrNotFound)
}

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	err := r.WithinTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Create(ctx, sample("id1"))
	})
	require.NoError(t, err)

	_, err = r.GetByID(ctx, "id1")
	assert.NoError(t, err)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	err := r.WithinTx(ctx, func(ctx context.Context, repo Repository) error {
		if err := repo.Create(ctx, sample("id1")); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.Error(t, err)

	_, err = r.GetByID(ctx, "id1")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestWithinTx_TransactionalViewRunsDirectly(t *testing.T) {
	db := setupDB(t)
	tx, err := db.Begin()
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })

	r := NewSQLiteRepository(tx)
	err = r.WithinTx(context.Background(), func(ctx context.Context, repo Repository) error {
		return repo.Create(ctx, sample("id1"))
	})
	assert.NoError(t, err)
}

func TestGetAll_OrderedByDate(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	b := sample("b")
	b.Date = "2026-08-28"
	a := sample("a")
	a.Date = "2026-08-27"
	require.NoError(t, r.Create(ctx, b))
	require.NoError(t, r.Create(ctx, a))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
}
