package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/daybook/internal/client/models"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_MigratesAndServesRepositories(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "daybook.db")

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	e := &models.Entry{ID: "id1", Date: "2026-08-29", Content: "x", Timestamp: 1, LastModified: 1}
	require.NoError(t, repos.Entries.Create(ctx, e))

	got, err := repos.Entries.GetByID(ctx, "id1")
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "daybook.db")

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	// A second pass over an up-to-date schema is a no-op.
	require.NoError(t, RunMigrations(ctx, repos.DB))
}
