package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/daybook/internal/client/client"
	"github.com/dmitrijs2005/daybook/internal/client/config"
	"github.com/dmitrijs2005/daybook/internal/client/remote"
	"github.com/dmitrijs2005/daybook/internal/client/repositories/entries"
	"github.com/dmitrijs2005/daybook/internal/client/services"
	"github.com/dmitrijs2005/daybook/internal/filex"
	"github.com/dmitrijs2005/daybook/internal/logging"

	_ "modernc.org/sqlite"
)

const (
	dbFileName    = "daybook.db"
	indexFileName = "masterIndex.json"
)

// App is the interactive shell: it owns the repositories, the sync
// service and the input reader.
type App struct {
	config  *config.Config
	entries entries.Repository
	sync    *services.SyncService
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
	db      *sql.DB
}

// NewApp bootstraps the data directory, the local database, the remote
// store client and the sync service. A missing S3 secret is prompted
// for instead of failing, so the secret never has to live in a config
// file.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureSubDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	repos, err := client.InitDatabase(ctx, filepath.Join(dir, dbFileName))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	if c.S3SecretKey == "" {
		secret, err := GetSecret("Enter S3 secret key: ", os.Stdout)
		if err != nil {
			return nil, err
		}
		c.S3SecretKey = string(secret)
	}

	store, err := remote.NewS3Store(ctx, c.S3Endpoint, c.S3Region, c.S3Bucket, c.S3AccessKey, c.S3SecretKey)
	if err != nil {
		return nil, err
	}

	idxStore := services.NewIndexStore(filepath.Join(dir, indexFileName), store)
	if err := idxStore.Bootstrap(); err != nil {
		return nil, err
	}

	svc, err := services.NewSyncService(ctx, c, repos.Entries, store, idxStore, log)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		entries: repos.Entries,
		sync:    svc,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     log,
		db:      repos.DB,
	}, nil
}

// Run starts the REPL and closes the database when it exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}
