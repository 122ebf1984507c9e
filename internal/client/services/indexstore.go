package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/daybook/internal/client/index"
	"github.com/dmitrijs2005/daybook/internal/client/models"
	"github.com/dmitrijs2005/daybook/internal/client/remote"
	"github.com/dmitrijs2005/daybook/internal/common"
)

// IndexStore loads and saves the two copies of the master index: a
// local file and a remote object, both named masterIndex.json.
type IndexStore struct {
	localPath string
	remote    remote.ObjectStore
}

// NewIndexStore returns an IndexStore persisting the local index at
// localPath and the remote index through store.
func NewIndexStore(localPath string, store remote.ObjectStore) *IndexStore {
	return &IndexStore{localPath: localPath, remote: store}
}

// Bootstrap writes an empty local index file if none exists yet. App
// startup is the only place allowed to conjure an empty local index;
// LoadLocal treats a missing file as an error.
func (s *IndexStore) Bootstrap() error {
	if _, err := os.Stat(s.localPath); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking local index: %w", err)
	}
	return s.SaveLocal(models.MasterIndex{})
}

// LoadLocal reads the local persisted index. A missing file surfaces as
// common.ErrNotFound rather than an empty index: treating it as empty
// would tombstone every entry on the remote side.
func (s *IndexStore) LoadLocal() (models.MasterIndex, error) {
	data, err := os.ReadFile(s.localPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("local index %s: %w", s.localPath, common.ErrNotFound)
		}
		return nil, fmt.Errorf("reading local index: %w", err)
	}

	idx, err := index.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding local index: %w", err)
	}
	return idx, nil
}

// LoadRemote reads the remote persisted index. A missing object means a
// fresh remote side: an empty index object is created there and an
// empty map returned. This is the one legal empty-state fallback, since
// bootstrapping the remote is this client's responsibility.
func (s *IndexStore) LoadRemote(ctx context.Context) (models.MasterIndex, error) {
	data, err := s.remote.Get(ctx, remote.IndexKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			empty := models.MasterIndex{}
			if err := s.SaveRemote(ctx, empty); err != nil {
				return nil, err
			}
			return empty, nil
		}
		return nil, fmt.Errorf("loading remote index: %w", err)
	}

	idx, err := index.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding remote index: %w", err)
	}
	return idx, nil
}

// SaveLocal overwrites the local index file.
func (s *IndexStore) SaveLocal(idx models.MasterIndex) error {
	data, err := index.Encode(idx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.localPath, data, 0o600); err != nil {
		return fmt.Errorf("writing local index: %w", err)
	}
	return nil
}

// SaveRemote overwrites the remote index object.
func (s *IndexStore) SaveRemote(ctx context.Context, idx models.MasterIndex) error {
	data, err := index.Encode(idx)
	if err != nil {
		return err
	}
	if err := s.remote.Put(ctx, remote.IndexKey, data); err != nil {
		return fmt.Errorf("writing remote index: %w", err)
	}
	return nil
}
