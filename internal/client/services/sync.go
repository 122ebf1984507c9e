package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/daybook/internal/client/config"
	"github.com/dmitrijs2005/daybook/internal/client/index"
	"github.com/dmitrijs2005/daybook/internal/client/models"
	"github.com/dmitrijs2005/daybook/internal/client/remote"
	"github.com/dmitrijs2005/daybook/internal/client/repositories/entries"
	"github.com/dmitrijs2005/daybook/internal/common"
	"github.com/dmitrijs2005/daybook/internal/logging"
)

// SyncService reconciles the local and remote replicas of the journal.
// It owns the only mutual-exclusion boundary in the core: Run, PutEntry
// and DeleteEntry all serialize on the same mutex, so a full pass and a
// single-entry mutation can never interleave their index reads and
// writes.
type SyncService struct {
	mu      sync.Mutex
	entries entries.Repository
	remote  remote.ObjectStore
	store   *IndexStore
	cfg     *config.Config
	log     logging.Logger

	// now is a test seam returning the current time in epoch millis.
	now func() int64
}

// NewSyncService validates the configuration, probes the remote store
// for connectivity and returns a ready client. It is the only
// constructor the CLI layer uses; existence of a SyncService implies a
// usable configuration.
func NewSyncService(ctx context.Context, cfg *config.Config, repo entries.Repository,
	store remote.ObjectStore, idxStore *IndexStore, log logging.Logger) (*SyncService, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := store.Probe(ctx); err != nil {
		return nil, err
	}

	return &SyncService{
		entries: repo,
		remote:  store,
		store:   idxStore,
		cfg:     cfg,
		log:     log,
		now:     func() int64 { return time.Now().UnixMilli() },
	}, nil
}

// Run performs one full bidirectional pass: load both indexes, merge,
// apply every content transfer, then persist the merged index to both
// sides. Nothing is persisted if any transfer fails, so a failed pass
// leaves both indexes exactly as they were. Returns the merged index.
func (s *SyncService) Run(ctx context.Context) (models.MasterIndex, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	local, err := s.store.LoadLocal()
	if err != nil {
		return nil, err
	}

	remoteIdx, err := s.store.LoadRemote(ctx)
	if err != nil {
		return nil, err
	}

	merged, err := s.mergeAndApply(ctx, local, remoteIdx)
	if err != nil {
		return nil, err
	}

	merged = s.expireTombstones(merged)

	if err := s.store.SaveLocal(merged); err != nil {
		return nil, err
	}
	if err := s.store.SaveRemote(ctx, merged); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "sync finished", "entries", len(merged))
	return merged, nil
}

// PutEntry uploads one entry and folds it into both indexes without a
// full bidirectional pass. The bounded merge against a freshly loaded
// remote index means a device that is briefly online still picks up
// outstanding remote changes opportunistically. The caller owns the
// LastModified stamp; it must be strictly greater than the entry's
// previous one or last-writer-wins breaks.
func (s *SyncService) PutEntry(ctx context.Context, e *models.Entry) (models.MasterIndex, error) {
	if e == nil || e.ID == "" {
		return nil, fmt.Errorf("%w: entry must carry an id", common.ErrValidation)
	}
	if e.LastModified == 0 {
		return nil, fmt.Errorf("%w: entry must carry lastModified", common.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	local, err := s.store.LoadLocal()
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encoding entry %s: %w", e.ID, err)
	}
	if err := s.putObject(ctx, remote.EntryKey(e.ID), data); err != nil {
		return nil, err
	}

	local[e.ID] = models.IndexRecord{LastModified: e.LastModified, Deleted: false}

	return s.mergePersist(ctx, local)
}

// DeleteEntry removes the remote entry object, tombstones the local
// index record at the current time and runs the same bounded merge as
// PutEntry. The local entry row is owned by the caller.
func (s *SyncService) DeleteEntry(ctx context.Context, id string) (models.MasterIndex, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: entry id is required", common.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	local, err := s.store.LoadLocal()
	if err != nil {
		return nil, err
	}

	if err := s.deleteObject(ctx, remote.EntryKey(id)); err != nil {
		return nil, err
	}

	local[id] = models.IndexRecord{LastModified: s.now(), Deleted: true}

	return s.mergePersist(ctx, local)
}

// mergePersist finishes a merge-on-write operation: reconcile the given
// local index against a freshly loaded remote one, apply the resulting
// transfers and persist the merged index to both sides.
func (s *SyncService) mergePersist(ctx context.Context, local models.MasterIndex) (models.MasterIndex, error) {
	remoteIdx, err := s.store.LoadRemote(ctx)
	if err != nil {
		return nil, err
	}

	merged, err := s.mergeAndApply(ctx, local, remoteIdx)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveLocal(merged); err != nil {
		return nil, err
	}
	if err := s.store.SaveRemote(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// mergeAndApply merges the two indexes and executes the transfer plan
// sequentially. Cancellation is honored between per-ID steps only;
// interrupting a single transfer could leave an index record pointing
// at content that never moved.
func (s *SyncService) mergeAndApply(ctx context.Context, local, remoteIdx models.MasterIndex) (models.MasterIndex, error) {
	merged, plan := index.Merge(local, remoteIdx)

	for _, t := range plan {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.log.Debug(ctx, "applying transfer", "id", t.ID, "action", t.Action.String())
		if err := s.applyTransfer(ctx, t); err != nil {
			return nil, fmt.Errorf("entry %s: %w", t.ID, err)
		}
	}
	return merged, nil
}

func (s *SyncService) applyTransfer(ctx context.Context, t index.Transfer) error {
	switch t.Action {
	case index.ActionPull:
		return s.pull(ctx, t.ID)
	case index.ActionPush:
		return s.push(ctx, t.ID)
	case index.ActionDeleteRemote:
		return s.deleteObject(ctx, remote.EntryKey(t.ID))
	case index.ActionDeleteLocal:
		err := s.entries.DeleteByID(ctx, t.ID)
		if errors.Is(err, common.ErrNotFound) {
			// Already gone locally; the tombstone still lands in the index.
			return nil
		}
		return err
	default:
		return nil
	}
}

// pull fetches the remote entry content and creates or replaces the
// local copy.
func (s *SyncService) pull(ctx context.Context, id string) error {
	var data []byte
	err := s.withRetry(ctx, func(ctx context.Context) error {
		var err error
		data, err = s.remote.Get(ctx, remote.EntryKey(id))
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: pull: %v", common.ErrTransfer, err)
	}

	var e models.Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return fmt.Errorf("%w: remote entry %s is malformed: %v", common.ErrValidation, id, err)
	}

	save := func(ctx context.Context, repo entries.Repository) error {
		if _, err := repo.GetByID(ctx, id); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return repo.Create(ctx, &e)
			}
			return err
		}
		return repo.Update(ctx, &e)
	}
	// Create-or-replace is two statements; run them atomically when the
	// repository supports it.
	if txr, ok := s.entries.(entries.TxRepository); ok {
		return txr.WithinTx(ctx, save)
	}
	return save(ctx, s.entries)
}

// push uploads the local entry content to the remote object store.
func (s *SyncService) push(ctx context.Context, id string) error {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return err
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding entry %s: %w", id, err)
	}
	return s.putObject(ctx, remote.EntryKey(id), data)
}

func (s *SyncService) putObject(ctx context.Context, key string, data []byte) error {
	err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.remote.Put(ctx, key, data)
	})
	if err != nil {
		return fmt.Errorf("%w: put %s: %v", common.ErrTransfer, key, err)
	}
	return nil
}

func (s *SyncService) deleteObject(ctx context.Context, key string) error {
	err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.remote.Delete(ctx, key)
	})
	if err != nil {
		return fmt.Errorf("%w: delete %s: %v", common.ErrTransfer, key, err)
	}
	return nil
}

// withRetry runs op with bounded exponential backoff. NotFound and
// validation failures are final; everything else is assumed transient.
func (s *SyncService) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	base := s.cfg.TransferBackoff
	if base <= 0 {
		base = time.Millisecond
	}
	backoff := retry.WithMaxRetries(uint64(s.cfg.TransferRetries), retry.NewExponential(base))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err == nil || errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrValidation) {
			return err
		}
		return retry.RetryableError(err)
	})
}

// expireTombstones drops tombstones older than the configured retention
// from a merged index about to be persisted. Retention zero keeps them
// forever.
func (s *SyncService) expireTombstones(idx models.MasterIndex) models.MasterIndex {
	if s.cfg.TombstoneRetention <= 0 {
		return idx
	}
	cutoff := s.now() - s.cfg.TombstoneRetention.Milliseconds()

	out := make(models.MasterIndex, len(idx))
	for id, rec := range idx {
		if rec.Deleted && rec.LastModified < cutoff {
			continue
		}
		out[id] = rec
	}
	return out
}
