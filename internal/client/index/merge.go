package index

import (
	"sort"

	"github.com/dmitrijs2005/daybook/internal/client/models"
)

// Action tells the sync service which content move a merge decision
// requires. The merge itself performs no I/O.
type Action int

const (
	// ActionNone means the replicas already agree for this ID.
	ActionNone Action = iota

	// ActionPull means the remote entry content must be written into
	// the local entry store, creating or replacing the local copy.
	ActionPull

	// ActionPush means the local entry content must be uploaded to the
	// remote object store.
	ActionPush

	// ActionDeleteRemote means the remote entry object must be removed;
	// the local tombstone wins.
	ActionDeleteRemote

	// ActionDeleteLocal means the local entry must be removed; the
	// remote tombstone wins.
	ActionDeleteLocal
)

func (a Action) String() string {
	switch a {
	case ActionPull:
		return "pull"
	case ActionPush:
		return "push"
	case ActionDeleteRemote:
		return "delete-remote"
	case ActionDeleteLocal:
		return "delete-local"
	default:
		return "none"
	}
}

// Transfer is one step of a merge plan: the content move required to
// make both replicas match the merged record for ID.
type Transfer struct {
	ID     string
	Action Action
}

// decide reconciles one ID present on at least one side. The greater
// LastModified wins; a tie keeps the local record, which is the
// already-synchronized case since timestamps increase strictly on every
// mutation. Tombstones carry no content, so a side that only knows a
// deletion propagates the record without moving any payload.
func decide(local, remote models.IndexRecord, hasLocal, hasRemote bool) (models.IndexRecord, Action) {
	switch {
	case !hasLocal:
		if remote.Deleted {
			return remote, ActionNone
		}
		return remote, ActionPull

	case !hasRemote:
		if local.Deleted {
			return local, ActionNone
		}
		return local, ActionPush

	case local.LastModified > remote.LastModified:
		if local.Deleted {
			return local, ActionDeleteRemote
		}
		return local, ActionPush

	case local.LastModified < remote.LastModified:
		if remote.Deleted {
			return remote, ActionDeleteLocal
		}
		return remote, ActionPull

	default:
		return local, ActionNone
	}
}

// Merge reconciles the two copies of the master index. It returns the
// merged index covering the union of both key sets, plus the transfer
// plan required to make both replicas match it. The plan is ordered by
// ID so repeated merges of equal inputs produce identical plans.
func Merge(local, remote models.MasterIndex) (models.MasterIndex, []Transfer) {
	ids := make([]string, 0, len(local)+len(remote))
	for id := range local {
		ids = append(ids, id)
	}
	for id := range remote {
		if _, ok := local[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	merged := make(models.MasterIndex, len(ids))
	var plan []Transfer
	for _, id := range ids {
		l, hasLocal := local[id]
		r, hasRemote := remote[id]

		rec, action := decide(l, r, hasLocal, hasRemote)
		merged[id] = rec
		if action != ActionNone {
			plan = append(plan, Transfer{ID: id, Action: action})
		}
	}
	return merged, plan
}
