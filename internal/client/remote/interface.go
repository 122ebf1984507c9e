// Package remote defines the object-store port consumed by the sync core
// and its S3 implementation. The core never talks to the AWS SDK
// directly; it sees only ObjectStore.
package remote

import (
	"context"
	"fmt"
)

// IndexKey is the object key holding the remote copy of the master index.
const IndexKey = "masterIndex.json"

// EntryKey returns the object key holding an entry's content.
func EntryKey(id string) string {
	return fmt.Sprintf("entries/%s.json", id)
}

// ObjectStore is the remote replica: a flat blob store addressed by
// string keys.
type ObjectStore interface {
	// Get returns the object at key, or common.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put overwrites the object at key.
	Put(ctx context.Context, key string, data []byte) error

	// Delete removes the object at key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Probe validates connectivity and credentials with a bounded list
	// request. The merge algorithm itself never calls it.
	Probe(ctx context.Context) error
}
