package models

// IndexRecord is the per-entry synchronization metadata kept in the
// master index. LastModified is epoch milliseconds and must strictly
// increase on every logical mutation of the entry. Deleted marks a
// tombstone: the content is gone but the record stays so the deletion
// itself can propagate to the other replica.
type IndexRecord struct {
	LastModified int64 `json:"lastModified"`
	Deleted      bool  `json:"deleted"`
}

// MasterIndex maps entry IDs to their sync metadata. Both replicas hold
// a copy; the merged result of one sync pass becomes the baseline for
// the next.
type MasterIndex map[string]IndexRecord

// Clone returns a copy of the index that can be mutated independently.
func (m MasterIndex) Clone() MasterIndex {
	out := make(MasterIndex, len(m))
	for id, rec := range m {
		out[id] = rec
	}
	return out
}
