// Package index implements the master-index wire format and the
// two-replica last-writer-wins merge that reconciles the local and
// remote copies of it. The merge is pure: it produces a merged index
// plus a transfer plan, and the sync service performs the I/O.
package index
