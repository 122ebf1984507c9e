// Package services hosts the sync engine: the index store adapter that
// persists both copies of the master index, and the SyncService that
// merges them, moves entry content between the local database and the
// remote object store, and guards all index mutations behind a single
// in-flight lock.
package services
