// Package entries implements the local entry store: journal entries kept
// in a SQLite database on the device. The sync core consumes only the
// Repository interface and does not care how entries are persisted.
package entries
