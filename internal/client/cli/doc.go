// Package cli implements the interactive daybook shell: a small REPL
// over the local entry repository and the sync service. It owns all
// terminal I/O; the sync core below it never prints.
package cli
