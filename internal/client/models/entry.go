// Package models defines journal entry types and the master-index
// metadata that drives synchronization.
package models

import "html"

// Entry is a single journal entry. Content is stored HTML-entity
// encoded. Timestamp is the creation time and LastModified the time of
// the latest mutation, both in epoch milliseconds.
//
// The JSON field names are part of the persisted format: remote entry
// objects are stored at entries/{id}.json in exactly this shape.
type Entry struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Content      string `json:"content"`
	Timestamp    int64  `json:"timestamp"`
	LastModified int64  `json:"lastModified"`
}

// PlainContent returns the content with HTML entities decoded, for
// display in the CLI.
func (e *Entry) PlainContent() string {
	return html.UnescapeString(e.Content)
}

// Preview returns the first n runes of the decoded content on a single
// line, for list views.
func (e *Entry) Preview(n int) string {
	s := e.PlainContent()
	out := make([]rune, 0, n)
	for _, r := range s {
		if r == '\n' || r == '\r' {
			r = ' '
		}
		out = append(out, r)
		if len(out) == n {
			break
		}
	}
	return string(out)
}
