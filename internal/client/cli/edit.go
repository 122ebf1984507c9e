package cli

import (
	"context"
	"fmt"
	"html"
	"time"
)

// edit replaces an entry's text and pushes the new revision. Reusing the
// current content when the user enters nothing makes edit double as a
// retry knob for entries whose first upload failed.
func (a *App) edit(ctx context.Context, id string) {
	e, err := a.entries.GetByID(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	fmt.Fprintf(a.out, "Current text:\n%s\n", e.PlainContent())

	text, err := GetMultiline(a.reader, "New text (empty keeps current)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if text != "" {
		e.Content = html.EscapeString(text)
	}
	e.LastModified = time.Now().UnixMilli()

	if err := a.entries.Update(ctx, e); err != nil {
		fmt.Fprintln(a.out, "Error saving entry:", err)
		return
	}

	if _, err := a.sync.PutEntry(ctx, e); err != nil {
		a.log.Error(ctx, "entry updated locally but not uploaded", "id", e.ID, "error", err)
		fmt.Fprintln(a.out, "Updated locally, but uploading failed:", err)
		return
	}

	fmt.Fprintln(a.out, "Updated", e.ID)
}
