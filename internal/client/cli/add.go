package cli

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/daybook/internal/client/models"
)

// add creates a new entry locally and immediately syncs it out. A failed
// upload keeps the local copy; a later full sync cannot recover it on
// its own (there is no index record yet), so the failure is reported
// loudly and the user is told to retry.
func (a *App) add(ctx context.Context) {

	today := time.Now().Format("2006-01-02")
	date, err := GetSimpleText(a.reader, fmt.Sprintf("Date [%s]", today), a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if date == "" {
		date = today
	}

	text, err := GetMultiline(a.reader, "Entry text", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if text == "" {
		fmt.Fprintln(a.out, "Nothing to save.")
		return
	}

	now := time.Now().UnixMilli()
	entry := &models.Entry{
		ID:           uuid.NewString(),
		Date:         date,
		Content:      html.EscapeString(text),
		Timestamp:    now,
		LastModified: now,
	}

	if err := a.entries.Create(ctx, entry); err != nil {
		fmt.Fprintln(a.out, "Error saving entry:", err)
		return
	}

	if _, err := a.sync.PutEntry(ctx, entry); err != nil {
		a.log.Error(ctx, "entry saved locally but not uploaded", "id", entry.ID, "error", err)
		fmt.Fprintf(a.out, "Saved %s locally, but uploading failed: %v\nRun 'edit %s' once the remote is reachable to retry.\n",
			entry.ID, err, entry.ID)
		return
	}

	fmt.Fprintln(a.out, "Saved", entry.ID)
}
